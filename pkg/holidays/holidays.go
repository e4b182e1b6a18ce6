package holidays

import "time"

// Fixed Polish public holidays as (day, month) pairs.
var fixedHolidays = [][2]int{
	{1, 1},   // Nowy Rok
	{6, 1},   // Trzech Króli
	{1, 5},   // Święto Pracy
	{3, 5},   // Święto Konstytucji 3 Maja
	{15, 8},  // Wniebowzięcie NMP
	{1, 11},  // Wszystkich Świętych
	{11, 11}, // Święto Niepodległości
	{25, 12}, // Boże Narodzenie
	{26, 12}, // Drugi dzień Świąt
}

// Easter returns Easter Sunday for the given year, computed with the
// Meeus/Jones/Butcher algorithm (Gregorian calendar).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h+l-7*m+114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// IsPolishHoliday reports whether the given date is a Polish public holiday.
// It combines the fixed holiday list with the moveable feasts derived from
// Easter: Easter Sunday, Easter Monday, Pentecost (+49) and Corpus Christi (+60).
// Pure function of the date, no lookup tables.
func IsPolishHoliday(date time.Time) bool {
	day := date.Day()
	month := int(date.Month())

	for _, h := range fixedHolidays {
		if h[0] == day && h[1] == month {
			return true
		}
	}

	easter := Easter(date.Year())
	moveable := []time.Time{
		easter,
		easter.AddDate(0, 0, 1),  // Poniedziałek Wielkanocny
		easter.AddDate(0, 0, 49), // Zielone Świątki
		easter.AddDate(0, 0, 60), // Boże Ciało
	}
	for _, h := range moveable {
		if h.Day() == day && int(h.Month()) == month {
			return true
		}
	}

	return false
}
