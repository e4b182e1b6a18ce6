package handler

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/internal/service"
	"leave-planner-bot/pkg/dates"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) showLegend(chatID int64) {
	sess := h.session(chatID)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(models.LegendItems)+1)
	for _, item := range models.LegendItems {
		label := item.Color + " " + item.Label
		if sess.activeType == item.Label {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "legend|"+item.Label),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("❌ Wyłącz kategorię", "legend|off"),
	))

	msg := tgbotapi.NewMessage(chatID, "Wybierz aktywną kategorię:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Warn("failed to send legend")
	}
}

func (h *Handler) handleLegendCallback(chatID int64, parts []string) {
	if len(parts) != 2 {
		return
	}
	sess := h.session(chatID)
	sess.selection.Reset()
	sess.pendingLabel = nil

	if parts[1] == "off" {
		sess.activeType = ""
		h.reply(chatID, "Kategoria wyłączona. Kliknięcie w zakres usunie go.")
		return
	}

	item, ok := models.FindLegendItem(parts[1])
	if !ok {
		logrus.Warnf("unknown legend label in callback: %q", parts[1])
		return
	}
	sess.activeType = item.Label
	if item.Special {
		h.reply(chatID, fmt.Sprintf("%s Aktywna kategoria: %s. Kliknięcia przełączają pojedyncze dni.", item.Color, item.Label))
		return
	}
	h.reply(chatID, fmt.Sprintf("%s Aktywna kategoria: %s. Kliknij początek i koniec zakresu.", item.Color, item.Label))
}

func (h *Handler) showCalendar(chatID int64) {
	months, ranges, ok := h.calendarState(chatID)
	if !ok {
		return
	}
	sess := h.session(chatID)

	// One grid per base period, opened at the current month when the period
	// covers it and at the period's first month otherwise.
	groups := service.GroupMonthsByPeriod(months)
	periodIdxs := make([]int, 0, len(groups))
	for p := range groups {
		periodIdxs = append(periodIdxs, p)
	}
	sort.Ints(periodIdxs)

	for _, p := range periodIdxs {
		block := groups[p]
		if len(block) == 0 {
			continue
		}
		idx := globalMonthIndex(months, pickBlockMonth(block))

		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Rok %d\n%s", p+1, calendarCaption(sess)))
		msg.ReplyMarkup = h.buildMonthKeyboard(months, idx, ranges, sess)
		if _, err := h.client.Bot.Send(msg); err != nil {
			logrus.WithError(err).Warn("failed to send calendar")
		}
	}
}

func pickBlockMonth(block []service.CalendarMonth) service.CalendarMonth {
	now := time.Now()
	for _, m := range block {
		if m.Year == now.Year() && m.Month == now.Month() {
			return m
		}
	}
	return block[0]
}

func globalMonthIndex(months []service.CalendarMonth, target service.CalendarMonth) int {
	for i, m := range months {
		if m.Year == target.Year && m.Month == target.Month {
			return i
		}
	}
	return 0
}

// calendarState loads everything a calendar render needs. A false return
// means the user was already told what is missing.
func (h *Handler) calendarState(chatID int64) ([]service.CalendarMonth, []models.ColoredRange, bool) {
	periods, err := h.periodService.GetPeriods(chatID)
	if err != nil {
		logrus.WithError(err).Error("failed to load periods")
		h.reply(chatID, "❌ Błąd odczytu okresów: "+err.Error())
		return nil, nil, false
	}

	months, ok := service.GenerateCalendarData(periods)
	if !ok {
		h.reply(chatID, "Brak kompletnych okresów podstawowych. Uzupełnij daty komendą /okresy.")
		return nil, nil, false
	}

	ranges, err := h.plannerService.GetRanges(chatID)
	if err != nil {
		logrus.WithError(err).Error("failed to load colored ranges")
		h.reply(chatID, "❌ Błąd odczytu zakresów: "+err.Error())
		return nil, nil, false
	}
	return months, ranges, true
}

func calendarCaption(sess *chatSession) string {
	if sess.activeType == "" {
		return "🗓 Kalendarz. Brak aktywnej kategorii, kliknięcie usuwa zakres. /legenda"
	}
	if item, ok := models.FindLegendItem(sess.activeType); ok {
		return fmt.Sprintf("🗓 Kalendarz. Aktywna kategoria: %s %s", item.Color, item.Label)
	}
	return "🗓 Kalendarz."
}

var weekdayHeader = [7]string{"Pn", "Wt", "Śr", "Cz", "Pt", "So", "Nd"}

// buildMonthKeyboard renders one month as an inline keyboard: a title row,
// a weekday row, the day grid and a navigation row. Day buttons carry the
// month index so a click can refresh the same message in place.
func (h *Handler) buildMonthKeyboard(
	months []service.CalendarMonth,
	idx int,
	ranges []models.ColoredRange,
	sess *chatSession,
) tgbotapi.InlineKeyboardMarkup {
	m := months[idx]

	var rows [][]tgbotapi.InlineKeyboardButton
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %d", m.Name, m.Year), "noop"),
	))

	header := make([]tgbotapi.InlineKeyboardButton, 0, 7)
	for _, wd := range weekdayHeader {
		header = append(header, tgbotapi.NewInlineKeyboardButtonData(wd, "noop"))
	}
	rows = append(rows, header)

	row := make([]tgbotapi.InlineKeyboardButton, 0, 7)
	for _, d := range m.Days {
		row = append(row, h.dayButton(m, d, idx, ranges, sess))
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(" ", "noop"))
		}
		rows = append(rows, row)
	}

	nav := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if idx > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️", fmt.Sprintf("nav|%d", idx-1)))
	}
	if idx < len(months)-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("▶️", fmt.Sprintf("nav|%d", idx+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (h *Handler) dayButton(
	m service.CalendarMonth,
	d service.CalendarDay,
	monthIdx int,
	ranges []models.ColoredRange,
	sess *chatSession,
) tgbotapi.InlineKeyboardButton {
	if d.Day == 0 {
		return tgbotapi.NewInlineKeyboardButtonData(" ", "noop")
	}

	date := time.Date(m.Year, m.Month, d.Day, 0, 0, 0, 0, time.Local)
	text := strconv.Itoa(d.Day)
	if sess.selection.Pending() && dates.SameDay(*sess.selection.Start, date) {
		text = "👉"
	} else {
		for _, r := range ranges {
			if service.IsDateInRange(date, r) {
				text = r.Color
				break
			}
		}
	}

	if len(d.Periods) == 0 {
		return tgbotapi.NewInlineKeyboardButtonData(text, "noop")
	}

	data := fmt.Sprintf("day|%d|%d|%s", monthIdx, d.Periods[0], dates.FormatISO(date))
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func (h *Handler) handleDayCallback(chatID int64, messageID int, parts []string) {
	if len(parts) != 4 {
		return
	}
	monthIdx, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	periodIdx, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}
	date, ok := dates.Parse(parts[3])
	if !ok {
		logrus.Warnf("unparseable date in callback: %q", parts[3])
		return
	}

	sess := h.session(chatID)
	outcome, err := h.plannerService.HandleDayClick(chatID, periodIdx, date, sess.activeType, sess.selection)
	if err != nil {
		logrus.WithError(err).Error("failed to handle day click")
		h.reply(chatID, "❌ Błąd zapisu: "+err.Error())
		return
	}

	sess.selection = outcome.Selection
	sess.activeType = outcome.ActiveType

	if outcome.Message != "" {
		h.reply(chatID, "⚠️ "+outcome.Message)
	}

	if outcome.LabelRequest != nil {
		sess.pendingLabel = outcome.LabelRequest
		sess.awaiting = awaitingRangeLabel
		h.reply(chatID, fmt.Sprintf(
			"✏️ Podaj nazwę dla zakresu %s (%s - %s):",
			outcome.LabelRequest.Item.Label,
			dates.Format(outcome.LabelRequest.Start),
			dates.Format(outcome.LabelRequest.End),
		))
	}

	h.refreshCalendar(chatID, messageID, monthIdx)
}

func (h *Handler) handleNavCallback(chatID int64, messageID int, parts []string) {
	if len(parts) != 2 {
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	h.refreshCalendar(chatID, messageID, idx)
}

// refreshCalendar re-renders the month grid of an already sent calendar
// message in place.
func (h *Handler) refreshCalendar(chatID int64, messageID, monthIdx int) {
	months, ranges, ok := h.calendarState(chatID)
	if !ok {
		return
	}
	if monthIdx < 0 || monthIdx >= len(months) {
		monthIdx = 0
	}

	sess := h.session(chatID)
	keyboard := h.buildMonthKeyboard(months, monthIdx, ranges, sess)
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, keyboard)
	if _, err := h.client.Bot.Send(edit); err != nil {
		logrus.WithError(err).Warn("failed to refresh calendar")
	}
}

// applyRangeLabel finalizes a commit that was suspended to ask for a label.
func (h *Handler) applyRangeLabel(chatID int64, sess *chatSession, label string) {
	req := sess.pendingLabel
	if req == nil {
		h.reply(chatID, "Brak oczekującego zakresu do nazwania.")
		return
	}
	sess.pendingLabel = nil
	sess.activeType = ""
	sess.selection.Reset()

	if _, err := h.plannerService.CommitLabeled(req, label); err != nil {
		logrus.WithError(err).Error("failed to commit labeled range")
		h.reply(chatID, "❌ Błąd zapisu zakresu: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf(
		"✅ Dodano zakres %s (%s - %s), nazwa: %s",
		req.Item.Label, dates.Format(req.Start), dates.Format(req.End), label,
	))
}
