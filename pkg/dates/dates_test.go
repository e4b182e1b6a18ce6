package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "ISO format",
			input: "2024-01-15",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
			ok:    true,
		},
		{
			name:  "slash format day first",
			input: "15/01/2024",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
			ok:    true,
		},
		{
			name:  "dot format day first",
			input: "15.01.2024",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
			ok:    true,
		},
		{
			name:  "leap day",
			input: "29.02.2024",
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
			ok:    true,
		},
		{name: "empty string", input: "", ok: false},
		{name: "garbage", input: "not-a-date", ok: false},
		{name: "nonexistent day", input: "30.02.2024", ok: false},
		{name: "month out of range", input: "01.13.2024", ok: false},
		{name: "too few parts", input: "01.2024", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizedRange(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	jan5 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local)

	t.Run("orders backwards selection", func(t *testing.T) {
		start, end, ok := NormalizedRange("05.01.2024", "01.01.2024")
		require.True(t, ok)
		assert.True(t, start.Equal(jan1))
		assert.True(t, end.Equal(jan5))
	})

	t.Run("mixed string and time inputs", func(t *testing.T) {
		start, end, ok := NormalizedRange(jan1, "2024-01-05")
		require.True(t, ok)
		assert.True(t, start.Equal(jan1))
		assert.True(t, end.Equal(jan5))
	})

	t.Run("invalid input yields no range", func(t *testing.T) {
		_, _, ok := NormalizedRange("bogus", "2024-01-05")
		assert.False(t, ok)
	})
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestIsValidISODate(t *testing.T) {
	assert.True(t, IsValidISODate("2024-01-01"))
	assert.False(t, IsValidISODate("2024-1-1"))
	assert.False(t, IsValidISODate("01.01.2024"))
	assert.False(t, IsValidISODate("2024-02-30"))
	assert.False(t, IsValidISODate("invalid-date"))
}

func TestFormatRoundTrip(t *testing.T) {
	d := time.Date(2024, 7, 3, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "03.07.2024", Format(d))
	assert.Equal(t, "2024-07-03", FormatISO(d))

	parsed, ok := Parse(Format(d))
	require.True(t, ok)
	assert.True(t, parsed.Equal(d))
}
