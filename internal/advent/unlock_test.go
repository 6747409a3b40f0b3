package advent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCanOpen_TestMode(t *testing.T) {
	// Test mode opens everything, whatever the date.
	july := date(2025, time.July, 1)
	for day := 1; day <= 31; day++ {
		assert.True(t, CanOpen(day, true, july), "day %d", day)
	}
}

func TestCanOpen_OutsideDecember(t *testing.T) {
	for m := time.January; m <= time.November; m++ {
		assert.False(t, CanOpen(1, false, date(2025, m, 28)), "month %s", m)
	}
}

func TestCanOpen_December(t *testing.T) {
	tests := []struct {
		name      string
		dayNumber int
		today     time.Time
		want      bool
	}{
		{"same day", 5, date(2025, time.December, 5), true},
		{"past day", 3, date(2025, time.December, 5), true},
		{"future day", 10, date(2025, time.December, 5), false},
		{"first of december", 1, date(2025, time.December, 1), true},
		{"christmas eve still locked on the 23rd", 24, date(2025, time.December, 23), false},
		{"day number beyond month length", 32, date(2025, time.December, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanOpen(tt.dayNumber, false, tt.today))
		})
	}
}

func TestCanOpen_Monotonic(t *testing.T) {
	// If day D opens today, every day before D opens too.
	today := date(2025, time.December, 17)
	for d := 1; d <= 31; d++ {
		if CanOpen(d, false, today) {
			for e := 1; e < d; e++ {
				assert.True(t, CanOpen(e, false, today), "day %d openable but %d not", d, e)
			}
		}
	}
}
