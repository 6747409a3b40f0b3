package advent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string     { return &s }
func floatp(f float64) *float64 { return &f }

func TestResolve_Fallbacks(t *testing.T) {
	// Nothing set anywhere: every attribute lands on its hardcoded fallback.
	a := Resolve(Overrides{}, Defaults{})
	assert.Equal(t, Appearance{
		Style:           "circle",
		BackgroundColor: "#dc2626",
		TextColor:       "#ffffff",
		Size:            6.5,
		FontSize:        40,
	}, a)
}

func TestResolve_Chain(t *testing.T) {
	defaults := Defaults{Style: "square", Color: "#111111", TextColor: "#eeeeee", Size: 8, FontSize: 30}

	tests := []struct {
		name string
		o    Overrides
		want Appearance
	}{
		{
			"calendar defaults win over fallbacks",
			Overrides{},
			Appearance{Style: "square", BackgroundColor: "#111111", TextColor: "#eeeeee", Size: 8, FontSize: 30},
		},
		{
			"day overrides win over defaults",
			Overrides{Style: strp("circle"), BackgroundColor: strp("#ff0000"), Size: floatp(5)},
			Appearance{Style: "circle", BackgroundColor: "#ff0000", TextColor: "#eeeeee", Size: 5, FontSize: 30},
		},
		{
			"empty override falls through",
			Overrides{BackgroundColor: strp("")},
			Appearance{Style: "square", BackgroundColor: "#111111", TextColor: "#eeeeee", Size: 8, FontSize: 30},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.o, defaults))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	o := Overrides{BackgroundColor: strp("#ff0000"), FontSize: floatp(55)}
	d := Defaults{Color: "#111111"}
	first := Resolve(o, d)
	second := Resolve(o, d)
	assert.Equal(t, first, second)
}

func TestPresent_LockedKeepsResolvedValues(t *testing.T) {
	a := Resolve(Overrides{BackgroundColor: strp("#ff0000")}, Defaults{})

	locked := Present(a, false)
	assert.Equal(t, LockedColor, locked.BackgroundColor)
	assert.Equal(t, LockedTextColor, locked.TextColor)
	// Underlying resolution is retained for when the tile unlocks.
	assert.Equal(t, "#ff0000", locked.Appearance.BackgroundColor)

	unlocked := Present(a, true)
	assert.Equal(t, "#ff0000", unlocked.BackgroundColor)
	assert.Equal(t, "#ffffff", unlocked.TextColor)
}

func TestResolve_ExampleScenario(t *testing.T) {
	// Calendar with defaultColor #111111, not in test mode, on Dec 5.
	defaults := Defaults{Color: "#111111"}
	today := date(2025, 12, 5)

	day3 := Resolve(Overrides{}, defaults)
	assert.Equal(t, "#111111", day3.BackgroundColor)
	assert.True(t, CanOpen(3, false, today))

	assert.False(t, CanOpen(10, false, today))

	day3red := Resolve(Overrides{BackgroundColor: strp("#ff0000")}, defaults)
	assert.Equal(t, "#ff0000", day3red.BackgroundColor)
}
