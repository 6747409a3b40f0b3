package advent

// Hardcoded fallbacks, used when neither the day nor the calendar supplies
// a value.
const (
	FallbackStyle     = "circle"
	FallbackColor     = "#dc2626"
	FallbackTextColor = "#ffffff"
	FallbackSize      = 6.5
	FallbackFontSize  = 40.0
)

// Locked tiles render muted regardless of their resolved colors.
const (
	LockedColor     = "#374151"
	LockedTextColor = "#9ca3af"
)

// Overrides are a day's optional per-tile values; nil means "inherit the
// calendar default".
type Overrides struct {
	Style           *string
	BackgroundColor *string
	TextColor       *string
	Size            *float64
	FontSize        *float64
}

// Defaults are the calendar-wide values. Empty string / zero means unset and
// falls through to the hardcoded fallback.
type Defaults struct {
	Style     string
	Color     string
	TextColor string
	Size      float64
	FontSize  float64
}

// Appearance is a fully resolved tile style. Every field is concrete.
type Appearance struct {
	Style           string  `json:"style"`
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
	Size            float64 `json:"size"`
	FontSize        float64 `json:"fontSize"`
}

// Resolve applies the override-or-default-or-fallback chain per attribute.
// Pure: same inputs always give the same Appearance.
func Resolve(o Overrides, d Defaults) Appearance {
	return Appearance{
		Style:           pickString(o.Style, d.Style, FallbackStyle),
		BackgroundColor: pickString(o.BackgroundColor, d.Color, FallbackColor),
		TextColor:       pickString(o.TextColor, d.TextColor, FallbackTextColor),
		Size:            pickFloat(o.Size, d.Size, FallbackSize),
		FontSize:        pickFloat(o.FontSize, d.FontSize, FallbackFontSize),
	}
}

// Presentation is what a tile actually renders with. The underlying resolved
// appearance is kept so unlocking needs no re-resolution.
type Presentation struct {
	Appearance Appearance `json:"appearance"`
	Unlocked   bool       `json:"unlocked"`
	// Display colors: the resolved ones when unlocked, muted greys when not.
	BackgroundColor string `json:"displayBackgroundColor"`
	TextColor       string `json:"displayTextColor"`
}

// Present layers the lock state on top of a resolved appearance.
func Present(a Appearance, unlocked bool) Presentation {
	p := Presentation{Appearance: a, Unlocked: unlocked, BackgroundColor: a.BackgroundColor, TextColor: a.TextColor}
	if !unlocked {
		p.BackgroundColor = LockedColor
		p.TextColor = LockedTextColor
	}
	return p
}

func pickString(override *string, def, fallback string) string {
	if override != nil && *override != "" {
		return *override
	}
	if def != "" {
		return def
	}
	return fallback
}

func pickFloat(override *float64, def, fallback float64) float64 {
	if override != nil && *override != 0 {
		return *override
	}
	if def != 0 {
		return def
	}
	return fallback
}
