// Package theme owns the site-wide visual settings: a named preset plus
// color, gradient, typography, spacing, animation and effect sections.
// The manager is the single writer of the persisted theme-settings key.
package theme

type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
	Border     string `json:"border"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
}

type Gradients struct {
	Hero   string `json:"hero"`
	Card   string `json:"card"`
	Button string `json:"button"`
	Banner string `json:"banner"`
}

type Typography struct {
	FontFamily    string  `json:"fontFamily"`
	BaseSize      int     `json:"baseSize"`
	Scale         float64 `json:"scale"`
	HeadingWeight int     `json:"headingWeight"`
}

// Spacing follows a small geometric scale; values are multiples of Unit.
type Spacing struct {
	Unit   int `json:"unit"`
	Gutter int `json:"gutter"`
	Radius int `json:"radius"`
}

type Animations struct {
	Enabled    bool   `json:"enabled"`
	DurationMs int    `json:"durationMs"`
	Easing     string `json:"easing"`
}

type Effects struct {
	Shadows bool `json:"shadows"`
	Blur    bool `json:"blur"`
	Noise   bool `json:"noise"`
}

type Settings struct {
	Preset     string     `json:"preset"`
	Colors     Colors     `json:"colors"`
	Gradients  Gradients  `json:"gradients"`
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
	Animations Animations `json:"animations"`
	Effects    Effects    `json:"effects"`
}

// Defaults is the built-in starting point; import and load both overlay
// on top of a fresh copy of this, never on the current settings.
func Defaults() Settings {
	return Settings{
		Preset:    "default",
		Colors:    presets["default"].Colors,
		Gradients: presets["default"].Gradients,
		Typography: Typography{
			FontFamily:    "Inter, sans-serif",
			BaseSize:      16,
			Scale:         1.25,
			HeadingWeight: 700,
		},
		Spacing: Spacing{Unit: 4, Gutter: 16, Radius: 8},
		Animations: Animations{
			Enabled:    true,
			DurationMs: 200,
			Easing:     "ease-in-out",
		},
		Effects: Effects{Shadows: true},
	}
}
