package theme

// Each settings section has a typed patch with pointer fields: a nil
// field means "leave it alone". Unknown keys cannot exist by
// construction, unlike a raw map merge.

type ColorsPatch struct {
	Primary    *string `json:"primary,omitempty"`
	Secondary  *string `json:"secondary,omitempty"`
	Accent     *string `json:"accent,omitempty"`
	Background *string `json:"background,omitempty"`
	Surface    *string `json:"surface,omitempty"`
	Text       *string `json:"text,omitempty"`
	TextMuted  *string `json:"textMuted,omitempty"`
	Border     *string `json:"border,omitempty"`
	Success    *string `json:"success,omitempty"`
	Warning    *string `json:"warning,omitempty"`
	Error      *string `json:"error,omitempty"`
}

func (p ColorsPatch) apply(c *Colors) {
	setStr(&c.Primary, p.Primary)
	setStr(&c.Secondary, p.Secondary)
	setStr(&c.Accent, p.Accent)
	setStr(&c.Background, p.Background)
	setStr(&c.Surface, p.Surface)
	setStr(&c.Text, p.Text)
	setStr(&c.TextMuted, p.TextMuted)
	setStr(&c.Border, p.Border)
	setStr(&c.Success, p.Success)
	setStr(&c.Warning, p.Warning)
	setStr(&c.Error, p.Error)
}

type GradientsPatch struct {
	Hero   *string `json:"hero,omitempty"`
	Card   *string `json:"card,omitempty"`
	Button *string `json:"button,omitempty"`
	Banner *string `json:"banner,omitempty"`
}

func (p GradientsPatch) apply(g *Gradients) {
	setStr(&g.Hero, p.Hero)
	setStr(&g.Card, p.Card)
	setStr(&g.Button, p.Button)
	setStr(&g.Banner, p.Banner)
}

type TypographyPatch struct {
	FontFamily    *string  `json:"fontFamily,omitempty"`
	BaseSize      *int     `json:"baseSize,omitempty"`
	Scale         *float64 `json:"scale,omitempty"`
	HeadingWeight *int     `json:"headingWeight,omitempty"`
}

func (p TypographyPatch) apply(t *Typography) {
	setStr(&t.FontFamily, p.FontFamily)
	setInt(&t.BaseSize, p.BaseSize)
	if p.Scale != nil {
		t.Scale = *p.Scale
	}
	setInt(&t.HeadingWeight, p.HeadingWeight)
}

type SpacingPatch struct {
	Unit   *int `json:"unit,omitempty"`
	Gutter *int `json:"gutter,omitempty"`
	Radius *int `json:"radius,omitempty"`
}

func (p SpacingPatch) apply(s *Spacing) {
	setInt(&s.Unit, p.Unit)
	setInt(&s.Gutter, p.Gutter)
	setInt(&s.Radius, p.Radius)
}

type AnimationsPatch struct {
	Enabled    *bool   `json:"enabled,omitempty"`
	DurationMs *int    `json:"durationMs,omitempty"`
	Easing     *string `json:"easing,omitempty"`
}

func (p AnimationsPatch) apply(a *Animations) {
	if p.Enabled != nil {
		a.Enabled = *p.Enabled
	}
	setInt(&a.DurationMs, p.DurationMs)
	setStr(&a.Easing, p.Easing)
}

type EffectsPatch struct {
	Shadows *bool `json:"shadows,omitempty"`
	Blur    *bool `json:"blur,omitempty"`
	Noise   *bool `json:"noise,omitempty"`
}

func (p EffectsPatch) apply(e *Effects) {
	if p.Shadows != nil {
		e.Shadows = *p.Shadows
	}
	if p.Blur != nil {
		e.Blur = *p.Blur
	}
	if p.Noise != nil {
		e.Noise = *p.Noise
	}
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
