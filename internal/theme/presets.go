package theme

// Preset is a complete color+gradient bundle. ApplyPreset swaps both
// palettes wholesale; it never touches the other sections.
type Preset struct {
	Colors    Colors
	Gradients Gradients
}

var presets = map[string]Preset{
	"default": {
		Colors: Colors{
			Primary:    "#2563eb",
			Secondary:  "#7c3aed",
			Accent:     "#f59e0b",
			Background: "#ffffff",
			Surface:    "#f9fafb",
			Text:       "#111827",
			TextMuted:  "#6b7280",
			Border:     "#e5e7eb",
			Success:    "#16a34a",
			Warning:    "#d97706",
			Error:      "#dc2626",
		},
		Gradients: Gradients{
			Hero:   "linear-gradient(135deg, #2563eb, #7c3aed)",
			Card:   "linear-gradient(180deg, #ffffff, #f9fafb)",
			Button: "linear-gradient(90deg, #2563eb, #3b82f6)",
			Banner: "linear-gradient(90deg, #f59e0b, #ef4444)",
		},
	},
	"dark": {
		Colors: Colors{
			Primary:    "#3b82f6",
			Secondary:  "#8b5cf6",
			Accent:     "#fbbf24",
			Background: "#111827",
			Surface:    "#1f2937",
			Text:       "#f9fafb",
			TextMuted:  "#9ca3af",
			Border:     "#374151",
			Success:    "#22c55e",
			Warning:    "#f59e0b",
			Error:      "#ef4444",
		},
		Gradients: Gradients{
			Hero:   "linear-gradient(135deg, #1e3a8a, #4c1d95)",
			Card:   "linear-gradient(180deg, #1f2937, #111827)",
			Button: "linear-gradient(90deg, #3b82f6, #60a5fa)",
			Banner: "linear-gradient(90deg, #b45309, #991b1b)",
		},
	},
	"ocean": {
		Colors: Colors{
			Primary:    "#0891b2",
			Secondary:  "#0e7490",
			Accent:     "#06b6d4",
			Background: "#f0fdfa",
			Surface:    "#ccfbf1",
			Text:       "#134e4a",
			TextMuted:  "#5eead4",
			Border:     "#99f6e4",
			Success:    "#059669",
			Warning:    "#d97706",
			Error:      "#e11d48",
		},
		Gradients: Gradients{
			Hero:   "linear-gradient(135deg, #0891b2, #0e7490)",
			Card:   "linear-gradient(180deg, #f0fdfa, #ccfbf1)",
			Button: "linear-gradient(90deg, #0891b2, #06b6d4)",
			Banner: "linear-gradient(90deg, #06b6d4, #3b82f6)",
		},
	},
	"sunset": {
		Colors: Colors{
			Primary:    "#ea580c",
			Secondary:  "#db2777",
			Accent:     "#facc15",
			Background: "#fff7ed",
			Surface:    "#ffedd5",
			Text:       "#431407",
			TextMuted:  "#9a3412",
			Border:     "#fed7aa",
			Success:    "#16a34a",
			Warning:    "#ca8a04",
			Error:      "#be123c",
		},
		Gradients: Gradients{
			Hero:   "linear-gradient(135deg, #ea580c, #db2777)",
			Card:   "linear-gradient(180deg, #fff7ed, #ffedd5)",
			Button: "linear-gradient(90deg, #ea580c, #f97316)",
			Banner: "linear-gradient(90deg, #facc15, #ea580c)",
		},
	},
}

// PresetNames lists the available presets in a stable order for the UI.
func PresetNames() []string {
	return []string{"default", "dark", "ocean", "sunset"}
}
