package theme

// Default returns the built-in theme used by an outermost scope that
// supplies no theme of its own. The base tokens double as the "light"
// polarity; the scheme table carries the dark variants.
func Default() Theme {
	return Theme{
		"colors": map[string]any{
			"text":       "#1f2328",
			"textMuted":  "#59636e",
			"background": "#ffffff",
			"accent":     "#0969da",
			"success":    "#1a7f37",
			"attention":  "#9a6700",
			"danger":     "#d1242f",
			"border":     "#d1d9e0",
		},
		"space": map[string]any{
			"none": 0,
			"xs":   1,
			"sm":   2,
			"md":   4,
			"lg":   8,
		},
		"fontWeights": map[string]any{
			"normal": 400,
			"bold":   600,
		},
		SchemeTableKey: map[string]any{
			"light": map[string]any{},
			"dark": map[string]any{
				"colors": map[string]any{
					"text":       "#f0f6fc",
					"textMuted":  "#9198a1",
					"background": "#0d1117",
					"accent":     "#4493f8",
					"success":    "#3fb950",
					"attention":  "#d29922",
					"danger":     "#f85149",
					"border":     "#3d444d",
				},
			},
			"dark_dimmed": map[string]any{
				"colors": map[string]any{
					"text":       "#d1d7e0",
					"textMuted":  "#9198a1",
					"background": "#212830",
					"accent":     "#478be6",
					"success":    "#57ab5a",
					"attention":  "#c69026",
					"danger":     "#e5534b",
					"border":     "#444c56",
				},
			},
		},
	}
}
