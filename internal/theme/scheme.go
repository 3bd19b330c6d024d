package theme

// ResolveScheme produces the concrete theme for the named color scheme.
// The named partial theme from the scheme table is merged onto the base
// theme and the table itself is stripped from the result, so consumers
// always receive a concrete token tree. An unknown scheme name is a
// silent no-op: the theme is returned unchanged, which lets a theme
// omit scheme support entirely.
func ResolveScheme(t Theme, scheme string) Theme {
	table := t.Schemes()
	if table == nil {
		return t
	}
	raw, ok := table[scheme]
	if !ok {
		return t
	}
	partial, ok := asMap(raw)
	if !ok {
		return t
	}
	return stripSchemeTable(Merge(t, Theme(partial)))
}

func stripSchemeTable(t Theme) Theme {
	if _, ok := t[SchemeTableKey]; !ok {
		return t
	}
	out := make(Theme, len(t))
	for k, v := range t {
		if k == SchemeTableKey {
			continue
		}
		out[k] = v
	}
	return out
}
