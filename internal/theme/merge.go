package theme

// Merge deep-merges override onto base and returns the result as a new
// Theme. For every key in override: when both sides are mappings the
// merge recurses; otherwise the override value replaces the base value
// wholesale (scalars, sequences, and mixed-type collisions are not
// combined). A nil override returns base unchanged. Neither argument is
// mutated.
func Merge(base, override Theme) Theme {
	if override == nil {
		return base
	}
	if base == nil {
		return override.Clone()
	}
	return Theme(mergeMaps(map[string]any(base), map[string]any(override)))
}

func mergeMaps(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		baseNode, baseIsMap := asMap(out[k])
		overrideNode, overrideIsMap := asMap(v)
		if baseIsMap && overrideIsMap {
			out[k] = mergeMaps(baseNode, overrideNode)
			continue
		}
		out[k] = v
	}
	return out
}
