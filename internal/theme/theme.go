// Package theme provides the design-token tree and the merge and
// color-scheme resolution rules used by every tint scope.
package theme

import "strings"

// SchemeTableKey is the reserved top-level key holding the map of
// scheme-name -> partial theme overrides.
const SchemeTableKey = "colorSchemes"

// Theme is an arbitrarily nested token tree: category -> scalar or
// nested mapping. A Theme is never mutated in place; Merge and
// ResolveScheme always return fresh values.
type Theme map[string]any

// Schemes returns the scheme table declared by the theme, or nil when
// the theme declares none.
func (t Theme) Schemes() map[string]any {
	raw, ok := t[SchemeTableKey]
	if !ok {
		return nil
	}
	switch table := raw.(type) {
	case map[string]any:
		return table
	case Theme:
		return map[string]any(table)
	default:
		return nil
	}
}

// Get looks up a dot-separated token path (e.g. "colors.text") and
// reports whether the full path exists.
func (t Theme) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var current any = map[string]any(t)
	for _, part := range strings.Split(path, ".") {
		node, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString is Get for string-valued tokens; non-string values report false.
func (t Theme) GetString(path string) (string, bool) {
	v, ok := t.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Clone returns a deep copy of the theme. Nested maps are copied;
// scalars and sequences are shared, which is safe because themes are
// treated as immutable.
func (t Theme) Clone() Theme {
	if t == nil {
		return nil
	}
	out := make(Theme, len(t))
	for k, v := range t {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	node, ok := asMap(v)
	if !ok {
		return v
	}
	out := make(map[string]any, len(node))
	for k, nested := range node {
		out[k] = cloneValue(nested)
	}
	return out
}

// asMap normalizes the two mapping shapes that show up in a token tree:
// plain map[string]any (YAML, literals) and the Theme type itself.
func asMap(v any) (map[string]any, bool) {
	switch node := v.(type) {
	case map[string]any:
		return node, true
	case Theme:
		return map[string]any(node), true
	default:
		return nil, false
	}
}
