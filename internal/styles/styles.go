// Package styles maps semantic style attributes onto lipgloss styles by
// token lookup into a resolved theme.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/tint/internal/theme"
)

// Props are semantic style attributes. Color values are token paths
// into the theme (e.g. "colors.text"); a value that does not resolve to
// a token is passed through as a literal color.
type Props struct {
	Color      string
	Background string
	Bold       bool
}

// Resolve turns a token path or literal into a lipgloss color. The
// theme handed in must already be concrete; a lookup miss is not an
// error, the reference is used verbatim.
func Resolve(t theme.Theme, ref string) lipgloss.Color {
	if v, ok := t.GetString(ref); ok {
		return lipgloss.Color(v)
	}
	return lipgloss.Color(ref)
}

// New builds a lipgloss style from semantic props resolved against the
// theme.
func New(t theme.Theme, p Props) lipgloss.Style {
	style := lipgloss.NewStyle()
	if p.Color != "" {
		style = style.Foreground(Resolve(t, p.Color))
	}
	if p.Background != "" {
		style = style.Background(Resolve(t, p.Background))
	}
	if p.Bold {
		style = style.Bold(true)
	}
	return style
}

// Text is shorthand for a foreground-only style on the "colors.text"
// token.
func Text(t theme.Theme) lipgloss.Style {
	return New(t, Props{Color: "colors.text"})
}

// Muted is shorthand for the "colors.textMuted" token.
func Muted(t theme.Theme) lipgloss.Style {
	return New(t, Props{Color: "colors.textMuted"})
}

// Accent is shorthand for the "colors.accent" token.
func Accent(t theme.Theme) lipgloss.Style {
	return New(t, Props{Color: "colors.accent"})
}
