package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/tint/internal/theme"
)

func testTheme() theme.Theme {
	return theme.Theme{
		"colors": map[string]any{
			"text":   "#1f2328",
			"accent": "#0969da",
		},
	}
}

func TestResolveTokenPath(t *testing.T) {
	require.Equal(t, lipgloss.Color("#1f2328"), Resolve(testTheme(), "colors.text"))
}

func TestResolveLiteralPassthrough(t *testing.T) {
	require.Equal(t, lipgloss.Color("#ff0000"), Resolve(testTheme(), "#ff0000"))
	require.Equal(t, lipgloss.Color("212"), Resolve(testTheme(), "212"))
}

func TestNewAppliesProps(t *testing.T) {
	style := New(testTheme(), Props{
		Color:      "colors.text",
		Background: "colors.accent",
		Bold:       true,
	})

	require.Equal(t, lipgloss.Color("#1f2328"), style.GetForeground())
	require.Equal(t, lipgloss.Color("#0969da"), style.GetBackground())
	require.True(t, style.GetBold())
}

func TestNewSkipsUnsetProps(t *testing.T) {
	style := New(testTheme(), Props{})
	require.False(t, style.GetBold())
}

func TestShorthandsFollowTheTheme(t *testing.T) {
	resolved := theme.ResolveScheme(theme.Default(), "dark")
	fg := Text(resolved).GetForeground()
	require.Equal(t, lipgloss.Color("#f0f6fc"), fg)
}
