package expect

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/term"

	"github.com/dkoosis/verdict/internal/config"
)

// Theme defines the styles used when rendering failures for a terminal.
type Theme struct {
	Name     string
	Header   lipgloss.Style
	Expected lipgloss.Style
	Actual   lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:     config.ThemeDefault,
		Header:   lipgloss.NewStyle().Bold(true),
		Expected: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Actual:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
	}
}

// MonoTheme returns a monochrome theme (no styling at all).
func MonoTheme() Theme {
	return Theme{
		Name:     config.ThemeMono,
		Header:   lipgloss.NewStyle(),
		Expected: lipgloss.NewStyle(),
		Actual:   lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case config.ThemeMono:
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// themeFor picks the theme for cfg. Styling is only used when colour is
// allowed and stderr is a terminal.
func themeFor(cfg *config.Config) Theme {
	if cfg.NoColor || !term.IsTerminal(int(os.Stderr.Fd())) {
		return MonoTheme()
	}
	return ThemeByName(cfg.Theme)
}

func (t Theme) styles() styles {
	if t.Name == config.ThemeMono {
		return plainStyles
	}
	return styles{
		header:   func(s string) string { return t.Header.Render(s) },
		expected: func(s string) string { return t.Expected.Render(s) },
		actual:   func(s string) string { return t.Actual.Render(s) },
	}
}

// Render formats err for display. Expectation failures are styled with
// theme, and with verbose a structural dump of the subject follows. Other
// errors render as their Error text.
func Render(err error, theme Theme, verbose bool) string {
	var ee *ExpectationError
	if !errors.As(err, &ee) {
		return err.Error()
	}
	out := ee.render(theme.styles())
	if !verbose {
		return out
	}
	heading := "subject:"
	if theme.Name != config.ThemeMono {
		heading = theme.Muted.Render(heading)
	}
	return out + "\n" + heading + "\n" + strings.TrimRight(spew.Sdump(ee.Subject), "\n")
}
