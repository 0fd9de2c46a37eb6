package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Framework *color.Color
	Language  *color.Color
	TestName  *color.Color
	RouteKey  *color.Color
	RoutePath *color.Color
	Label     *color.Color
	Success   *color.Color
	Error     *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Framework: color.New(color.FgBlue, color.Bold),
		Language:  color.New(color.FgCyan),
		TestName:  color.New(color.FgGreen, color.Bold),
		RouteKey:  color.New(color.FgYellow),
		RoutePath: color.New(color.FgWhite),
		Label:     color.New(color.FgMagenta),
		Success:   color.New(color.FgGreen),
		Error:     color.New(color.FgRed),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Framework.DisableColor()
	scheme.Language.DisableColor()
	scheme.TestName.DisableColor()
	scheme.RouteKey.DisableColor()
	scheme.RoutePath.DisableColor()
	scheme.Label.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Highlight.DisableColor()

	return scheme
}

// IsTerminal reports whether f is attached to a terminal, so callers can
// drop colors on redirected output.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
