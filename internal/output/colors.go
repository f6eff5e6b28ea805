package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for the report table.
type ColorScheme struct {
	Border  *color.Color
	Header  *color.Color
	Fail    *color.Color
	Missing *color.Color
	Summary *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Border:  color.New(color.FgHiBlack),
		Header:  color.New(color.FgCyan, color.Bold),
		Fail:    color.New(color.FgRed, color.Bold),
		Missing: color.New(color.FgYellow),
		Summary: color.New(color.FgGreen),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range []*color.Color{scheme.Border, scheme.Header, scheme.Fail, scheme.Missing, scheme.Summary} {
		c.DisableColor()
	}
	return scheme
}
