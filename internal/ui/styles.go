// Package ui provides terminal styling for ccf output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ayu palette, adaptive to light and dark terminals.
var (
	ColorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	ColorCmd    = lipgloss.AdaptiveColor{Light: "#5c6166", Dark: "#bfbdb6"}
)

var (
	PassStyle    = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle    = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle    = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	CommandStyle = lipgloss.NewStyle().Foreground(ColorCmd)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// Progress bar glyphs.
const (
	BarFilled = "█"
	BarEmpty  = "░"
)

var noColor bool

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}

// ColorEnabled reports whether styled output is in effect.
func ColorEnabled() bool {
	return !noColor
}

func render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

func RenderPass(s string) string    { return render(PassStyle, s) }
func RenderWarn(s string) string    { return render(WarnStyle, s) }
func RenderFail(s string) string    { return render(FailStyle, s) }
func RenderMuted(s string) string   { return render(MutedStyle, s) }
func RenderAccent(s string) string  { return render(AccentStyle, s) }
func RenderCommand(s string) string { return render(CommandStyle, s) }
func RenderHeader(s string) string  { return render(HeaderStyle, s) }

// Rule returns a line of "=" as wide as s renders.
func Rule(s string) string {
	return strings.Repeat("=", lipgloss.Width(s))
}

// Underline returns s followed by its Rule.
func Underline(s string) string {
	return s + "\n" + Rule(s)
}

// ProgressBar draws a width-cell bar filled to percent (clamped to 0..100).
func ProgressBar(percent, width int) string {
	percent = max(0, min(100, percent))
	filled := percent * width / 100
	return strings.Repeat(BarFilled, filled) + strings.Repeat(BarEmpty, width-filled)
}
