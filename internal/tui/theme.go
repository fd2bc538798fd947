package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Header         lipgloss.Style
	Cell           lipgloss.Style
	Weekend        lipgloss.Style
	Today          lipgloss.Style
	Available      lipgloss.Style
	Normal         lipgloss.Style
	Full           lipgloss.Style
	Over           lipgloss.Style
	SeverityHigh   lipgloss.Style
	SeverityMedium lipgloss.Style
	SeverityLow    lipgloss.Style
	Input          lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	Highlight      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("63"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Cell:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Weekend:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Today:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true),
		Available:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Normal:         lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Full:           lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Over:           lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		SeverityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		SeverityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("62"),                                                                   // Purple
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Cell:           lipgloss.NewStyle().Foreground(lipgloss.Color("255")),                                  // White
		Weekend:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),                                   // Comment
		Today:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),       // Pink
		Available:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Normal:         lipgloss.NewStyle().Foreground(lipgloss.Color("120")), // Green
		Full:           lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Over:           lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		SeverityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		SeverityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
