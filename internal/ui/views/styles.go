package views

import (
	"github.com/charmbracelet/lipgloss"

	"promodeck/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	ConfirmBox    lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Featured      lipgloss.Style
	CurrentPage   lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1).
			MarginBottom(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("203")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Featured:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		CurrentPage:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// StatusColor returns the color used for an activity status
func StatusColor(status domain.Status) string {
	switch status {
	case domain.StatusActive:
		return "78" // green
	case domain.StatusUpcoming:
		return "33" // blue
	case domain.StatusEnded:
		return "241" // gray
	default:
		return "252"
	}
}

// StatusIcon returns the glyph shown in front of an activity
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusActive:
		return "●"
	case domain.StatusUpcoming:
		return "◔"
	case domain.StatusEnded:
		return "○"
	default:
		return "·"
	}
}
