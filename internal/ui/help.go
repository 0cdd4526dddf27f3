package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move up/down"},
		{"PgUp/PgDn", "Scroll a screen up/down"},
		{"gg/G", "Go to top/bottom"},
		{"Mouse wheel", "Scroll the list"},
	}},
	{"Pages", []helpEntry{
		{"[/], ←/→", "Previous/next page"},
		{"H/L", "First/last page"},
		{"z", "Cycle page size"},
	}},
	{"Filters", []helpEntry{
		{"/", "Filter by keyword (applies as you type)"},
		{"1-4", "Status: all/active/upcoming/ended"},
		{"t", "Date range, e.g. 2025-06-01..2025-06-30"},
		{"R", "Reset all filters"},
		{"y", "Copy the query link"},
	}},
	{"Activities", []helpEntry{
		{"Enter", "Show details"},
		{"d", "Delete activity"},
		{"r", "Reload catalog"},
		{"v", "Switch layout (card/compact)"},
	}},
	{"Other", []helpEntry{
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("promodeck Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", e.keys)),
				descStyle.Render(e.desc)))
		}
		if i < len(helpSections)-1 {
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Query link example: ?status=active&keyword=sale&page=2"))
	return help.String()
}

// PagerOps shows long content in ov, handing the terminal over while it runs
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using the ov pager
func (h *PagerOps) ShowInPager(content string) error {
	if h == nil || h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
