package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"promodeck/internal/domain"
)

const dateFormat = "2006-01-02"

// ActivityRenderer handles rendering of activity items
type ActivityRenderer struct {
	styles *Styles
}

// NewActivityRenderer creates a new activity renderer
func NewActivityRenderer(styles *Styles) *ActivityRenderer {
	return &ActivityRenderer{styles: styles}
}

// RenderCompact renders an activity on a single line
func (r *ActivityRenderer) RenderCompact(a domain.Activity, isSelected bool, width int, keyword string) string {
	base := r.baseStyle(isSelected)

	var parts []string
	parts = append(parts, r.statusStyle(a.Status, isSelected).Render(StatusIcon(a.Status)))
	parts = append(parts, base.Render(" "))
	parts = append(parts, r.renderTitle(a, base, keyword))
	parts = append(parts, base.Render("  "))
	parts = append(parts, r.statusStyle(a.Status, isSelected).Render(fmt.Sprintf("[%s]", a.Status.Label())))
	parts = append(parts, base.Foreground(lipgloss.Color("241")).Render(
		fmt.Sprintf("  %s  %s", formatPeriod(a), a.Category)))

	return fitWidth(strings.Join(parts, ""), width, base)
}

// RenderCard renders an activity as a three line card
func (r *ActivityRenderer) RenderCard(a domain.Activity, isSelected bool, width int, keyword string) string {
	base := r.baseStyle(isSelected)
	dim := base.Foreground(lipgloss.Color("241"))

	// Title line
	var title []string
	marker := "  "
	if isSelected {
		marker = "▌ "
	}
	title = append(title, base.Foreground(lipgloss.Color("99")).Render(marker))
	title = append(title, r.statusStyle(a.Status, isSelected).Render(StatusIcon(a.Status)+" "))
	title = append(title, r.renderTitle(a, base.Bold(true), keyword))
	if a.Featured {
		title = append(title, r.styles.Featured.Inherit(base).Render(" ★"))
	}
	title = append(title, base.Render("  "))
	title = append(title, r.statusStyle(a.Status, isSelected).Render(a.Status.Label()))

	// Description line
	desc := a.Description
	if desc == "" {
		desc = string(a.Type)
	}
	descLine := base.Render("    ") + r.highlight(desc, keyword, base.Foreground(lipgloss.Color("252")))

	// Meta line
	meta := []string{formatPeriod(a)}
	if a.Category != "" {
		meta = append(meta, a.Category)
	}
	if a.Location != "" {
		meta = append(meta, a.Location)
	}
	meta = append(meta, fmt.Sprintf("%d joined", a.Participants), fmt.Sprintf("%d views", a.Views))
	metaLine := dim.Render("    " + strings.Join(meta, " · "))

	return strings.Join([]string{
		fitWidth(strings.Join(title, ""), width, base),
		fitWidth(descLine, width, base),
		fitWidth(metaLine, width, base),
	}, "\n")
}

// DetailText renders the full activity for the pager
func (r *ActivityRenderer) DetailText(a domain.Activity) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(a.Title))
	b.WriteString("\n")

	row := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", label.Render(fmt.Sprintf("%-13s", name)), value))
	}
	row("ID", a.ID)
	row("Status", r.statusStyle(a.Status, false).Render(a.Status.Label()))
	row("Type", string(a.Type))
	row("Category", a.Category)
	row("Starts", formatTime(a.StartTime))
	row("Ends", formatTime(a.EndTime))
	row("Location", a.Location)
	row("Participants", fmt.Sprintf("%d", a.Participants))
	row("Views", fmt.Sprintf("%d", a.Views))
	row("Priority", fmt.Sprintf("%d", a.Priority))
	if a.Featured {
		row("Featured", r.styles.Featured.Render("★ yes"))
	}

	if a.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render("Description"))
		b.WriteString("\n")
		b.WriteString(indent(a.Description))
		b.WriteString("\n")
	}
	if a.Rules != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render("Rules"))
		b.WriteString("\n")
		b.WriteString(indent(a.Rules))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *ActivityRenderer) baseStyle(isSelected bool) lipgloss.Style {
	if isSelected {
		return r.styles.HighlightBg
	}
	return lipgloss.NewStyle()
}

func (r *ActivityRenderer) statusStyle(status domain.Status, isSelected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(StatusColor(status)))
	if isSelected {
		style = style.Inherit(r.styles.HighlightBg)
	}
	return style
}

func (r *ActivityRenderer) renderTitle(a domain.Activity, style lipgloss.Style, keyword string) string {
	return r.highlight(a.Title, keyword, style)
}

// highlight renders text with the first keyword match emphasized
func (r *ActivityRenderer) highlight(text, keyword string, normalStyle lipgloss.Style) string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(keyword)

	// Byte offsets are only safe to reuse when lowering kept the length
	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, r.styles.Highlight.Inherit(normalStyle).Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}

// fitWidth truncates or pads a rendered line to exactly width cells
func fitWidth(line string, width int, pad lipgloss.Style) string {
	if width <= 0 {
		return line
	}
	line = ansi.Truncate(line, width, "…")
	if gap := width - ansi.StringWidth(line); gap > 0 {
		line += pad.Render(strings.Repeat(" ", gap))
	}
	return line
}

func formatPeriod(a domain.Activity) string {
	start := formatDate(a)
	if a.EndTime.IsZero() {
		return start + " →"
	}
	return start + " → " + a.EndTime.Format(dateFormat)
}

func formatDate(a domain.Activity) string {
	if a.StartTime.IsZero() {
		return "?"
	}
	return a.StartTime.Format(dateFormat)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func indent(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
