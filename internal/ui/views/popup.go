package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of the main content.
// The main content is greyed out except lines mentioning the popup's first line.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	if width > 0 && modalW > width {
		modalW = width
	}
	if height > 0 && modalH > height {
		modalH = height
		popupLines = popupLines[:modalH]
	}
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateKeeping(mainContent, extractTitlePlain(popupContent)), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	for i, line := range popupLines {
		base[y+i] = spliceLine(base[y+i], ansi.Truncate(line, modalW, ""), x, modalW)
	}
	return strings.Join(base, "\n")
}

// spliceLine replaces w cells of line starting at column x with insert
func spliceLine(line, insert string, x, w int) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	return left + insert + right
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(ansi.Strip(s))
}

// extractTitlePlain returns the first line of popup content without ANSI
func extractTitlePlain(popup string) string {
	first, _, _ := strings.Cut(popup, "\n")
	return strings.TrimSpace(ansi.Strip(first))
}

// desaturateKeeping turns everything greyscale except lines containing keepSubstr (plain text match)
func desaturateKeeping(s, keepSubstr string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		plain := ansi.Strip(line)
		if keepSubstr != "" && strings.Contains(plain, keepSubstr) {
			out[i] = line
		} else {
			out[i] = desaturateANSI(line)
		}
	}
	return strings.Join(out, "\n")
}
