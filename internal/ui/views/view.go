package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"promodeck/internal/domain"
	"promodeck/internal/filters"
	"promodeck/internal/window"
)

// Rows taken by everything but the list: container padding (2), title (2),
// scroll indicators (2), status bar with margins (5) and the help hint (1)
const chromeRows = 12

// inputRows is the extra space used while a text prompt is open
const inputRows = 2

// ListHeight returns the number of rows available to the list for a terminal height
func ListHeight(height int, inputOpen bool) int {
	rows := height - chromeRows
	if inputOpen {
		rows -= inputRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Items         []domain.Activity
	Cursor        int
	Layout        Layout
	Window        *window.Window
	Virtualized   bool
	Criteria      filters.Criteria
	Query         string
	Pagination    filters.PaginationResult
	Stats         domain.StatusCounts
	CatalogSource string
	StatusMessage string
	StatusIsError bool
	InputPrompt   string
	TextInput     string
	DeleteTarget  string
	InputOpen     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	activities  *ActivityRenderer
	popupRender *PopupRenderer
	layouts     *Layouts
	help        help.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	activities := NewActivityRenderer(styles)
	return &Renderer{
		styles:      styles,
		activities:  activities,
		popupRender: NewPopupRenderer(styles),
		layouts:     DefaultLayouts(activities),
		help:        help.New(),
	}
}

// Layouts returns the layout registry used by the renderer
func (r *Renderer) Layouts() *Layouts {
	return r.layouts
}

// Activities returns the activity renderer
func (r *Renderer) Activities() *ActivityRenderer {
	return r.activities
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - 4 // main container padding

	content.WriteString(r.renderTitle(state, innerWidth))
	content.WriteString("\n")

	if state.InputOpen {
		content.WriteString(r.styles.Filter.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	listHeight := ListHeight(state.Height, state.InputOpen)
	if len(state.Items) == 0 {
		content.WriteString("\n")
		if state.Criteria.HasFilters() {
			content.WriteString(r.styles.Dim.Render("No activities match the current filters. Press R to reset."))
		} else {
			content.WriteString(r.styles.Dim.Render("The catalog is empty."))
		}
		content.WriteString(strings.Repeat("\n", listHeight))
	} else {
		content.WriteString(r.renderList(state, innerWidth, listHeight))
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatusBar(state, innerWidth))

	// Push the help hint to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	footer := r.help
	footer.Width = innerWidth
	content.WriteString(r.styles.Help.Render(footer.ShortHelpView(footerKeys)))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.DeleteTarget != "" {
		popup := fmt.Sprintf("%s\n\n%s", state.DeleteTarget,
			r.styles.Confirm.Render("Delete this activity? (y/n)"))
		return r.popupRender.RenderPopupOverlay(finalContent, popup, state.Height, termWidth, r.styles.ConfirmBox)
	}
	return finalContent
}

// renderTitle builds the title line with right-aligned filter indicators
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("promodeck")

	var indicators []string
	c := state.Criteria
	if c.Status != domain.StatusAll {
		indicators = append(indicators, "status: "+c.Status.Label())
	}
	if c.Keyword != "" {
		indicators = append(indicators, fmt.Sprintf("keyword: %q", c.Keyword))
	}
	if c.StartDate != "" || c.EndDate != "" {
		indicators = append(indicators, "dates: "+filters.FormatDateRange(c.StartDate, c.EndDate))
	}

	right := ""
	if len(indicators) > 0 {
		right = r.styles.Filter.Render(fmt.Sprintf("[%s]", strings.Join(indicators, " | ")))
	}
	mode := state.Layout.Name
	if state.Virtualized {
		mode += " · virtual"
	}
	if mode != "" {
		if right != "" {
			right += "  "
		}
		right += r.styles.Dim.Render(mode)
	}

	// The title style carries a bottom margin, so pad only its first line
	logoLine, rest, _ := strings.Cut(logo, "\n")
	padding := width - lipgloss.Width(logoLine) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	line := logoLine + strings.Repeat(" ", padding) + right
	if rest != "" {
		line += "\n" + rest
	}
	return line
}

// renderList renders the rows of the list that fall inside the viewport,
// with scroll indicators above and below
func (r *Renderer) renderList(state ViewState, width, listHeight int) string {
	win := state.Window
	layout := state.Layout
	ih := layout.ItemHeight
	if ih < 1 {
		ih = 1
	}

	rng := window.Full(len(state.Items))
	base := 0
	offset := 0
	if win != nil {
		offset = win.ScrollOffset()
		if state.Virtualized {
			rng = win.Visible()
			base = win.RenderOffset()
		}
	}

	rendered := window.VisibleItems(state.Items, rng, func(a domain.Activity, index int) string {
		return layout.renderItem(a, index == state.Cursor, width, state.Criteria.Keyword)
	})
	var rows []string
	for _, item := range rendered {
		rows = append(rows, strings.Split(item, "\n")...)
	}

	// rows[0] sits at content row base; cut out the viewport
	top := offset - base
	if top < 0 {
		top = 0
	}
	if top > len(rows) {
		top = len(rows)
	}
	bottom := top + listHeight
	if bottom > len(rows) {
		bottom = len(rows)
	}
	visible := rows[top:bottom]
	for len(visible) < listHeight {
		visible = append(visible, "")
	}

	hiddenAbove := offset / ih
	hiddenBelow := len(state.Items) - (offset+listHeight+ih-1)/ih
	if hiddenBelow < 0 {
		hiddenBelow = 0
	}

	var b strings.Builder
	if hiddenAbove > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more above ↑", hiddenAbove)))
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n")
	if hiddenBelow > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more below ↓", hiddenBelow)))
	}
	return b.String()
}

// renderStatusBar renders the query link, the item range, the page window and the status counts
func (r *Renderer) renderStatusBar(state ViewState, width int) string {
	p := state.Pagination

	link := r.styles.Dim.Render("(no filters)")
	if state.Query != "" {
		link = r.styles.Filter.Render("?" + state.Query)
	}
	from, to := p.ItemRange()
	showing := fmt.Sprintf("showing %d-%d of %d", from, to, p.TotalItems)
	if p.TotalItems == 0 {
		showing = "showing 0 of 0"
	}
	line1 := link + "  " + showing
	if state.CatalogSource != "" {
		line1 += "  " + r.styles.Dim.Render(state.CatalogSource)
	}

	line2 := r.renderPages(p) + "   " + r.renderCounts(state.Stats, state.Criteria.Status)

	line3 := ""
	if state.StatusMessage != "" {
		if state.StatusIsError {
			line3 = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			line3 = r.styles.StatusSuccess.Render(state.StatusMessage)
		}
	}

	return r.styles.Status.Width(width).Render(strings.Join([]string{line1, line2, line3}, "\n"))
}

func (r *Renderer) renderPages(p filters.PaginationResult) string {
	if p.TotalPages == 0 {
		return "page 0/0"
	}
	var parts []string
	if p.HasPrev() {
		parts = append(parts, "‹")
	}
	for _, n := range filters.PageNumbers(p.Page, p.TotalPages, filters.MaxVisiblePages) {
		if n == p.Page {
			parts = append(parts, r.styles.CurrentPage.Render(fmt.Sprintf("[%d]", n)))
		} else {
			parts = append(parts, fmt.Sprintf("%d", n))
		}
	}
	if p.HasNext() {
		parts = append(parts, "›")
	}
	return fmt.Sprintf("%s  page %d/%d  size %d", strings.Join(parts, " "), p.Page, p.TotalPages, p.PageSize)
}

func (r *Renderer) renderCounts(stats domain.StatusCounts, current domain.Status) string {
	statuses := append([]domain.Status{domain.StatusAll}, domain.Statuses...)
	parts := make([]string, 0, len(statuses))
	for i, s := range statuses {
		text := fmt.Sprintf("%d %s %d", i+1, s.Label(), stats.For(s))
		if s == current {
			text = r.styles.CurrentPage.Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " · ")
}
