package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"promodeck/internal/filters"
	"promodeck/internal/ui/input/types"
)

// DateRangeMode edits the date range filter as START..END
type DateRangeMode struct {
	*TextInputMode
}

func NewDateRangeMode(ti *textinput.Model) *DateRangeMode {
	return &DateRangeMode{
		TextInputMode: NewTextInputMode(types.ModeDateRange, "date-range", "Dates (YYYY-MM-DD..YYYY-MM-DD): ", ti),
	}
}

func (m *DateRangeMode) Enter(ctx types.Context) []types.Action {
	m.begin(filters.FormatDateRange(ctx.DateRange()))
	return nil
}
