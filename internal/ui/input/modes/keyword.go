package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"promodeck/internal/ui/input/types"
)

// KeywordMode edits the keyword filter. Every edit is reported as an
// UpdateTextAction so the model can debounce the commit while typing.
type KeywordMode struct {
	*TextInputMode
}

func NewKeywordMode(ti *textinput.Model) *KeywordMode {
	return &KeywordMode{
		TextInputMode: NewTextInputMode(types.ModeKeyword, "keyword", "Search: ", ti),
	}
}

func (m *KeywordMode) Enter(ctx types.Context) []types.Action {
	m.begin(ctx.Keyword())
	return nil
}
