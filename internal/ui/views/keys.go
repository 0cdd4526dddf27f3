package views

import "github.com/charmbracelet/bubbles/key"

// footerKeys are the bindings listed in the one-line help at the bottom of the screen
var footerKeys = []key.Binding{
	key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "status")),
	key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dates")),
	key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "page")),
	key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "layout")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}
