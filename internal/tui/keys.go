package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Cart    key.Binding
	Search  key.Binding
	Remove  key.Binding
	Payment key.Binding
	Tab     key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "выбрать")),
		Cart:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "корзина")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "поиск")),
		Remove:  key.NewBinding(key.WithKeys("x", "delete", "backspace"), key.WithHelp("x", "убрать")),
		Payment: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "оплата")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "поле")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "закрыть")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
	}
}
