package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	refresh    key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	yes        key.Binding
	no         key.Binding
	save       key.Binding
	toggleMode key.Binding
	mine       key.Binding
	category   key.Binding
	search     key.Binding
	prevPage   key.Binding
	nextPage   key.Binding
	desk       key.Binding
	shelf      key.Binding
	theme      key.Binding
	rotate     key.Binding
	version    key.Binding
	cycle      key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left", "h")),
	right:      key.NewBinding(key.WithKeys("right", "l")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("L")),
	refresh:    key.NewBinding(key.WithKeys("R")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("y")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	toggleMode: key.NewBinding(key.WithKeys("ctrl+r")),
	mine:       key.NewBinding(key.WithKeys("m")),
	category:   key.NewBinding(key.WithKeys("c")),
	search:     key.NewBinding(key.WithKeys("/")),
	prevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup")),
	nextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown")),
	desk:       key.NewBinding(key.WithKeys("s")),
	shelf:      key.NewBinding(key.WithKeys("b", "esc")),
	theme:      key.NewBinding(key.WithKeys("t")),
	rotate:     key.NewBinding(key.WithKeys("r")),
	version:    key.NewBinding(key.WithKeys("f1")),
	cycle:      key.NewBinding(key.WithKeys(" ", "left", "right")),
}
