package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the shop key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Switch   key.Binding
	Activate key.Binding
	Clear    key.Binding
	Checkout key.Binding
	Help     key.Binding
	Quit     key.Binding

	// dialog
	Confirm key.Binding
	Cancel  key.Binding
	Toggle  key.Binding
}

func defaultKeyMap(checkout bool) keyMap {
	k := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "arriba"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "abajo"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "productos/carrito"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "agregar/eliminar"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "vaciar carrito"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "finalizar compra"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ayuda"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "salir"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "s"),
			key.WithHelp("y", "confirmar"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancelar"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "elegir"),
		),
	}
	k.Checkout.SetEnabled(checkout)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Activate, k.Clear, k.Checkout, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch, k.Activate},
		{k.Clear, k.Checkout, k.Help, k.Quit},
	}
}
