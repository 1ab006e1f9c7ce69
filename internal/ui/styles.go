package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/notify"
)

// Semantic colors
var (
	Primary     = lipgloss.Color("#101F38")
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#8A94A6")
	Border      = lipgloss.Color("#2A3850")
	Destructive = lipgloss.Color("#E53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	Price       lipgloss.Style
	Button      lipgloss.Style
	Danger      lipgloss.Style
	Total       lipgloss.Style
	Error       lipgloss.Style
	Dialog      lipgloss.Style
	Toast       map[notify.Icon]lipgloss.Style
}

// DefaultStyles returns the shop styles.
func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	toast := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Header:      lipgloss.NewStyle().Bold(true).Underline(true),
		Pane:        pane,
		FocusedPane: pane.BorderForeground(Accent),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Muted:       lipgloss.NewStyle().Foreground(Muted),
		Price:       lipgloss.NewStyle().Foreground(Info),
		Button:      lipgloss.NewStyle().Foreground(Info),
		Danger:      lipgloss.NewStyle().Foreground(Destructive),
		Total:       lipgloss.NewStyle().Bold(true),
		Error:       lipgloss.NewStyle().Foreground(Destructive),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Accent).
			Padding(1, 3),
		Toast: map[notify.Icon]lipgloss.Style{
			notify.IconSuccess: toast.Background(Success),
			notify.IconError:   toast.Background(Destructive),
			notify.IconWarning: toast.Background(Warning).Foreground(Primary),
		},
	}
}

// iconGlyph is the symbol shown in dialog titles.
func iconGlyph(icon notify.Icon) string {
	switch icon {
	case notify.IconSuccess:
		return "✔"
	case notify.IconError:
		return "✖"
	case notify.IconWarning:
		return "⚠"
	default:
		return "•"
	}
}
