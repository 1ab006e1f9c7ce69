package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/shop"
)

const title = "🛒 Simulador de Carrito"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.dialog != nil {
		return m.renderDialog()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderCatalog(), " ", m.renderCart())
	b.WriteString(body)
	b.WriteString("\n")

	if m.toast != nil {
		style := m.styles.Toast[m.toast.Icon]
		b.WriteString(style.Render(iconGlyph(m.toast.Icon) + " " + m.toast.Text))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderCatalog() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Productos"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Cargando productos...")
	case len(m.cards) == 0:
		b.WriteString(m.styles.Muted.Render("Sin productos"))
	default:
		button := "[Agregar]"
		if m.shop.Variant() == shop.Static {
			button = "[Comprar]"
		}
		for i, c := range m.cards {
			if i > 0 {
				b.WriteString("\n")
			}
			line := c.product.Glyph + " " + c.product.Name + "  " +
				m.styles.Price.Render(catalog.FormatPrice(c.product.Price)) + "  " +
				m.styles.Button.Render(button)
			b.WriteString(m.cursorLine(paneCatalog, i, line))
		}
	}
	return m.paneStyle(paneCatalog).Render(b.String())
}

func (m Model) renderCart() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Carrito"))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.Muted.Render("(vacío)"))
	}
	for i, r := range m.rows {
		line := r.product.Name + " - " + catalog.FormatPrice(r.product.Price) + "  " +
			m.styles.Danger.Render("[X]")
		b.WriteString(m.cursorLine(paneCart, i, line))
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Total.Render("Total: " + catalog.FormatPrice(m.shop.Cart().Total())))
	return m.paneStyle(paneCart).Render(b.String())
}

func (m Model) cursorLine(p pane, i int, line string) string {
	if m.focus == p && m.cursor[p] == i {
		return m.styles.Selected.Render("> ") + line
	}
	return "  " + line
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p {
		return m.styles.FocusedPane
	}
	return m.styles.Pane
}

func (m Model) renderDialog() string {
	d := m.dialog

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(iconGlyph(d.Icon) + " " + d.Title))
	if d.Text != "" {
		b.WriteString("\n\n" + d.Text)
	}
	b.WriteString("\n\n")

	if d.IsConfirm() {
		confirm, cancel := "[ "+d.ConfirmText+" ]", "[ "+d.CancelText+" ]"
		if m.dialogCancel {
			cancel = m.styles.Selected.Render(cancel)
		} else {
			confirm = m.styles.Selected.Render(confirm)
		}
		b.WriteString(confirm + "  " + cancel)
	} else {
		text := d.ConfirmText
		if text == "" {
			text = "OK"
		}
		b.WriteString(m.styles.Selected.Render("[ " + text + " ]"))
	}

	box := m.styles.Dialog.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
