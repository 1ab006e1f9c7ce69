// Package ui is the terminal front end of the shop. It renders the catalog
// and the cart, binds every rendered control to its cart operation, and
// shows toasts and modal dialogs.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/cart"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/notify"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/shop"
)

type pane int

const (
	paneCatalog pane = iota
	paneCart
)

// action is the handler bound to a rendered control.
type action func(ctx context.Context) (*notify.Toast, *notify.Dialog, error)

// card is a rendered catalog product.
type card struct {
	product catalog.Product
	add     action
}

// row is a rendered cart entry, bound to removal by its position.
type row struct {
	product catalog.Product
	remove  action
}

// Messages
type (
	catalogLoadedMsg struct {
		products []catalog.Product
		err      error
	}
	toastExpiredMsg struct{ seq int }
)

// Model is the Bubble Tea model of the shop screen.
type Model struct {
	ctx    context.Context
	shop   *shop.Shop
	logger *zap.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  Styles

	loading bool
	cards   []card
	rows    []row
	focus   pane
	cursor  [2]int

	toast    *notify.Toast
	toastSeq int

	dialog       *notify.Dialog
	dialogCancel bool

	err      error
	width    int
	height   int
	quitting bool
}

// NewModel builds the shop screen. The static variant has its catalog at
// once; the remote variant starts loading and fetches it from Init. The
// cart rows reflect whatever the cart already holds.
func NewModel(ctx context.Context, s *shop.Shop, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		ctx:     ctx,
		shop:    s,
		logger:  logger.Named("ui"),
		keys:    defaultKeyMap(s.Notifies()),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  DefaultStyles(),
	}

	if s.Variant() == shop.Static {
		m.dialog, m.err = s.LoadCatalog(ctx)
	} else {
		m.loading = true
	}
	m.rebind()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

// loadCatalog fetches the catalog off the event loop.
func (m Model) loadCatalog() tea.Cmd {
	ctx, s := m.ctx, m.shop
	return func() tea.Msg {
		products, err := s.FetchCatalog(ctx)
		return catalogLoadedMsg{products: products, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		if d := m.shop.SetCatalog(msg.products, msg.err); d != nil {
			m.showDialog(d)
		}
		m.rebind()
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.dialog != nil {
			return m.updateDialog(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Switch):
		if m.focus == paneCatalog {
			m.focus = paneCart
		} else {
			m.focus = paneCatalog
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.focus] < m.paneLen(m.focus)-1 {
			m.cursor[m.focus]++
		}

	case key.Matches(msg, m.keys.Activate):
		if act := m.selected(); act != nil {
			return m.apply(act(m.ctx))
		}

	case key.Matches(msg, m.keys.Clear):
		d, err := m.shop.RequestClear(m.ctx)
		return m.apply(nil, d, err)

	case key.Matches(msg, m.keys.Checkout):
		d, receipt, err := m.shop.Checkout(m.ctx)
		if err == nil {
			m.logger.Info("Order placed",
				zap.String("order_id", receipt.OrderID),
				zap.Int("items", len(receipt.Items)),
				zap.Float64("total", receipt.Total))
		}
		if errors.Is(err, cart.ErrEmptyCheckout) {
			err = nil
		}
		return m.apply(nil, d, err)
	}
	return m, nil
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.dialog
	if !d.IsConfirm() {
		if key.Matches(msg, m.keys.Activate, m.keys.Confirm, m.keys.Cancel) {
			m.dialog = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle), msg.String() == "tab":
		m.dialogCancel = !m.dialogCancel
	case key.Matches(msg, m.keys.Cancel):
		m.dialog = nil
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm(d)
	case key.Matches(msg, m.keys.Activate):
		if m.dialogCancel {
			m.dialog = nil
			return m, nil
		}
		return m.confirm(d)
	}
	return m, nil
}

// confirm runs the dialog continuation and shows what it returns.
func (m Model) confirm(d *notify.Dialog) (tea.Model, tea.Cmd) {
	m.dialog = nil
	next, err := d.Confirm()
	return m.apply(nil, next, err)
}

// apply rebinds the screen after a mutation and shows its feedback.
func (m Model) apply(t *notify.Toast, d *notify.Dialog, err error) (tea.Model, tea.Cmd) {
	m.rebind()
	m.err = err
	if err != nil {
		m.logger.Error("Cart operation failed", zap.Error(err))
	}
	if d != nil {
		m.showDialog(d)
	}
	if t == nil {
		return m, nil
	}
	m.toast = t
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) showDialog(d *notify.Dialog) {
	m.dialog = d
	m.dialogCancel = false
}

// rebind rebuilds every rendered control from current state. Cart rows
// are bound by position, so they are rebuilt after each mutation.
func (m *Model) rebind() {
	s := m.shop

	products := s.Products()
	m.cards = make([]card, 0, len(products))
	for _, p := range products {
		p := p
		m.cards = append(m.cards, card{
			product: p,
			add: func(ctx context.Context) (*notify.Toast, *notify.Dialog, error) {
				t, err := s.Add(ctx, p)
				return t, nil, err
			},
		})
	}

	items := s.Cart().Items()
	m.rows = make([]row, 0, len(items))
	for i, p := range items {
		i, p := i, p
		m.rows = append(m.rows, row{
			product: p,
			remove: func(ctx context.Context) (*notify.Toast, *notify.Dialog, error) {
				t, err := s.Remove(ctx, i)
				return t, nil, err
			},
		})
	}

	for _, p := range []pane{paneCatalog, paneCart} {
		n := m.paneLen(p)
		if m.cursor[p] >= n {
			m.cursor[p] = max(n-1, 0)
		}
	}
}

func (m Model) paneLen(p pane) int {
	if p == paneCatalog {
		return len(m.cards)
	}
	return len(m.rows)
}

// selected returns the action under the cursor, if any.
func (m Model) selected() action {
	i := m.cursor[m.focus]
	switch m.focus {
	case paneCatalog:
		if i < len(m.cards) {
			return m.cards[i].add
		}
	case paneCart:
		if i < len(m.rows) {
			return m.rows[i].remove
		}
	}
	return nil
}

// Run starts the interactive shop and blocks until the user quits.
func Run(ctx context.Context, s *shop.Shop, logger *zap.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(ctx, s, logger), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
