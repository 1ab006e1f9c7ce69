// Package notify defines the user-facing notifications of the shop:
// transient toasts and modal dialogs, with their fixed texts.
package notify

import (
	"time"
)

// Icon classifies a notification.
type Icon string

const (
	IconSuccess Icon = "success"
	IconError   Icon = "error"
	IconWarning Icon = "warning"
)

// Toast durations.
const (
	AddToastDuration    = 3 * time.Second
	RemoveToastDuration = 2 * time.Second
)

// Toast is a transient, non-blocking message.
type Toast struct {
	Text     string
	Icon     Icon
	Duration time.Duration
}

// Dialog is a modal message. A dialog with OnConfirm set is a confirmation
// prompt: OnConfirm runs only when the user accepts, and its returned
// dialog (if any) is shown next. Declining runs nothing.
type Dialog struct {
	Title       string
	Text        string
	Icon        Icon
	ConfirmText string
	CancelText  string
	OnConfirm   func() (*Dialog, error)
}

// IsConfirm reports whether the dialog asks for a decision.
func (d *Dialog) IsConfirm() bool {
	return d.OnConfirm != nil
}

// Confirm runs the registered continuation. Calling Confirm on a plain
// dialog does nothing.
func (d *Dialog) Confirm() (*Dialog, error) {
	if d.OnConfirm == nil {
		return nil, nil
	}
	return d.OnConfirm()
}

// Added is the toast shown after adding a product.
func Added(name string) *Toast {
	return &Toast{Text: "Agregaste " + name, Icon: IconSuccess, Duration: AddToastDuration}
}

// Removed is the toast shown after removing a product.
func Removed(name string) *Toast {
	return &Toast{Text: "Eliminado: " + name, Icon: IconError, Duration: RemoveToastDuration}
}

// LoadFailed is shown when the catalog cannot be loaded.
func LoadFailed() *Dialog {
	return &Dialog{
		Title:       "Error",
		Text:        "No se pudieron cargar los productos. Intenta más tarde.",
		Icon:        IconError,
		ConfirmText: "OK",
	}
}

// EmptyCart is shown when checkout is attempted with nothing in the cart.
func EmptyCart() *Dialog {
	return &Dialog{
		Title:       "Carrito vacío",
		Text:        "Agrega productos antes de comprar.",
		Icon:        IconWarning,
		ConfirmText: "OK",
	}
}

// ConfirmClear asks before emptying the cart; onConfirm performs the clear.
func ConfirmClear(onConfirm func() (*Dialog, error)) *Dialog {
	return &Dialog{
		Title:       "¿Estás seguro?",
		Text:        "Se borrarán todos los productos del carrito",
		Icon:        IconWarning,
		ConfirmText: "Sí, vaciar",
		CancelText:  "Cancelar",
		OnConfirm:   onConfirm,
	}
}

// Cleared is shown after the cart was emptied on request.
func Cleared() *Dialog {
	return &Dialog{
		Title:       "¡Borrado!",
		Text:        "Tu carrito está vacío.",
		Icon:        IconSuccess,
		ConfirmText: "OK",
	}
}

// Purchased is shown after a successful checkout.
func Purchased() *Dialog {
	return &Dialog{
		Title:       "¡Compra exitosa!",
		Text:        "Gracias por tu compra. Te enviaremos el pedido pronto.",
		Icon:        IconSuccess,
		ConfirmText: "Genial",
	}
}
