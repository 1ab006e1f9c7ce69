package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by the *RangeError RemoveAt returns for a
	// position that is not in the cart.
	ErrOutOfRange = errors.New("cart index out of range")

	// ErrEmptyCheckout is returned by Checkout on an empty cart.
	ErrEmptyCheckout = errors.New("cart is empty")
)

// RangeError reports an invalid removal position.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("remove index %d: cart has %d items", e.Index, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
