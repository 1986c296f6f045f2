package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
	"github.com/defaulths/E-commerceWeb-GERALDO/models"
)

// ErrEmptyCart reports checkout on a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError carries the per-field reasons from a failed form check.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "checkout form is invalid"
}

// PlaceOrder validates the form, mints a display-only order reference from
// the current time and clears the cart. The confirmation is the only record
// of the order.
func PlaceOrder(store *cart.Store, fields map[string]string) (models.OrderConfirmation, error) {
	lines := store.Lines()
	if len(lines) == 0 {
		return models.OrderConfirmation{}, ErrEmptyCart
	}

	if ok, problems := Validate(fields); !ok {
		return models.OrderConfirmation{}, &ValidationError{Fields: problems}
	}

	now := time.Now()
	conf := models.OrderConfirmation{
		OrderID:  orderRef(now),
		Items:    lines,
		Total:    store.Total(),
		PlacedAt: now,
	}
	store.Clear()
	return conf, nil
}

// orderRef is "ORD-" plus the last 8 digits of the epoch-millisecond clock.
func orderRef(now time.Time) string {
	return fmt.Sprintf("ORD-%08d", now.UnixMilli()%100000000)
}
