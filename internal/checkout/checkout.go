// Package checkout sequences one order submission: secret check, order
// creation, then notification. The cart survives a failed creation and is
// cleared after a successful one, whatever the notification does.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chenmo1212/foodorder/internal/cart"
	"github.com/chenmo1212/foodorder/internal/client"
	"github.com/chenmo1212/foodorder/internal/compose"
	"github.com/chenmo1212/foodorder/internal/gate"
	"github.com/chenmo1212/foodorder/internal/models"
)

type State string

const (
	StateIdle         State = "idle"
	StateGated        State = "gated"
	StateSubmitting   State = "submitting"
	StateSubmitFailed State = "submit_failed"
	StateSubmitted    State = "submitted"
	StateNotifying    State = "notifying"
	StateNotifyFailed State = "notify_failed"
	StateDone         State = "done"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrBadSecret = errors.New("incorrect code")
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, order models.OrderRequest) (*client.OrderConfirmation, error)
}

type SummaryNotifier interface {
	SendOrderNotification(ctx context.Context, summary, deliveryInfo string) error
}

type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

type Flow struct {
	cart     *cart.Cart
	gate     *gate.Gate
	orders   OrderCreator
	notifier SummaryNotifier
	customer Customer
	lang     string
	state    State
	log      *slog.Logger
}

func NewFlow(c *cart.Cart, g *gate.Gate, orders OrderCreator, notifier SummaryNotifier, customer Customer, lang string, log *slog.Logger) *Flow {
	return &Flow{
		cart:     c,
		gate:     g,
		orders:   orders,
		notifier: notifier,
		customer: customer,
		lang:     lang,
		state:    StateIdle,
		log:      log,
	}
}

// State reports where the last submission attempt ended.
func (f *Flow) State() State { return f.state }

// Result describes a submission that got past order creation. NotifyErr is
// set when the order exists but the notification did not go out.
type Result struct {
	OrderNumber string
	Summary     string
	NotifyErr   error
}

// Submit runs one attempt through the state machine. On ErrBadSecret or a
// creation failure the cart is untouched and the caller may retry; once
// creation succeeds the cart is cleared before the notification is even
// attempted.
func (f *Flow) Submit(ctx context.Context, secret string, delivery models.DeliverySelection) (*Result, error) {
	if f.cart.Len() == 0 {
		return nil, ErrEmptyCart
	}

	f.state = StateGated
	if !f.gate.Authorize(secret) {
		f.log.Warn("submission rejected by gate")
		return nil, ErrBadSecret
	}

	composed := compose.Compose(f.cart.Lines(), delivery, f.lang)
	composed.Request.CustomerName = f.customer.Name
	composed.Request.CustomerEmail = f.customer.Email
	composed.Request.CustomerPhone = f.customer.Phone
	composed.Request.DeliveryAddress = f.customer.Address
	composed.Request.Notes = f.customer.Notes

	f.state = StateSubmitting
	conf, err := f.orders.CreateOrder(ctx, composed.Request)
	if err != nil {
		f.state = StateSubmitFailed
		f.log.Error("order creation failed", "error", err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	f.state = StateSubmitted
	f.log.Info("order created", "order_number", conf.OrderNumber)
	f.cart.Clear()

	result := &Result{OrderNumber: conf.OrderNumber, Summary: composed.Summary}

	f.state = StateNotifying
	deliveryInfo := fmt.Sprintf("%s at %s",
		delivery.At().Format("Monday, January 2, 2006"),
		delivery.At().Format("03:04 PM"))
	if err := f.notifier.SendOrderNotification(ctx, composed.Summary, deliveryInfo); err != nil {
		// Order already exists, so this is a partial success only.
		f.state = StateNotifyFailed
		f.log.Warn("order notification failed", "order_number", conf.OrderNumber, "error", err)
		result.NotifyErr = err
		return result, nil
	}

	f.state = StateDone
	return result, nil
}
