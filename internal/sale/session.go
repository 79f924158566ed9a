// Package sale orchestrates one in-progress sale: the cart, the active tax
// configuration, an optional discount and the final submission to the store
// API.
package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/express-pos/terminal/internal/cart"
	"github.com/express-pos/terminal/internal/catalog"
	"github.com/express-pos/terminal/internal/common"
	"github.com/express-pos/terminal/internal/order"
	"github.com/express-pos/terminal/internal/receipt"
)

// SubmitInput is everything the order sink needs to persist a sale.
type SubmitInput struct {
	Lines          []cart.Line
	Tax            catalog.TaxConfig
	Discount       *receipt.Discount
	PaymentType    string
	IdempotencyKey string
}

// Submitter persists a completed sale. Submission is fire-and-forget from
// the session's perspective: failures are surfaced to the caller unchanged
// and never retried here.
type Submitter interface {
	SubmitOrder(ctx context.Context, in SubmitInput) (order.Order, error)
}

// Session owns one sale from the first added line to submission. It is
// bound to a single operator interaction and is simply discarded when the
// sale is abandoned.
type Session struct {
	Cart        *cart.Cart
	Tax         catalog.TaxConfig
	Discount    *receipt.Discount
	PaymentType string
	Sink        Submitter
	Log         zerolog.Logger
	// NewKey generates the idempotency key attached to a submission.
	// Defaults to UUIDs.
	NewKey func() string
}

// Items maps cart lines onto receipt calculator items.
func Items(lines []cart.Line) []receipt.Item {
	items := make([]receipt.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, receipt.Item{Name: l.Name, UnitPrice: l.UnitPrice, Count: l.Count})
	}
	return items
}

// Live recomputes the receipt for the current cart state. It is cheap and
// side-effect free, so the UI may call it after every mutation.
func (s *Session) Live() (receipt.Receipt, error) {
	return receipt.Compute(Items(s.Cart.Snapshot()), s.Tax, s.Discount)
}

// SetDiscount validates and applies the transaction discount. A nil discount
// clears it. Percentage values must be a fraction in [0, 1].
func (s *Session) SetDiscount(d *receipt.Discount) error {
	if d == nil {
		s.Discount = nil
		return nil
	}
	if d.Value.IsNegative() {
		return fmt.Errorf("discount value %s is negative: %w", d.Value, common.ErrInvalidInput)
	}
	switch d.Method {
	case receipt.DiscountAmount:
	case receipt.DiscountPercentage:
		if d.Value.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("percentage discount %s exceeds 1: %w", d.Value, common.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("unknown discount method %q: %w", d.Method, common.ErrInvalidInput)
	}
	s.Discount = d
	return nil
}

// Checkout submits the sale and clears the cart on success. The returned
// order is the persisted record the store API handed back.
func (s *Session) Checkout(ctx context.Context) (order.Order, error) {
	if s.Sink == nil {
		return order.Order{}, errors.New("sale: order sink not configured")
	}
	lines := s.Cart.Snapshot()
	if len(lines) == 0 {
		return order.Order{}, fmt.Errorf("cart is empty: %w", common.ErrInvalidInput)
	}
	totals, err := s.Live()
	if err != nil {
		return order.Order{}, err
	}

	in := SubmitInput{
		Lines:          lines,
		Tax:            s.Tax,
		Discount:       s.Discount,
		PaymentType:    s.PaymentType,
		IdempotencyKey: s.newKey(),
	}
	ord, err := s.Sink.SubmitOrder(ctx, in)
	if err != nil {
		s.Log.Error().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("submit_order_failed")
		return order.Order{}, fmt.Errorf("submit order: %w", err)
	}

	s.Cart.Clear()
	s.Log.Info().
		Str("order_id", ord.ID).
		Str("payment_type", s.PaymentType).
		Str("total", totals.Total.StringFixed(2)).
		Msg("sale_submitted")
	return ord, nil
}

func (s *Session) newKey() string {
	if s.NewKey != nil {
		return s.NewKey()
	}
	return uuid.NewString()
}
