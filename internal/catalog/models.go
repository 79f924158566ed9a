// Package catalog defines the store catalog data model consumed by the sale
// and receipt modules, plus validation for payloads exchanged with the store
// API.
package catalog

import (
	"fmt"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/express-pos/terminal/internal/common"
	"github.com/express-pos/terminal/internal/money"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Price is one named price tier of a product, e.g. "Dine-in" vs "Takeout".
type Price struct {
	Name  string      `json:"name"`
	Value money.Money `json:"value"`
}

// Product mirrors the store API product document. Every product carries at
// least one price tier; the operator picks the tier when a line is added to
// a sale.
type Product struct {
	ID         string      `json:"_id"`
	Name       string      `json:"name" validate:"required"`
	Enable     bool        `json:"enable"`
	Thumbnail  string      `json:"thumbnail"`
	CategoryID *string     `json:"category"`
	Prices     []Price     `json:"prices" validate:"required,min=1"`
	Cost       money.Money `json:"cost"`
	Count      int         `json:"count" validate:"gte=0"`
}

// Validate checks the product invariants: a name, at least one price tier,
// non-negative tier values and stock count.
func (p Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("product %q: %v: %w", p.Name, err, common.ErrInvalidInput)
	}
	for _, tier := range p.Prices {
		if tier.Value.IsNegative() {
			return fmt.Errorf("product %q: price tier %q is negative: %w", p.Name, tier.Name, common.ErrInvalidInput)
		}
	}
	if p.Cost.IsNegative() {
		return fmt.Errorf("product %q: cost is negative: %w", p.Name, common.ErrInvalidInput)
	}
	return nil
}

// Category groups products for presentation.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// TaxConfig is the store-wide tax configuration. One active configuration
// exists per store.
type TaxConfig struct {
	Rate    decimal.Decimal `json:"rate"`
	Enabled bool            `json:"enable"`
}

// Validate ensures the rate is a fraction in [0, 1].
func (t TaxConfig) Validate() error {
	if t.Rate.IsNegative() {
		return fmt.Errorf("tax rate is negative: %w", common.ErrInvalidInput)
	}
	if t.Rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tax rate exceeds 1: %w", common.ErrInvalidInput)
	}
	return nil
}
