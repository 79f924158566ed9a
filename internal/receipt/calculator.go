// Package receipt turns a set of sale lines plus the store tax and discount
// configuration into the derived totals shown to the customer.
//
// Compute is a total pure function: identical inputs always produce an
// identical Receipt, which is what makes a historical receipt reproducible
// bit-for-bit from a persisted order record.
package receipt

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/express-pos/terminal/internal/catalog"
	"github.com/express-pos/terminal/internal/common"
	"github.com/express-pos/terminal/internal/money"
)

// DiscountMethod selects how a discount value is interpreted.
type DiscountMethod string

const (
	// DiscountAmount subtracts a flat currency value from the subtotal.
	DiscountAmount DiscountMethod = "Amount"
	// DiscountPercentage subtracts a fraction (0-1) of the subtotal.
	DiscountPercentage DiscountMethod = "Percentage"
)

// Discount is an optional per-transaction reduction, at most one per sale.
type Discount struct {
	Method DiscountMethod  `json:"method"`
	Value  decimal.Decimal `json:"value"`
}

// Item is one line feeding the calculator. UnitPrice is the snapshot taken
// at add-time (live sale) or the stored order price (reprint).
type Item struct {
	Name      string
	UnitPrice money.Money
	Count     int
}

// Receipt carries the four derived totals, each rounded to cents.
type Receipt struct {
	Subtotal money.Money
	Discount money.Money
	Tax      money.Money
	Total    money.Money
}

// Compute derives subtotal, discount, tax and total from the given lines.
//
// Accumulation happens at full precision; each output field is rounded to
// two decimals, half away from zero, independently of the others. The tax
// applies to the taxable base (subtotal after discount), and an Amount
// discount is clamped at the subtotal so the base can never go negative.
func Compute(items []Item, tax catalog.TaxConfig, disc *Discount) (Receipt, error) {
	subtotal := decimal.Zero
	for _, it := range items {
		if it.Count < 0 {
			return Receipt{}, fmt.Errorf("line %q has negative count %d: %w", it.Name, it.Count, common.ErrInvalidInput)
		}
		subtotal = subtotal.Add(money.MulCount(it.UnitPrice, it.Count))
	}
	if tax.Rate.IsNegative() {
		return Receipt{}, fmt.Errorf("tax rate %s is negative: %w", tax.Rate, common.ErrInvalidInput)
	}

	discountAmount := decimal.Zero
	if disc != nil {
		if disc.Value.IsNegative() {
			return Receipt{}, fmt.Errorf("discount value %s is negative: %w", disc.Value, common.ErrInvalidInput)
		}
		switch disc.Method {
		case DiscountAmount:
			discountAmount = money.Min(disc.Value, subtotal)
		case DiscountPercentage:
			discountAmount = subtotal.Mul(disc.Value)
		default:
			return Receipt{}, fmt.Errorf("unknown discount method %q: %w", disc.Method, common.ErrInvalidInput)
		}
	}

	base := subtotal.Sub(discountAmount)
	if base.IsNegative() {
		base = decimal.Zero
	}
	taxAmount := decimal.Zero
	if tax.Enabled {
		taxAmount = base.Mul(tax.Rate)
	}
	total := base.Add(taxAmount)

	return Receipt{
		Subtotal: money.Round2(subtotal),
		Discount: money.Round2(discountAmount),
		Tax:      money.Round2(taxAmount),
		Total:    money.Round2(total),
	}, nil
}
