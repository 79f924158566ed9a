package order

import (
	"fmt"

	"github.com/express-pos/terminal/internal/catalog"
	"github.com/express-pos/terminal/internal/receipt"
)

// UnknownProductName replaces the display name of products that were deleted
// from the catalog after the order was placed. A missing product must not
// fail the whole reprint.
const UnknownProductName = "Unknown product"

// NameLookup resolves a product id to its current display name. The second
// return is false when the product no longer exists.
type NameLookup func(productID string) (string, bool)

// IndexLookup adapts a product-id to name map into a NameLookup.
func IndexLookup(index map[string]string) NameLookup {
	return func(id string) (string, bool) {
		name, ok := index[id]
		return name, ok
	}
}

// FromOrder reconstructs the receipt calculator's inputs from a persisted
// order. Display names come from the current catalog with a placeholder
// fallback; unit prices always come from the order itself. Tax is considered
// enabled exactly when the stored rate is non-zero, and the stored discount
// passes through unchanged, so feeding the result into receipt.Compute
// reproduces the receipt originally shown to the customer.
func FromOrder(o Order, lookup NameLookup) ([]receipt.Item, catalog.TaxConfig, *receipt.Discount) {
	items := make([]receipt.Item, 0, len(o.Products))
	for _, entry := range o.Products {
		name := UnknownProductName
		if lookup != nil {
			if resolved, ok := lookup(entry.ProductID); ok {
				name = resolved
			}
		}
		items = append(items, receipt.Item{
			Name:      name,
			UnitPrice: entry.Price,
			Count:     entry.Count,
		})
	}
	tax := catalog.TaxConfig{Rate: o.TaxRate, Enabled: !o.TaxRate.IsZero()}
	return items, tax, o.Discount
}

// Reprint recomputes the order's receipt and assembles the printable
// document for it.
func Reprint(o Order, lookup NameLookup) (receipt.PrintData, error) {
	items, tax, disc := FromOrder(o, lookup)
	totals, err := receipt.Compute(items, tax, disc)
	if err != nil {
		return receipt.PrintData{}, fmt.Errorf("reprint order %s: %w", o.ID, err)
	}
	return receipt.PrintData{
		StoreName:   o.StoreName,
		PaymentType: o.PaymentType,
		CreatedAt:   o.CreatedAt,
		TaxRate:     o.TaxRate,
		Items:       items,
		Totals:      totals,
	}, nil
}
