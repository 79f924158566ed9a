// Package pricing resolves which of a product's candidate prices applies to
// a sale line. Products carry named tiers ("Dine-in", "Takeout"); selection
// is always an explicit operator choice, never an automatic fallback.
package pricing

import "github.com/express-pos/terminal/internal/catalog"

// Resolve returns the product's price tiers in declaration order for
// presentation to the operator. The returned slice is a copy; mutating it
// does not touch the product.
func Resolve(p catalog.Product) []catalog.Price {
	tiers := make([]catalog.Price, len(p.Prices))
	copy(tiers, p.Prices)
	return tiers
}

// TierByName finds a tier by its name. The second return is false when the
// product declares no such tier.
func TierByName(p catalog.Product, name string) (catalog.Price, bool) {
	for _, tier := range p.Prices {
		if tier.Name == name {
			return tier, true
		}
	}
	return catalog.Price{}, false
}
