package catalog

import "context"

// Provider is the read side of the store catalog. The terminal treats it as
// an opaque collaborator; the HTTP client in internal/upstream implements it.
type Provider interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	// GetProduct returns common.ErrNotFound when the product does not exist.
	GetProduct(ctx context.Context, id string) (Product, error)
}

// TaxProvider exposes the active tax configuration of the store.
type TaxProvider interface {
	GetTaxConfig(ctx context.Context) (TaxConfig, error)
}

// NameIndex builds a product-id to display-name lookup from a catalog
// snapshot, as needed when reprinting historical receipts.
func NameIndex(products []Product) map[string]string {
	index := make(map[string]string, len(products))
	for _, p := range products {
		index[p.ID] = p.Name
	}
	return index
}
