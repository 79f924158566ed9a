// Package order models persisted sale records and reconstructs receipt
// inputs from them. Orders are historical facts: this package only ever
// reads them, and reprinted receipts always use the prices stored on the
// order, never the catalog's current ones.
package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/express-pos/terminal/internal/money"
	"github.com/express-pos/terminal/internal/receipt"
)

// Item is one product entry on a persisted order. Price is the unit price
// charged at sale time.
type Item struct {
	ProductID string      `json:"product"`
	Price     money.Money `json:"price"`
	Count     int         `json:"count"`
}

// Order is the immutable record of a completed sale as the store API
// persists it.
type Order struct {
	ID          string            `json:"_id"`
	StoreName   string            `json:"storeName"`
	Products    []Item            `json:"products"`
	TaxRate     decimal.Decimal   `json:"taxRate"`
	Discount    *receipt.Discount `json:"discount,omitempty"`
	PaymentType string            `json:"paymentType"`
	ProcessedBy int               `json:"processedBy"`
	CreatedAt   time.Time         `json:"createdAt"`
}
