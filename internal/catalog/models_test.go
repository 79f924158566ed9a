package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/express-pos/terminal/internal/common"
	"github.com/express-pos/terminal/internal/money"
)

func validProduct() Product {
	return Product{
		ID:     "p-1",
		Name:   "Chai Tea Latte",
		Enable: true,
		Prices: []Price{{Name: "Regular", Value: money.FromFloat(12.45)}},
		Cost:   money.FromFloat(4.00),
		Count:  10,
	}
}

func TestProductValidate(t *testing.T) {
	if err := validProduct().Validate(); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}

	p := validProduct()
	p.Prices = nil
	if err := p.Validate(); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for empty prices, got %v", err)
	}

	p = validProduct()
	p.Count = -1
	if err := p.Validate(); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for negative stock, got %v", err)
	}

	p = validProduct()
	p.Prices[0].Value = money.FromFloat(-0.01)
	if err := p.Validate(); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for negative tier value, got %v", err)
	}
}

func TestTaxConfigValidate(t *testing.T) {
	ok := TaxConfig{Rate: decimal.NewFromFloat(0.12), Enabled: true}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid tax config rejected: %v", err)
	}
	bad := TaxConfig{Rate: decimal.NewFromFloat(-0.05)}
	if err := bad.Validate(); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for negative rate, got %v", err)
	}
	over := TaxConfig{Rate: decimal.NewFromFloat(1.5)}
	if err := over.Validate(); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for rate > 1, got %v", err)
	}
}

func TestNameIndex(t *testing.T) {
	index := NameIndex([]Product{validProduct(), {ID: "p-2", Name: "Dark Roast"}})
	if index["p-1"] != "Chai Tea Latte" || index["p-2"] != "Dark Roast" {
		t.Fatalf("unexpected index contents: %v", index)
	}
}
