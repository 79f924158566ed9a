package receipt

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/express-pos/terminal/internal/catalog"
	"github.com/express-pos/terminal/internal/common"
	"github.com/express-pos/terminal/internal/money"
)

func sampleItems() []Item {
	return []Item{
		{Name: "Chai Tea Latte", UnitPrice: money.FromFloat(12.45), Count: 1},
		{Name: "Milk Latte", UnitPrice: money.FromFloat(8.45), Count: 1},
		{Name: "Dark Roast", UnitPrice: money.FromFloat(4.45), Count: 2},
	}
}

func rate(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func assertAmount(t *testing.T, got money.Money, want string, field string) {
	t.Helper()
	if money.Format(got) != want {
		t.Fatalf("%s = %s, want %s", field, money.Format(got), want)
	}
}

func TestComputeTaxDisabled(t *testing.T) {
	r, err := Compute(sampleItems(), catalog.TaxConfig{Rate: rate(0.12), Enabled: false}, nil)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	assertAmount(t, r.Subtotal, "29.80", "subtotal")
	assertAmount(t, r.Tax, "0.00", "tax")
	assertAmount(t, r.Total, "29.80", "total")
}

func TestComputeTaxEnabledRoundsHalfAwayFromZero(t *testing.T) {
	// 29.80 * 0.12 = 3.576 -> 3.58
	r, err := Compute(sampleItems(), catalog.TaxConfig{Rate: rate(0.12), Enabled: true}, nil)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	assertAmount(t, r.Subtotal, "29.80", "subtotal")
	assertAmount(t, r.Tax, "3.58", "tax")
	assertAmount(t, r.Total, "33.38", "total")
}

func TestComputePercentageDiscountWithTax(t *testing.T) {
	items := []Item{{Name: "Bundle", UnitPrice: money.FromFloat(100), Count: 1}}
	disc := &Discount{Method: DiscountPercentage, Value: rate(0.10)}
	r, err := Compute(items, catalog.TaxConfig{Rate: rate(0.08), Enabled: true}, disc)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	assertAmount(t, r.Subtotal, "100.00", "subtotal")
	assertAmount(t, r.Discount, "10.00", "discount")
	assertAmount(t, r.Tax, "7.20", "tax")
	assertAmount(t, r.Total, "97.20", "total")
}

func TestComputeAmountDiscountClampedAtSubtotal(t *testing.T) {
	disc := &Discount{Method: DiscountAmount, Value: rate(50)}
	r, err := Compute(sampleItems(), catalog.TaxConfig{Rate: rate(0.12), Enabled: true}, disc)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	assertAmount(t, r.Discount, "29.80", "discount")
	assertAmount(t, r.Tax, "0.00", "tax")
	assertAmount(t, r.Total, "0.00", "total")
}

func TestComputeAmountDiscount(t *testing.T) {
	disc := &Discount{Method: DiscountAmount, Value: rate(5)}
	r, err := Compute(sampleItems(), catalog.TaxConfig{Rate: rate(0), Enabled: false}, disc)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	assertAmount(t, r.Discount, "5.00", "discount")
	assertAmount(t, r.Total, "24.80", "total")
}

func TestComputeEmptyCart(t *testing.T) {
	r, err := Compute(nil, catalog.TaxConfig{Rate: rate(0.12), Enabled: true}, nil)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	assertAmount(t, r.Subtotal, "0.00", "subtotal")
	assertAmount(t, r.Total, "0.00", "total")
}

func TestComputeIsPure(t *testing.T) {
	items := sampleItems()
	tax := catalog.TaxConfig{Rate: rate(0.12), Enabled: true}
	disc := &Discount{Method: DiscountPercentage, Value: rate(0.10)}

	first, err := Compute(items, tax, disc)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := Compute(items, tax, disc)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if money.Format(first.Subtotal) != money.Format(second.Subtotal) ||
		money.Format(first.Discount) != money.Format(second.Discount) ||
		money.Format(first.Tax) != money.Format(second.Tax) ||
		money.Format(first.Total) != money.Format(second.Total) {
		t.Fatalf("compute not reproducible: %+v vs %+v", first, second)
	}
}

func TestComputeRejectsNegativeInputs(t *testing.T) {
	bad := []Item{{Name: "Dark Roast", UnitPrice: money.FromFloat(4.45), Count: -1}}
	if _, err := Compute(bad, catalog.TaxConfig{}, nil); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for negative count, got %v", err)
	}
	if _, err := Compute(sampleItems(), catalog.TaxConfig{Rate: rate(-0.1)}, nil); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for negative rate, got %v", err)
	}
	disc := &Discount{Method: DiscountAmount, Value: rate(-1)}
	if _, err := Compute(sampleItems(), catalog.TaxConfig{}, disc); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for negative discount, got %v", err)
	}
	unknown := &Discount{Method: "BuyOneGetOne", Value: rate(1)}
	if _, err := Compute(sampleItems(), catalog.TaxConfig{}, unknown); !common.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for unknown method, got %v", err)
	}
}

func TestComputeRoundsFieldsIndependently(t *testing.T) {
	// Three lines of 0.335 each: full-precision subtotal 1.005 rounds to
	// 1.01, while summing per-line rounded values would give 1.02.
	unit, err := money.Parse("0.335")
	if err != nil {
		t.Fatal(err)
	}
	items := []Item{
		{Name: "a", UnitPrice: unit, Count: 1},
		{Name: "b", UnitPrice: unit, Count: 1},
		{Name: "c", UnitPrice: unit, Count: 1},
	}
	r, err := Compute(items, catalog.TaxConfig{}, nil)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	assertAmount(t, r.Subtotal, "1.01", "subtotal")
	assertAmount(t, r.Total, "1.01", "total")
}
