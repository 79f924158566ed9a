package receipt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/express-pos/terminal/internal/money"
)

// printWidth matches the 32-column thermal printers the terminal targets.
const printWidth = 32

// PrintData is everything a printable receipt shows. It is assembled either
// from the live session or from a persisted order via order.Reprint.
type PrintData struct {
	StoreName   string
	PaymentType string
	CreatedAt   time.Time
	TaxRate     decimal.Decimal
	Items       []Item
	Totals      Receipt
}

// Print renders the fixed-width receipt layout: store header, one block per
// line item, the totals summary and a thank-you footer. The subtotal, tax
// and discount rows appear only when they carry a non-zero value; the total
// row is always present.
func Print(w io.Writer, d PrintData) error {
	var b strings.Builder

	b.WriteString(center(d.StoreName))
	b.WriteByte('\n')
	if d.PaymentType != "" {
		fmt.Fprintf(&b, "Type: %s\n", d.PaymentType)
	}
	if !d.CreatedAt.IsZero() {
		b.WriteString(d.CreatedAt.Format("2006-01-02 15:04"))
		b.WriteByte('\n')
	}
	b.WriteString(rule())
	b.WriteByte('\n')

	for _, it := range d.Items {
		amount := money.Format(money.MulCount(it.UnitPrice, it.Count))
		b.WriteString(row(it.Name, amount))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  %d x %s\n", it.Count, money.Format(it.UnitPrice))
	}

	b.WriteString(rule())
	b.WriteByte('\n')
	showBreakdown := !d.Totals.Tax.IsZero() || !d.Totals.Discount.IsZero()
	if showBreakdown {
		b.WriteString(row("Subtotal", money.Format(d.Totals.Subtotal)))
		b.WriteByte('\n')
		if !d.Totals.Discount.IsZero() {
			b.WriteString(row("Discount", "-"+money.Format(d.Totals.Discount)))
			b.WriteByte('\n')
		}
		if !d.Totals.Tax.IsZero() {
			label := fmt.Sprintf("Tax %s%%", d.TaxRate.Mul(decimal.NewFromInt(100)))
			b.WriteString(row(label, money.Format(d.Totals.Tax)))
			b.WriteByte('\n')
		}
	}
	b.WriteString(row("Total", money.Format(d.Totals.Total)))
	b.WriteByte('\n')
	b.WriteByte('\n')
	b.WriteString(center("Thank you!"))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func rule() string {
	return strings.Repeat("-", printWidth)
}

func center(s string) string {
	if len(s) >= printWidth {
		return s
	}
	pad := (printWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func row(label, amount string) string {
	gap := printWidth - len(label) - len(amount)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + amount
}
