// Package cart holds the working set of line items for one in-progress sale.
//
// A Cart is exclusively owned by a single sale session and mutated only on
// direct operator actions; every operation is synchronous and free of I/O so
// the surrounding UI can recompute the live receipt after each call.
// Abandoning a sale simply discards the Cart.
package cart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/express-pos/terminal/internal/catalog"
	"github.com/express-pos/terminal/internal/common"
	"github.com/express-pos/terminal/internal/money"
)

// Line is one product/tier/quantity entry. Name and UnitPrice are snapshots
// taken when the line was added: a later catalog edit must not retroactively
// alter an open sale.
type Line struct {
	ID        string
	ProductID string
	Name      string
	Tier      string
	UnitPrice money.Money
	Count     int
}

// Cart accumulates sale lines in insertion order.
type Cart struct {
	newID func() string
	lines []Line
}

// New constructs an empty cart. The line-id generator is injected so callers
// can supply server-assigned or deterministic ids; nil falls back to UUIDs.
func New(newID func() string) *Cart {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Cart{newID: newID}
}

// AddLine records one unit of the product at the chosen price tier. When a
// line for the same (product, tier) pair already exists its count is
// incremented instead of appending a duplicate. AddLine always succeeds and
// returns the affected line.
func (c *Cart) AddLine(p catalog.Product, tier catalog.Price) Line {
	for i := range c.lines {
		line := &c.lines[i]
		if line.ProductID == p.ID && line.Tier == tier.Name {
			line.Count++
			return *line
		}
	}
	line := Line{
		ID:        c.newID(),
		ProductID: p.ID,
		Name:      p.Name,
		Tier:      tier.Name,
		UnitPrice: tier.Value,
		Count:     1,
	}
	c.lines = append(c.lines, line)
	return line
}

// ChangeCount adjusts a line's quantity by delta, which must be +1 or -1.
// The quantity floor is 1: a step that would drop below it leaves the line
// unchanged, removal being a separate explicit action. Adjusting an absent
// line is a no-op.
func (c *Cart) ChangeCount(lineID string, delta int) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("delta must be +1 or -1, got %d: %w", delta, common.ErrInvalidInput)
	}
	for i := range c.lines {
		if c.lines[i].ID != lineID {
			continue
		}
		if c.lines[i].Count+delta < 1 {
			return nil
		}
		c.lines[i].Count += delta
		return nil
	}
	return nil
}

// RemoveLine deletes the line unconditionally. Removing an absent line is
// not an error.
func (c *Cart) RemoveLine(lineID string) {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Snapshot returns a copy of the current lines in insertion order. The copy
// is detached: mutating it does not affect the cart.
func (c *Cart) Snapshot() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear drops every line, returning the cart to its initial state.
func (c *Cart) Clear() {
	c.lines = nil
}
