package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// BillSummary is the result of apportioning a bill across its flats.
// It is always derived from BillData and never stored on its own.
type BillSummary struct {
	// PerFlatTotal is the sum of every category's per-flat share, rounded up.
	PerFlatTotal int64 `json:"perFlatTotal"`

	// GrandTotal is PerFlatTotal multiplied by the number of flats, rounded up.
	GrandTotal int64 `json:"grandTotal"`

	// TotalWithMotorcycle is PerFlatTotal plus one motorcycle space fee.
	TotalWithMotorcycle int64 `json:"totalWithMotorcycle"`

	// TotalWithCar is PerFlatTotal plus one car space fee.
	TotalWithCar int64 `json:"totalWithCar"`

	// TotalWithBoth is PerFlatTotal plus one motorcycle and one car space fee.
	TotalWithBoth int64 `json:"totalWithBoth"`

	// CategoryTotals maps category ID to that category's per-flat share.
	CategoryTotals *CategoryTotals `json:"categoryTotals"`
}

// CategoryTotals is a map from category ID to per-flat share that
// remembers insertion order, so exported tables list categories as entered.
type CategoryTotals struct {
	ids    []string
	shares map[string]decimal.Decimal
}

// NewCategoryTotals creates an empty CategoryTotals with room for n entries.
func NewCategoryTotals(n int) *CategoryTotals {
	return &CategoryTotals{
		ids:    make([]string, 0, n),
		shares: make(map[string]decimal.Decimal, n),
	}
}

// Set stores the share for id. An existing id keeps its position.
func (c *CategoryTotals) Set(id string, share decimal.Decimal) {
	if _, exists := c.shares[id]; !exists {
		c.ids = append(c.ids, id)
	}
	c.shares[id] = share
}

// Get returns the share for id and whether it was present.
func (c *CategoryTotals) Get(id string) (decimal.Decimal, bool) {
	if c == nil {
		return decimal.Zero, false
	}
	share, ok := c.shares[id]
	return share, ok
}

// Share returns the share for id, or zero if id is unknown.
func (c *CategoryTotals) Share(id string) decimal.Decimal {
	share, _ := c.Get(id)
	return share
}

// Len returns the number of categories.
func (c *CategoryTotals) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Keys returns the category IDs in insertion order.
func (c *CategoryTotals) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.ids))
	copy(keys, c.ids)
	return keys
}

// Each calls fn for every entry in insertion order.
func (c *CategoryTotals) Each(fn func(id string, share decimal.Decimal)) {
	if c == nil {
		return
	}
	for _, id := range c.ids {
		fn(id, c.shares[id])
	}
}

// Sum adds up all shares.
func (c *CategoryTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	c.Each(func(_ string, share decimal.Decimal) {
		sum = sum.Add(share)
	})
	return sum
}

// MarshalJSON encodes the totals as a JSON object with keys in insertion order.
func (c *CategoryTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(c.shares[id].String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the order keys appear in.
func (c *CategoryTotals) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category totals: expected object, got %v", tok)
	}

	*c = *NewCategoryTotals(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("category totals: expected key, got %v", tok)
		}
		var share decimal.Decimal
		if err := dec.Decode(&share); err != nil {
			return fmt.Errorf("category totals: share for %q: %w", id, err)
		}
		c.Set(id, share)
	}
	_, err = dec.Token()
	return err
}
