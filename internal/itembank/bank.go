package itembank

import (
	"context"
	"fmt"
	"slices"
)

// Fetcher provides items for administration. Implementations may be backed
// by remote content services; fetching is the engine's only I/O boundary.
type Fetcher interface {
	// FetchItems returns the full item pool.
	FetchItems(ctx context.Context) ([]Item, error)

	// FetchBySkill returns items tagged with the given skill.
	// An empty result is not an error.
	FetchBySkill(ctx context.Context, skillID string) ([]Item, error)
}

// Bank is an in-memory Fetcher with lookup indices.
type Bank struct {
	items   []Item
	byID    map[string]Item
	bySkill map[string][]Item
}

// NewBank builds a bank from a slice of items, validating each one.
func NewBank(items []Item) (*Bank, error) {
	b := &Bank{
		items:   slices.Clone(items),
		byID:    make(map[string]Item, len(items)),
		bySkill: make(map[string][]Item),
	}
	for _, it := range b.items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := b.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item ID: %q", it.ID)
		}
		b.byID[it.ID] = it
		for _, tag := range it.Skills {
			b.bySkill[tag] = append(b.bySkill[tag], it)
		}
	}
	return b, nil
}

// FetchItems implements Fetcher.
func (b *Bank) FetchItems(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(b.items), nil
}

// FetchBySkill implements Fetcher.
func (b *Bank) FetchBySkill(ctx context.Context, skillID string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(b.bySkill[skillID]), nil
}

// Lookup resolves an item by ID.
func (b *Bank) Lookup(id string) (Item, bool) {
	it, ok := b.byID[id]
	return it, ok
}

// Len returns the number of items in the bank.
func (b *Bank) Len() int {
	return len(b.items)
}
