package editor

import (
	"fmt"

	"github.com/abs-steel/abs-inventory/internal/masterdata/items"
	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
)

// RefData holds the party and item reference sets the editor resolves
// names against. A failed reference-data fetch degrades to an empty
// RefData; lookups then fall back to placeholder names instead of
// failing.
type RefData struct {
	itemsByID   map[int64]items.Item
	ledgersByID map[int64]ledgers.Ledger
}

func NewRefData(itemList []items.Item, ledgerList []ledgers.Ledger) *RefData {
	ref := &RefData{
		itemsByID:   make(map[int64]items.Item, len(itemList)),
		ledgersByID: make(map[int64]ledgers.Ledger, len(ledgerList)),
	}
	for _, it := range itemList {
		ref.itemsByID[it.ID] = it
	}
	for _, l := range ledgerList {
		ref.ledgersByID[l.ID] = l
	}
	return ref
}

func (r *RefData) Item(id int64) (items.Item, bool) {
	it, ok := r.itemsByID[id]
	return it, ok
}

func (r *RefData) Ledger(id int64) (ledgers.Ledger, bool) {
	l, ok := r.ledgersByID[id]
	return l, ok
}

// ItemName resolves an item's display name, falling back to a
// placeholder when the catalog row is missing.
func (r *RefData) ItemName(id int64) string {
	if it, ok := r.itemsByID[id]; ok {
		return it.ItemName
	}
	return fmt.Sprintf("Item %d", id)
}

// PartyName resolves a ledger's display name, falling back to a
// placeholder when the ledger row is missing.
func (r *RefData) PartyName(id int64) string {
	if l, ok := r.ledgersByID[id]; ok {
		return l.PartyName
	}
	return fmt.Sprintf("Party %d", id)
}
