package game

import "strings"

// Bag is an unordered container of items. Membership is tracked by item
// identity, but iteration is deterministic: items come back in insertion
// order, which is also the documented tie-break when a name lookup matches
// more than one item.
type Bag struct {
	items []*Item
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add puts an item into the bag. Adding an item that is already present
// (by identity) is a no-op.
func (b *Bag) Add(it *Item) {
	if it == nil || b.Contains(it) {
		return
	}
	b.items = append(b.items, it)
}

// Remove takes an item out of the bag by identity. Removing an absent item
// is a no-op so content callbacks stay idempotent; the return value reports
// whether anything was actually removed.
func (b *Bag) Remove(it *Item) bool {
	if it == nil {
		return false
	}
	for i, held := range b.items {
		if held.Id() == it.Id() {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the bag holds the item, by identity.
func (b *Bag) Contains(it *Item) bool {
	if it == nil {
		return false
	}
	for _, held := range b.items {
		if held.Id() == it.Id() {
			return true
		}
	}
	return false
}

// FindByName returns the first visible item whose name matches,
// case-insensitively, in insertion order. Hidden items are not findable
// until content reveals them.
func (b *Bag) FindByName(name string) *Item {
	for _, held := range b.items {
		if held.Hidden {
			continue
		}
		if strings.EqualFold(held.Name, name) {
			return held
		}
	}
	return nil
}

// Items returns a snapshot of the bag contents in iteration order. The
// copy keeps callers safe when a callback mutates the bag mid-iteration.
func (b *Bag) Items() []*Item {
	out := make([]*Item, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of items in the bag, hidden ones included.
func (b *Bag) Len() int {
	return len(b.items)
}

// Clear empties the bag.
func (b *Bag) Clear() {
	b.items = nil
}
