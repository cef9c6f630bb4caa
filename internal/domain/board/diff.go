package board

import (
	"cmp"
	"slices"
)

// ChangeSet lists the rows that differ between two boards. Each slice is
// sorted by id so that writes happen in a deterministic order.
type ChangeSet struct {
	NewLists     []List
	UpdatedLists []List
	DeletedItems []string
	NewItems     []Item
	UpdatedItems []Item
}

// Empty reports whether nothing changed.
func (c ChangeSet) Empty() bool {
	return len(c.NewLists) == 0 && len(c.UpdatedLists) == 0 &&
		len(c.DeletedItems) == 0 && len(c.NewItems) == 0 && len(c.UpdatedItems) == 0
}

// ListIDs returns the ids of every list touched by the change set, sorted.
func (c ChangeSet) ListIDs() []string {
	var ids []string
	for _, l := range c.NewLists {
		ids = append(ids, l.ID)
	}
	for _, l := range c.UpdatedLists {
		ids = append(ids, l.ID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// Diff computes the rows to write to turn before into after.
func Diff(before, after *Board) ChangeSet {
	var cs ChangeSet

	for _, l := range after.Lists() {
		prev, ok := before.List(l.ID)
		switch {
		case !ok:
			cs.NewLists = append(cs.NewLists, l)
		case prev.Name != l.Name || prev.Position != l.Position || !slices.Equal(prev.ItemIDs, l.ItemIDs):
			cs.UpdatedLists = append(cs.UpdatedLists, l)
		}
	}

	for _, it := range before.AllItems() {
		if _, ok := after.items[it.ID]; !ok {
			cs.DeletedItems = append(cs.DeletedItems, it.ID)
		}
	}

	for _, it := range after.AllItems() {
		prev, ok := before.items[it.ID]
		switch {
		case !ok:
			cs.NewItems = append(cs.NewItems, it)
		case *prev != it:
			cs.UpdatedItems = append(cs.UpdatedItems, it)
		}
	}

	byID := func(x, y List) int { return cmp.Compare(x.ID, y.ID) }
	slices.SortFunc(cs.NewLists, byID)
	slices.SortFunc(cs.UpdatedLists, byID)
	return cs
}
