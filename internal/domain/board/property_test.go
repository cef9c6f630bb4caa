package board

import (
	"fmt"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

var propertyLists = []string{"L1", "L2", "L3"}

// randomBoard builds a board with three lists and up to twelve items, each on
// its own day so the overlap rule never interferes with ordering properties.
func randomBoard(t *rapid.T) *Board {
	b := New()
	for i, id := range propertyLists {
		if err := b.AddList(List{ID: id, Name: id}, i); err != nil {
			t.Fatalf("AddList: %v", err)
		}
	}
	n := rapid.IntRange(0, 12).Draw(t, "items")
	for i := range n {
		listID := rapid.SampledFrom(propertyLists).Draw(t, "list")
		idx := rapid.IntRange(0, b.Len(listID)).Draw(t, "index")
		if err := b.Insert(newItem(fmt.Sprintf("i%02d", i), i), listID, idx); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return b
}

func TestProperty_PositionsStayContiguous(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		b := randomBoard(t)
		next := 100

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for range steps {
			ids := itemIDs(b)
			switch op := rapid.IntRange(0, 3).Draw(t, "op"); {
			case op == 0:
				listID := rapid.SampledFrom(propertyLists).Draw(t, "list")
				idx := rapid.IntRange(0, b.Len(listID)).Draw(t, "index")
				if err := b.Insert(newItem(fmt.Sprintf("n%03d", next), next), listID, idx); err != nil {
					t.Fatalf("Insert: %v", err)
				}
				next++
			case len(ids) == 0:
				continue
			case op == 1:
				if _, err := b.Remove(rapid.SampledFrom(ids).Draw(t, "remove")); err != nil {
					t.Fatalf("Remove: %v", err)
				}
			case op == 2:
				id := rapid.SampledFrom(ids).Draw(t, "move")
				dest := rapid.SampledFrom(propertyLists).Draw(t, "dest")
				it, _ := b.Item(id)
				limit := b.Len(dest)
				if it.ListID == dest {
					limit--
				}
				idx := rapid.IntRange(0, limit).Draw(t, "destIndex")
				plan, err := PlanMove(b, id, "", dest, idx)
				if err != nil {
					t.Fatalf("PlanMove: %v", err)
				}
				if err := plan.Apply(b); err != nil {
					t.Fatalf("Apply: %v", err)
				}
			default:
				listID := rapid.SampledFrom(propertyLists).Draw(t, "list")
				order := rapid.Permutation(b.PositionsOf(listID)).Draw(t, "order")
				d, err := PlanReorder(b, listID, order)
				if err != nil {
					t.Fatalf("PlanReorder: %v", err)
				}
				if err := b.ApplyPositions(d); err != nil {
					t.Fatalf("ApplyPositions: %v", err)
				}
				if got := b.PositionsOf(listID); !slices.Equal(got, order) {
					t.Fatalf("after reorder %v, want %v", got, order)
				}
			}

			if err := b.Check(); err != nil {
				t.Fatalf("Check: %v", err)
			}
		}
	})
}

func TestProperty_MoveRelocatesExactlyOnce(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		b := randomBoard(t)
		ids := itemIDs(b)
		if len(ids) == 0 {
			return
		}
		id := rapid.SampledFrom(ids).Draw(t, "item")
		it, _ := b.Item(id)
		dest := rapid.SampledFrom(propertyLists).Filter(func(l string) bool { return l != it.ListID }).Draw(t, "dest")
		idx := rapid.IntRange(0, b.Len(dest)).Draw(t, "destIndex")
		srcBefore := b.Len(it.ListID)

		plan, err := PlanMove(b, id, it.ListID, dest, idx)
		if err != nil {
			t.Fatalf("PlanMove: %v", err)
		}
		if err := plan.Apply(b); err != nil {
			t.Fatalf("Apply: %v", err)
		}

		if slices.Contains(b.PositionsOf(it.ListID), id) {
			t.Fatalf("%s still in source %s", id, it.ListID)
		}
		got := b.PositionsOf(dest)
		if count := len(slices.DeleteFunc(slices.Clone(got), func(x string) bool { return x != id })); count != 1 {
			t.Fatalf("%s appears %d times in %s", id, count, dest)
		}
		if got[idx] != id {
			t.Fatalf("%s at %d in %v, want index %d", id, slices.Index(got, id), got, idx)
		}
		if b.Len(it.ListID) != srcBefore-1 {
			t.Fatalf("source length = %d, want %d", b.Len(it.ListID), srcBefore-1)
		}
		if err := b.Check(); err != nil {
			t.Fatalf("Check: %v", err)
		}
	})
}

func TestProperty_ReorderIsIdempotent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		b := randomBoard(t)
		listID := rapid.SampledFrom(propertyLists).Draw(t, "list")
		order := rapid.Permutation(b.PositionsOf(listID)).Draw(t, "order")

		d, err := PlanReorder(b, listID, order)
		if err != nil {
			t.Fatalf("PlanReorder: %v", err)
		}
		for _, c := range d {
			it, _ := b.Item(c.ItemID)
			if it.Position == c.Position {
				t.Fatalf("delta includes unchanged item %s", c.ItemID)
			}
		}
		if err := b.ApplyPositions(d); err != nil {
			t.Fatalf("ApplyPositions: %v", err)
		}

		again, err := PlanReorder(b, listID, order)
		if err != nil {
			t.Fatalf("second PlanReorder: %v", err)
		}
		if !again.Empty() {
			t.Fatalf("second delta = %v, want empty", again)
		}
	})
}

func itemIDs(b *Board) []string {
	var ids []string
	for _, it := range b.AllItems() {
		ids = append(ids, it.ID)
	}
	return ids
}
