package board

import (
	"fmt"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
)

// Delta is the minimal set of position changes that takes a list from its
// current order to a desired one. Items whose position does not change are
// never included.
type Delta []PositionChange

// Empty reports whether the delta carries no change. An empty delta must not
// produce a downstream call.
func (d Delta) Empty() bool { return len(d) == 0 }

// PlanReorder computes the delta that reorders listID into desired. Duplicate
// ids in desired are rejected before anything is computed, and desired must be
// a permutation of the list's current members.
func PlanReorder(b *Board, listID string, desired []string) (Delta, error) {
	l, ok := b.list(listID)
	if !ok {
		return nil, domain.NotFound("tasklistID", listID)
	}
	if err := checkPermutation(l, desired); err != nil {
		return nil, err
	}

	var d Delta
	for pos, id := range desired {
		if b.items[id].Position != pos {
			d = append(d, PositionChange{ItemID: id, Position: pos})
		}
	}
	return d, nil
}

// MovePlan describes one compound move: the owner change plus the position
// deltas of both lists. It is applied as a single unit.
//
// For a same-list move Src carries the reorder delta and Dest is empty.
type MovePlan struct {
	ItemID     string
	SrcListID  string
	DestListID string
	DestIndex  int
	Src        Delta
	Dest       Delta
}

// SameList reports whether the plan stays inside one list.
func (p MovePlan) SameList() bool { return p.SrcListID == p.DestListID }

// Noop reports whether the plan changes nothing: the item is dropped back at
// its current index in its current list.
func (p MovePlan) Noop() bool { return p.SameList() && p.Src.Empty() }

// Request converts a cross-list plan into the gateway request.
func (p MovePlan) Request() MoveRequest {
	idx := p.DestIndex
	return MoveRequest{
		ItemID:     p.ItemID,
		SrcListID:  p.SrcListID,
		DestListID: p.DestListID,
		DestIndex:  &idx,
	}
}

// Apply performs the plan on b.
func (p MovePlan) Apply(b *Board) error {
	if p.Noop() {
		return nil
	}
	return b.Move(p.ItemID, p.DestListID, p.DestIndex)
}

// PlanMove computes the plan for moving itemID from srcListID to destListID
// at destIndex. An empty srcListID means "the item's current owner".
//
// The plan is computed on a clone, so b is never modified.
func PlanMove(b *Board, itemID, srcListID, destListID string, destIndex int) (MovePlan, error) {
	it, ok := b.items[itemID]
	if !ok {
		return MovePlan{}, domain.NotFound("taskID", itemID)
	}
	if srcListID == "" {
		srcListID = it.ListID
	}
	if srcListID != it.ListID {
		return MovePlan{}, domain.NewValidationError("srcTasklistID",
			fmt.Sprintf("task %q belongs to tasklist %q, not %q", itemID, it.ListID, srcListID))
	}

	after := b.Clone()
	if err := after.Move(itemID, destListID, destIndex); err != nil {
		return MovePlan{}, err
	}

	plan := MovePlan{
		ItemID:     itemID,
		SrcListID:  srcListID,
		DestListID: destListID,
		DestIndex:  destIndex,
		Src:        positionDelta(b, after, srcListID, ""),
	}
	if !plan.SameList() {
		plan.Dest = positionDelta(b, after, destListID, itemID)
	}
	return plan, nil
}

// positionDelta lists the members of listID in after whose position differs
// from before. always names an item to include regardless, used for the
// moved item whose owner changed.
func positionDelta(before, after *Board, listID, always string) Delta {
	var d Delta
	for pos, id := range after.PositionsOf(listID) {
		prev, ok := before.items[id]
		if id == always || !ok || prev.Position != pos || prev.ListID != listID {
			d = append(d, PositionChange{ItemID: id, Position: pos})
		}
	}
	return d
}
