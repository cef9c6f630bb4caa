// Package board is the ordered collection model of a kanban board: lists
// holding ordered items, and the pure engine that plans reorders and
// cross-list moves as minimal position deltas.
//
// Every mutating method either leaves the board satisfying all invariants or
// returns an error and leaves it unchanged:
//
//   - item positions in each list are exactly [0, len(list))
//   - each item is a member of exactly one list, in position order
//   - no two items in one list have overlapping date ranges
//   - list positions are exactly [0, number of lists)
package board

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
)

// ErrCorrupt is returned by Check when a board violates its invariants.
var ErrCorrupt = errors.New("board invariant violated")

// Board holds lists ordered by position and the items they own.
type Board struct {
	lists []*List
	items map[string]*Item
}

// New returns an empty board.
func New() *Board {
	return &Board{items: make(map[string]*Item)}
}

// FromRows assembles a board from stored rows. List order follows
// List.Position and membership order follows List.ItemIDs. The result is
// checked; stored data that breaks an invariant is reported as ErrCorrupt.
func FromRows(lists []List, items []Item) (*Board, error) {
	b := New()
	for i := range items {
		it := items[i]
		if _, dup := b.items[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate task %q", ErrCorrupt, it.ID)
		}
		b.items[it.ID] = &it
	}
	for i := range lists {
		l := lists[i].clone()
		b.lists = append(b.lists, &l)
	}
	slices.SortStableFunc(b.lists, func(x, y *List) int { return cmp.Compare(x.Position, y.Position) })

	if err := b.Check(); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	c := &Board{
		lists: make([]*List, len(b.lists)),
		items: make(map[string]*Item, len(b.items)),
	}
	for i, l := range b.lists {
		cl := l.clone()
		c.lists[i] = &cl
	}
	for id, it := range b.items {
		cp := *it
		c.items[id] = &cp
	}
	return c
}

// Lists returns copies of all lists ordered by position.
func (b *Board) Lists() []List {
	out := make([]List, len(b.lists))
	for i, l := range b.lists {
		out[i] = l.clone()
	}
	return out
}

// ListCount returns the number of lists.
func (b *Board) ListCount() int { return len(b.lists) }

// List returns a copy of the list with the given id.
func (b *Board) List(id string) (List, bool) {
	l, ok := b.list(id)
	if !ok {
		return List{}, false
	}
	return l.clone(), true
}

// Item returns a copy of the item with the given id.
func (b *Board) Item(id string) (Item, bool) {
	it, ok := b.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Items returns copies of the list's items in membership order.
func (b *Board) Items(listID string) []Item {
	l, ok := b.list(listID)
	if !ok {
		return nil
	}
	out := make([]Item, len(l.ItemIDs))
	for i, id := range l.ItemIDs {
		out[i] = *b.items[id]
	}
	return out
}

// AllItems returns copies of every item sorted by id.
func (b *Board) AllItems() []Item {
	out := make([]Item, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, *it)
	}
	slices.SortFunc(out, func(x, y Item) int { return cmp.Compare(x.ID, y.ID) })
	return out
}

// PositionsOf returns the list's member ids in position order.
func (b *Board) PositionsOf(listID string) []string {
	l, ok := b.list(listID)
	if !ok {
		return nil
	}
	return slices.Clone(l.ItemIDs)
}

// Len returns the number of items in the list, or -1 when it does not exist.
func (b *Board) Len(listID string) int {
	l, ok := b.list(listID)
	if !ok {
		return -1
	}
	return len(l.ItemIDs)
}

// AddList inserts a new, empty list at index and renumbers the lists after it.
func (b *Board) AddList(l List, index int) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, exists := b.list(l.ID); exists {
		return domain.NewValidationError("tasklistID", fmt.Sprintf("%q already exists", l.ID))
	}
	if index < 0 || index > len(b.lists) {
		return domain.NewValidationError("position", fmt.Sprintf("must be between 0 and %d", len(b.lists)))
	}

	nl := List{ID: l.ID, Name: l.Name, ItemIDs: []string{}}
	b.lists = slices.Insert(b.lists, index, &nl)
	for i, x := range b.lists {
		x.Position = i
	}
	return nil
}

// Insert adds a new item to listID at index. Positions in the list are
// reassigned to [0, n) in the resulting order.
func (b *Board) Insert(it Item, listID string, index int) error {
	it.ListID = listID
	if err := it.Validate(); err != nil {
		return err
	}
	if _, exists := b.items[it.ID]; exists {
		return domain.NewValidationError("taskID", fmt.Sprintf("%q already exists", it.ID))
	}
	l, ok := b.list(listID)
	if !ok {
		return domain.NotFound("tasklistID", listID)
	}
	if index < 0 || index > len(l.ItemIDs) {
		return domain.NewValidationError("position", fmt.Sprintf("must be between 0 and %d", len(l.ItemIDs)))
	}
	if err := b.checkOverlap(listID, it.Start, it.End, it.ID); err != nil {
		return err
	}

	cp := it
	b.items[it.ID] = &cp
	l.ItemIDs = slices.Insert(l.ItemIDs, index, it.ID)
	b.renumber(l)
	return nil
}

// Remove deletes the item and closes the gap in its list.
func (b *Board) Remove(itemID string) (Item, error) {
	it, ok := b.items[itemID]
	if !ok {
		return Item{}, domain.NotFound("taskID", itemID)
	}
	l, _ := b.list(it.ListID)
	l.ItemIDs = slices.DeleteFunc(l.ItemIDs, func(id string) bool { return id == itemID })
	delete(b.items, itemID)
	b.renumber(l)
	return *it, nil
}

// Move relocates an item to destListID at index. For a same-list move,
// index is the item's final position and must be in [0, n). For a cross-list
// move it must be in [0, n] of the destination.
func (b *Board) Move(itemID, destListID string, index int) error {
	it, ok := b.items[itemID]
	if !ok {
		return domain.NotFound("taskID", itemID)
	}
	dest, ok := b.list(destListID)
	if !ok {
		return domain.NotFound("destTasklistID", destListID)
	}

	if it.ListID == destListID {
		if index < 0 || index >= len(dest.ItemIDs) {
			return domain.NewValidationError("destIndex", fmt.Sprintf("must be between 0 and %d", len(dest.ItemIDs)-1))
		}
		order := slices.DeleteFunc(slices.Clone(dest.ItemIDs), func(id string) bool { return id == itemID })
		return b.Reorder(destListID, slices.Insert(order, index, itemID))
	}

	if index < 0 || index > len(dest.ItemIDs) {
		return domain.NewValidationError("destIndex", fmt.Sprintf("must be between 0 and %d", len(dest.ItemIDs)))
	}
	if err := b.checkOverlap(destListID, it.Start, it.End, it.ID); err != nil {
		return err
	}

	src, _ := b.list(it.ListID)
	src.ItemIDs = slices.DeleteFunc(src.ItemIDs, func(id string) bool { return id == itemID })
	b.renumber(src)

	it.ListID = destListID
	dest.ItemIDs = slices.Insert(dest.ItemIDs, index, itemID)
	b.renumber(dest)
	return nil
}

// Reorder sets the list's membership to order, which must be a permutation
// of its current members.
func (b *Board) Reorder(listID string, order []string) error {
	l, ok := b.list(listID)
	if !ok {
		return domain.NotFound("tasklistID", listID)
	}
	if err := checkPermutation(l, order); err != nil {
		return err
	}
	l.ItemIDs = slices.Clone(order)
	b.renumber(l)
	return nil
}

// ApplyPositions sets item positions from changes and rebuilds the
// membership order of every affected list. Each affected list must end up
// with positions forming exactly [0, n); otherwise nothing is changed.
func (b *Board) ApplyPositions(changes []PositionChange) error {
	if len(changes) == 0 {
		return nil
	}

	next := make(map[string]int, len(changes))
	affected := make(map[string]bool)
	for _, c := range changes {
		it, ok := b.items[c.ItemID]
		if !ok {
			return domain.NotFound("taskID", c.ItemID)
		}
		if _, dup := next[c.ItemID]; dup {
			return domain.NewValidationError("reorderedTasks", fmt.Sprintf("task %q appears more than once", c.ItemID))
		}
		next[c.ItemID] = c.Position
		affected[it.ListID] = true
	}

	orders := make(map[string][]string, len(affected))
	for listID := range affected {
		l, _ := b.list(listID)
		order := make([]string, len(l.ItemIDs))
		for _, id := range l.ItemIDs {
			pos, ok := next[id]
			if !ok {
				pos = b.items[id].Position
			}
			if pos < 0 || pos >= len(order) || order[pos] != "" {
				return domain.NewValidationError("reorderedTasks",
					fmt.Sprintf("positions for tasklist %q must be a permutation of 0..%d", listID, len(order)-1))
			}
			order[pos] = id
		}
		orders[listID] = order
	}

	for listID, order := range orders {
		l, _ := b.list(listID)
		l.ItemIDs = order
		b.renumber(l)
	}
	return nil
}

// Patch applies an edit to an item. A position in the patch repositions the
// item inside its current list.
func (b *Board) Patch(itemID string, p ItemPatch) error {
	if err := p.Validate(); err != nil {
		return err
	}
	it, ok := b.items[itemID]
	if !ok {
		return domain.NotFound("taskID", itemID)
	}

	start, end := it.Start, it.End
	if p.Start != nil {
		start = *p.Start
	}
	if p.End != nil {
		end = *p.End
	}
	if p.Start != nil || p.End != nil {
		fields := make(map[string]string)
		validateRange(fields, start, end)
		if len(fields) > 0 {
			return &domain.ValidationError{Fields: fields}
		}
		if err := b.checkOverlap(it.ListID, start, end, it.ID); err != nil {
			return err
		}
	}
	if p.Position != nil && *p.Position != it.Position {
		if n := b.Len(it.ListID); *p.Position >= n {
			return domain.NewValidationError("position", fmt.Sprintf("must be between 0 and %d", n-1))
		}
		if err := b.Move(itemID, it.ListID, *p.Position); err != nil {
			return err
		}
	}

	if p.Text != nil {
		it.Text = *p.Text
	}
	it.Start, it.End = start, end
	return nil
}

// Overlapping returns an item in listID whose range overlaps [start, end),
// ignoring exceptID.
func (b *Board) Overlapping(listID string, start, end time.Time, exceptID string) (Item, bool) {
	l, ok := b.list(listID)
	if !ok {
		return Item{}, false
	}
	for _, id := range l.ItemIDs {
		if id == exceptID {
			continue
		}
		other := b.items[id]
		if Overlaps(start, end, other.Start, other.End) {
			return *other, true
		}
	}
	return Item{}, false
}

// Check verifies every board invariant and returns an error wrapping
// ErrCorrupt describing the first violation found.
func (b *Board) Check() error {
	seen := make(map[string]string, len(b.items))
	listIDs := make(map[string]bool, len(b.lists))

	for i, l := range b.lists {
		if l.Position != i {
			return fmt.Errorf("%w: tasklist %q has position %d, want %d", ErrCorrupt, l.ID, l.Position, i)
		}
		if listIDs[l.ID] {
			return fmt.Errorf("%w: duplicate tasklist %q", ErrCorrupt, l.ID)
		}
		listIDs[l.ID] = true

		for pos, id := range l.ItemIDs {
			it, ok := b.items[id]
			if !ok {
				return fmt.Errorf("%w: tasklist %q references unknown task %q", ErrCorrupt, l.ID, id)
			}
			if owner, dup := seen[id]; dup {
				return fmt.Errorf("%w: task %q is a member of %q and %q", ErrCorrupt, id, owner, l.ID)
			}
			seen[id] = l.ID
			if it.ListID != l.ID {
				return fmt.Errorf("%w: task %q references tasklist %q but is a member of %q", ErrCorrupt, id, it.ListID, l.ID)
			}
			if it.Position != pos {
				return fmt.Errorf("%w: task %q has position %d, want %d", ErrCorrupt, id, it.Position, pos)
			}
		}
		for x := 0; x < len(l.ItemIDs); x++ {
			a := b.items[l.ItemIDs[x]]
			for y := x + 1; y < len(l.ItemIDs); y++ {
				o := b.items[l.ItemIDs[y]]
				if Overlaps(a.Start, a.End, o.Start, o.End) {
					return fmt.Errorf("%w: tasks %q and %q overlap in %q", ErrCorrupt, a.ID, o.ID, l.ID)
				}
			}
		}
	}

	if len(seen) != len(b.items) {
		for id := range b.items {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("%w: task %q is not a member of any tasklist", ErrCorrupt, id)
			}
		}
	}
	return nil
}

func (b *Board) list(id string) (*List, bool) {
	for _, l := range b.lists {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

func (b *Board) renumber(l *List) {
	for i, id := range l.ItemIDs {
		b.items[id].Position = i
	}
}

func (b *Board) checkOverlap(listID string, start, end time.Time, exceptID string) error {
	if other, ok := b.Overlapping(listID, start, end, exceptID); ok {
		return domain.NewValidationError("startDate",
			fmt.Sprintf("date range overlaps task %q (%s to %s)",
				other.ID, other.Start.Format(time.DateOnly), other.End.Format(time.DateOnly)))
	}
	return nil
}

func checkPermutation(l *List, order []string) error {
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			return domain.NewValidationError("reorderedTasks", fmt.Sprintf("task %q appears more than once", id))
		}
		seen[id] = true
	}
	if len(order) != len(l.ItemIDs) {
		return domain.NewValidationError("reorderedTasks",
			fmt.Sprintf("must list all %d tasks of tasklist %q", len(l.ItemIDs), l.ID))
	}
	for _, id := range l.ItemIDs {
		if !seen[id] {
			return domain.NewValidationError("reorderedTasks",
				fmt.Sprintf("must list all %d tasks of tasklist %q", len(l.ItemIDs), l.ID))
		}
	}
	return nil
}
