package neo4j

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

func TestListParams_EmptyMembershipIsList(t *testing.T) {
	t.Parallel()

	p := listParams(board.List{ID: "L1", Name: "Todo", Position: 2})

	ids, ok := p["taskIds"].([]string)
	if !ok || ids == nil || len(ids) != 0 {
		t.Errorf("taskIds = %#v, want empty non-nil []string", p["taskIds"])
	}
	if p["position"] != int64(2) {
		t.Errorf("position = %#v, want int64(2)", p["position"])
	}
}

func TestItemParams_DatesAreUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	it := board.Item{
		ID:     "a",
		Text:   "A",
		ListID: "L1",
		Start:  time.Date(2024, 5, 1, 3, 0, 0, 0, loc),
		End:    time.Date(2024, 5, 2, 3, 0, 0, 0, loc),
	}

	p := itemParams(it)

	if got := p["startDate"]; got != "2024-05-01T00:00:00Z" {
		t.Errorf("startDate = %v, want 2024-05-01T00:00:00Z", got)
	}
	if got := p["endDate"]; got != "2024-05-02T00:00:00Z" {
		t.Errorf("endDate = %v, want 2024-05-02T00:00:00Z", got)
	}
	if got := p["tasklistId"]; got != "L1" {
		t.Errorf("tasklistId = %v, want L1", got)
	}
}
