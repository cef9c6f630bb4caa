package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-taskboard/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/config"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(context.Background(), config.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "nested", "board.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, s *sqlite.Store) {
	t.Helper()
	err := s.WithinTx(context.Background(), func(ctx context.Context, tx ports.BoardTx) error {
		if err := tx.InsertList(ctx, board.List{ID: "L1", Name: "Todo", Position: 0, ItemIDs: []string{"a", "b"}}); err != nil {
			return err
		}
		if err := tx.InsertList(ctx, board.List{ID: "L2", Name: "Done", Position: 1}); err != nil {
			return err
		}
		if err := tx.InsertItem(ctx, board.Item{ID: "a", Text: "A", Position: 0, ListID: "L1", Start: day(1), End: day(2)}); err != nil {
			return err
		}
		return tx.InsertItem(ctx, board.Item{ID: "b", Text: "B", Position: 1, ListID: "L1", Start: day(2), End: day(3)})
	})
	require.NoError(t, err)
}

func load(t *testing.T, s *sqlite.Store) ([]board.List, []board.Item) {
	t.Helper()
	var (
		lists []board.List
		items []board.Item
	)
	err := s.View(context.Background(), func(ctx context.Context, r ports.BoardReader) error {
		var err error
		if lists, err = r.Lists(ctx); err != nil {
			return err
		}
		items, err = r.Items(ctx)
		return err
	})
	require.NoError(t, err)
	return lists, items
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	seed(t, s)

	lists, items := load(t, s)
	require.Len(t, lists, 2)
	require.Len(t, items, 2)

	assert.Equal(t, "L1", lists[0].ID)
	assert.Equal(t, []string{"a", "b"}, lists[0].ItemIDs)
	assert.Equal(t, []string{}, lists[1].ItemIDs)
	assert.Equal(t, "a", items[0].ID)
	assert.True(t, items[0].Start.Equal(day(1)))
	assert.True(t, items[1].End.Equal(day(3)))

	b, err := board.FromRows(lists, items)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, b.PositionsOf("L1"))
}

func TestStore_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	seed(t, s)

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx ports.BoardTx) error {
		if err := tx.DeleteItem(ctx, "a"); err != nil {
			return err
		}
		if err := tx.UpdateItem(ctx, board.Item{ID: "b", Text: "B2", Position: 0, ListID: "L2", Start: day(2), End: day(3)}); err != nil {
			return err
		}
		if err := tx.UpdateList(ctx, board.List{ID: "L1", Name: "Todo", Position: 0, ItemIDs: []string{}}); err != nil {
			return err
		}
		return tx.UpdateList(ctx, board.List{ID: "L2", Name: "Done", Position: 1, ItemIDs: []string{"b"}})
	})
	require.NoError(t, err)

	lists, items := load(t, s)
	require.Len(t, items, 1)
	assert.Equal(t, "B2", items[0].Text)
	assert.Equal(t, "L2", items[0].ListID)
	assert.Equal(t, []string{"b"}, lists[1].ItemIDs)
}

func TestStore_MissingRowIsStorageError(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	seed(t, s)

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx ports.BoardTx) error {
		return tx.DeleteItem(ctx, "zz")
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_RollbackOnError(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	seed(t, s)

	before, err := s.Snapshot(context.Background())
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.WithinTx(context.Background(), func(ctx context.Context, tx ports.BoardTx) error {
		if err := tx.DeleteItem(ctx, "a"); err != nil {
			return err
		}
		if err := tx.UpdateList(ctx, board.List{ID: "L1", Name: "Todo", ItemIDs: []string{"b"}}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	after, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestStore_ForeignKeyEnforced(t *testing.T) {
	t.Parallel()
	s := openStore(t)

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx ports.BoardTx) error {
		return tx.InsertItem(ctx, board.Item{ID: "x", Text: "X", ListID: "nope", Start: day(1), End: day(2)})
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	s := openStore(t)

	assert.Equal(t, "sqlite", s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))
}

func TestStore_ReopenKeepsData(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "board.db")

	s, err := sqlite.Open(context.Background(), config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	seed(t, s)
	require.NoError(t, s.Close(context.Background()))

	s, err = sqlite.Open(context.Background(), config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	_, items := load(t, s)
	assert.Len(t, items, 2)
}
