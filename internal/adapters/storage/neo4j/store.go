// Package neo4j implements ports.BoardStore on a Neo4j graph.
//
// Lists are (:TaskList) nodes carrying their membership order in a taskIds
// property; items are (:Task) nodes linked to their owner by an [:IN]
// relationship. Every board transaction runs as a managed transaction, so
// the driver may retry the callback on transient failures.
package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/config"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// Compile-time checks.
var (
	_ ports.BoardStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const dateLayout = time.RFC3339Nano

var constraints = []string{
	"CREATE CONSTRAINT tasklist_id IF NOT EXISTS FOR (l:TaskList) REQUIRE l.id IS UNIQUE",
	"CREATE CONSTRAINT task_id IF NOT EXISTS FOR (t:Task) REQUIRE t.id IS UNIQUE",
}

// Store is a Neo4j-backed board store.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// Open connects to the server described by cfg, verifies connectivity and
// ensures the uniqueness constraints exist.
func Open(ctx context.Context, cfg config.Neo4jConfig) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, &domain.StorageError{Op: "neo4j.open", Err: err}
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, &domain.StorageError{Op: "neo4j.open", Err: err}
	}

	s := &Store{driver: driver, database: cfg.Database}
	for _, c := range constraints {
		if _, err := neo4j.ExecuteQuery(ctx, driver, c, nil, neo4j.EagerResultTransformer,
			neo4j.ExecuteQueryWithDatabase(cfg.Database)); err != nil {
			_ = driver.Close(ctx)
			return nil, &domain.StorageError{Op: "neo4j.migrate", Err: err}
		}
	}
	return s, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "neo4j" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return &domain.StorageError{Op: "neo4j.ping", Err: err}
	}
	return nil
}

// Close closes the driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Reset deletes every list and item.
func (s *Store) Reset(ctx context.Context) error {
	_, err := neo4j.ExecuteQuery(ctx, s.driver,
		"MATCH (n) WHERE n:Task OR n:TaskList DETACH DELETE n", nil,
		neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithDatabase(s.database))
	if err != nil {
		return &domain.StorageError{Op: "neo4j.reset", Err: err}
	}
	return nil
}

// WithinTx implements ports.BoardStore.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.BoardTx) error) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	defer func() { _ = session.Close(ctx) }()

	_, err := session.ExecuteWrite(ctx, func(mtx neo4j.ManagedTransaction) (any, error) {
		return nil, fn(ctx, &tx{tx: mtx})
	})
	return wrap("neo4j.write", err)
}

// View implements ports.BoardStore.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, r ports.BoardReader) error) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer func() { _ = session.Close(ctx) }()

	_, err := session.ExecuteRead(ctx, func(mtx neo4j.ManagedTransaction) (any, error) {
		return nil, fn(ctx, &tx{tx: mtx})
	})
	return wrap("neo4j.read", err)
}

// wrap converts driver failures raised outside the callback (session,
// commit, retry exhaustion) into storage errors. Errors returned by the
// callback pass through unchanged.
func wrap(op string, err error) error {
	if neo4j.IsNeo4jError(err) || neo4j.IsConnectivityError(err) || neo4j.IsTransactionExecutionLimit(err) {
		return &domain.StorageError{Op: op, Err: err}
	}
	return err
}

type tx struct {
	tx neo4j.ManagedTransaction
}

func (t *tx) Lists(ctx context.Context) ([]board.List, error) {
	res, err := t.tx.Run(ctx,
		"MATCH (l:TaskList) "+
			"RETURN l.id AS id, l.name AS name, l.position AS position, l.taskIds AS taskIds "+
			"ORDER BY position, id",
		nil,
	)
	if err != nil {
		return nil, &domain.StorageError{Op: "neo4j.lists", Err: err}
	}

	var out []board.List
	for res.Next(ctx) {
		rec := res.Record()
		l := board.List{
			ID:       str(rec, "id"),
			Name:     str(rec, "name"),
			Position: integer(rec, "position"),
			ItemIDs:  strs(rec, "taskIds"),
		}
		out = append(out, l)
	}
	if err := res.Err(); err != nil {
		return nil, &domain.StorageError{Op: "neo4j.lists", Err: err}
	}
	return out, nil
}

func (t *tx) Items(ctx context.Context) ([]board.Item, error) {
	res, err := t.tx.Run(ctx,
		"MATCH (t:Task)-[:IN]->(l:TaskList) "+
			"RETURN t.id AS id, t.text AS text, t.position AS position, l.id AS tasklistId, "+
			"t.startDate AS startDate, t.endDate AS endDate "+
			"ORDER BY tasklistId, position, id",
		nil,
	)
	if err != nil {
		return nil, &domain.StorageError{Op: "neo4j.items", Err: err}
	}

	var out []board.Item
	for res.Next(ctx) {
		rec := res.Record()
		it := board.Item{
			ID:       str(rec, "id"),
			Text:     str(rec, "text"),
			Position: integer(rec, "position"),
			ListID:   str(rec, "tasklistId"),
		}
		if it.Start, err = time.Parse(dateLayout, str(rec, "startDate")); err != nil {
			return nil, &domain.StorageError{Op: "neo4j.items", Err: fmt.Errorf("task %q startDate: %w", it.ID, err)}
		}
		if it.End, err = time.Parse(dateLayout, str(rec, "endDate")); err != nil {
			return nil, &domain.StorageError{Op: "neo4j.items", Err: fmt.Errorf("task %q endDate: %w", it.ID, err)}
		}
		out = append(out, it)
	}
	if err := res.Err(); err != nil {
		return nil, &domain.StorageError{Op: "neo4j.items", Err: err}
	}
	return out, nil
}

func (t *tx) InsertList(ctx context.Context, l board.List) error {
	_, err := t.tx.Run(ctx,
		"CREATE (l:TaskList {id: $id, name: $name, position: $position, taskIds: $taskIds})",
		listParams(l),
	)
	if err != nil {
		return &domain.StorageError{Op: "neo4j.insert_list", Err: err}
	}
	return nil
}

func (t *tx) UpdateList(ctx context.Context, l board.List) error {
	return t.single(ctx, "neo4j.update_list", l.ID,
		"MATCH (l:TaskList {id: $id}) "+
			"SET l.name = $name, l.position = $position, l.taskIds = $taskIds "+
			"RETURN l.id",
		listParams(l),
	)
}

func (t *tx) InsertItem(ctx context.Context, it board.Item) error {
	return t.single(ctx, "neo4j.insert_item", it.ListID,
		"MATCH (l:TaskList {id: $tasklistId}) "+
			"CREATE (t:Task {id: $id, text: $text, position: $position, startDate: $startDate, endDate: $endDate})-[:IN]->(l) "+
			"RETURN t.id",
		itemParams(it),
	)
}

func (t *tx) UpdateItem(ctx context.Context, it board.Item) error {
	return t.single(ctx, "neo4j.update_item", it.ID,
		"MATCH (t:Task {id: $id})-[r:IN]->(:TaskList) "+
			"MATCH (l:TaskList {id: $tasklistId}) "+
			"DELETE r "+
			"CREATE (t)-[:IN]->(l) "+
			"SET t.text = $text, t.position = $position, t.startDate = $startDate, t.endDate = $endDate "+
			"RETURN t.id",
		itemParams(it),
	)
}

func (t *tx) DeleteItem(ctx context.Context, id string) error {
	return t.single(ctx, "neo4j.delete_item", id,
		"MATCH (t:Task {id: $id}) "+
			"WITH t, t.id AS id "+
			"DETACH DELETE t "+
			"RETURN id",
		map[string]any{"id": id},
	)
}

// single runs a statement that must match exactly one row.
func (t *tx) single(ctx context.Context, op, id, cypher string, params map[string]any) error {
	res, err := t.tx.Run(ctx, cypher, params)
	if err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}
	if !res.Next(ctx) {
		if err := res.Err(); err != nil {
			return &domain.StorageError{Op: op, Err: err}
		}
		return &domain.StorageError{Op: op, Err: fmt.Errorf("node %q: %w", id, domain.ErrNotFound)}
	}
	return nil
}

func listParams(l board.List) map[string]any {
	ids := l.ItemIDs
	if ids == nil {
		ids = []string{}
	}
	return map[string]any{
		"id":       l.ID,
		"name":     l.Name,
		"position": int64(l.Position),
		"taskIds":  ids,
	}
}

func itemParams(it board.Item) map[string]any {
	return map[string]any{
		"id":         it.ID,
		"text":       it.Text,
		"position":   int64(it.Position),
		"tasklistId": it.ListID,
		"startDate":  it.Start.UTC().Format(dateLayout),
		"endDate":    it.End.UTC().Format(dateLayout),
	}
}

func str(rec *neo4j.Record, key string) string {
	v, _ := rec.Get(key)
	s, _ := v.(string)
	return s
}

func integer(rec *neo4j.Record, key string) int {
	v, _ := rec.Get(key)
	n, _ := v.(int64)
	return int(n)
}

func strs(rec *neo4j.Record, key string) []string {
	v, _ := rec.Get(key)
	raw, _ := v.([]any)
	out := make([]string, 0, len(raw))
	for _, x := range raw {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
