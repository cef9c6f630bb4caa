// Package storage selects the board store named by the configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-taskboard/internal/adapters/storage/neo4j"
	"github.com/jsamuelsen11/go-taskboard/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/config"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// Drivers accepted in storage.driver.
const (
	DriverSQLite = "sqlite"
	DriverNeo4j  = "neo4j"
)

// Open opens the store selected by cfg.Driver. The caller owns the returned
// store and must Close it.
func Open(ctx context.Context, cfg config.StorageConfig) (ports.BoardStore, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		s, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverNeo4j:
		s, err := neo4j.Open(ctx, cfg.Neo4j)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
