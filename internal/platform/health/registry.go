// Package health provides a thread-safe health check registry for the board
// store and, when configured, the upstream board API. The readiness endpoint
// uses it to decide whether the server can accept traffic.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/platform/fanout"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single health check when the caller's context
// has no earlier deadline.
const DefaultCheckTimeout = 2 * time.Second

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results
// keyed by checker name. Nil values indicate healthy components. When two
// checkers share a name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	// Every check gets a worker, so the pool never waits on ctx; each check
	// still sees ctx and its own deadline.
	outcomes := fanout.Run(context.WithoutCancel(ctx), max(len(checkers), 1), checkers,
		func(_ context.Context, c ports.HealthChecker) (struct{}, error) {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			return struct{}{}, c.HealthCheck(checkCtx)
		})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
