package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-taskboard/internal/adapters/clients/boardapi"
	"github.com/jsamuelsen11/go-taskboard/internal/adapters/storage"
	"github.com/jsamuelsen11/go-taskboard/internal/app"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/config"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

const (
	upstreamName      = "board-api"
	storeCloseTimeout = 5 * time.Second
)

// service resolves the board service on first use, so that help and
// completion never touch configuration or the network.
func (a *App) service(ctx context.Context) (ports.BoardService, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	if err := a.connect(ctx); err != nil {
		return nil, err
	}
	return a.svc, nil
}

func (a *App) connect(ctx context.Context) error {
	cfg, err := config.Load(a.Profile, config.WithConfigDir(a.ConfigDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logger == nil {
		a.logger = logging.New(cfg.Log.Level, cfg.Log.Format, a.stderr)
	}
	a.cfg = cfg

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, a.logger)

	if a.Local {
		store, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
		}
		a.closeFn = store.Close
		do.ProvideValue[ports.BoardStore](injector, store)
		registerLocal(injector)
	} else {
		registerRemote(injector)
	}

	svc, err := do.Invoke[ports.BoardService](injector)
	if err != nil {
		return fmt.Errorf("resolving board service: %w", err)
	}
	checker, err := do.Invoke[ports.HealthChecker](injector)
	if err != nil {
		return fmt.Errorf("resolving health checker: %w", err)
	}

	a.svc = svc
	a.checkers = []ports.HealthChecker{checker}
	a.logger.Debug("board service ready",
		slog.Bool("local", a.Local),
		slog.String("target", checker.Name()),
	)
	return nil
}

func registerRemote(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*boardapi.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		hc := httpclient.New(&cfg.Client, upstreamName, nil, logger)
		return boardapi.NewClient(hc, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return do.MustInvoke[*boardapi.Client](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.HealthChecker, error) {
		return do.MustInvoke[*boardapi.Client](i), nil
	})
}

func registerLocal(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		store := do.MustInvoke[ports.BoardStore](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return app.NewBoardService(store, logger, app.WithLockRetries(cfg.Board.LockRetries)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.HealthChecker, error) {
		return do.MustInvoke[ports.BoardStore](i), nil
	})
}

func (a *App) shutdown(ctx context.Context) error {
	if a.closeFn == nil {
		return nil
	}
	closeFn := a.closeFn
	a.closeFn = nil

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeCloseTimeout)
	defer cancel()
	if err := closeFn(ctx); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}

func (a *App) commitTimeout() time.Duration {
	if a.cfg == nil {
		return 0
	}
	return a.cfg.Board.CommitTimeout
}
