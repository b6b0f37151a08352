package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjun-sureshh/beestore-client/internal/config"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/internal/service"
	"github.com/arjun-sureshh/beestore-client/internal/tui"
	"github.com/arjun-sureshh/beestore-client/internal/workers"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	background := workers.NewWorkers(
		workers.NewWishlistRefreshWorker(services.RefreshJob, workersCfg.RefreshInterval),
	)

	return &App{services: services, workers: background, tui: ui, logger: log}, nil
}

// Run starts the background refresher and blocks in the UI loop until the
// user quits. Session resolution happens inside the UI's init; a missing or
// rejected session is not fatal, the UI opens on its sign-in page instead.
func (a *App) Run() error {
	ctx := context.Background()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
