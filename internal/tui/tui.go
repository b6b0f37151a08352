// Package tui renders the wishlist as a terminal UI on top of the service
// layer. All network work runs as [tea.Cmd]s; completions come back as
// messages on the single UI loop, so model state only changes between
// messages.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjun-sureshh/beestore-client/internal/config"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/internal/service"
	"github.com/arjun-sureshh/beestore-client/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, cfg: cfg, buildInfo: buildInfo, logger: logger}, nil
}

// Run drives the wishlist UI until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Str("version", t.buildInfo.BuildVersion()).Msg("starting wishlist UI")

	model := newWishlistModel(ctx, t.services, t.cfg, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		t.logger.Error().Err(runErr).Msg("wishlist UI exited with error")
		return runErr
	}

	result, ok := finalModel.(wishlistModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit the wishlist UI")
		return ErrUserQuit
	}
	return nil
}
