package main

import (
	"fmt"

	"github.com/arjun-sureshh/beestore-client/internal/adapter"
	"github.com/arjun-sureshh/beestore-client/internal/client"
	"github.com/arjun-sureshh/beestore-client/internal/config"
	"github.com/arjun-sureshh/beestore-client/internal/logger"
	"github.com/arjun-sureshh/beestore-client/internal/service"
	"github.com/arjun-sureshh/beestore-client/internal/store"
	"github.com/arjun-sureshh/beestore-client/internal/tui"
	"github.com/arjun-sureshh/beestore-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewClientLogger("beestore-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storeAdapter, err := adapter.NewHTTPStoreAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create store adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, storeAdapter, log)

	ui, err := tui.New(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
