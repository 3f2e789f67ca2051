package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/godamri/helix-db/app"
	"github.com/godamri/helix-db/config"
	"github.com/godamri/helix-db/database"
	"github.com/godamri/helix-db/http/filter"
	"github.com/godamri/helix-db/http/response"
	"github.com/godamri/helix-db/log"
	"github.com/godamri/helix-db/server"
	"github.com/godamri/helix-db/server/health"
	"go.uber.org/dig"
)

const (
	envPrefix   = "HELIX"
	serviceName = "helix-demo"
)

func main() {
	configPath := flag.String("config", "helix.yaml", "path to the yaml config file")
	flag.Parse()

	logCfg, err := config.Load[log.Config](envPrefix, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := log.New(*logCfg)
	slog.SetDefault(logger)

	os.Exit(app.NewRunner(logger).Run(func(ctx context.Context) error {
		return run(ctx, *configPath, logger)
	}))
}

func run(ctx context.Context, configPath string, logger *slog.Logger) error {
	dbCfg, err := config.Load[database.Config](envPrefix, configPath)
	if err != nil {
		return err
	}
	srvCfg, err := config.Load[server.Config](envPrefix, configPath)
	if err != nil {
		return err
	}
	filterCfg, err := config.Load[filter.Config](envPrefix, configPath)
	if err != nil {
		return err
	}

	// The host owns the client; the container only hands it out.
	db, err := database.NewPostgres(ctx, *dbCfg, serviceName)
	if err != nil {
		return err
	}
	defer db.Close()

	c := dig.New()
	err = app.Install(c,
		app.Provider{Name: "logger", Constructor: func() *slog.Logger { return logger }},
		app.Provider{Name: "base error handler", Constructor: func(l *slog.Logger) response.ErrorHandler {
			return response.NewDefaultErrorHandler(l)
		}},
		database.ClientProvider(db),
		database.ServiceProvider(),
		filter.Provider(filterCfg.StatusCodes, filterCfg.Messages),
	)
	if err != nil {
		return err
	}

	svc, err := app.Resolve[*database.Service](c)
	if err != nil {
		return err
	}
	errFilter, err := app.Resolve[*filter.Filter](c)
	if err != nil {
		return err
	}

	router := server.NewRouter(serviceName, logger, errFilter)
	health.NewChecker(svc, logger).RegisterRoutes(router)
	newUserHandler(svc, errFilter).RegisterRoutes(router)

	return server.New(*srvCfg, logger, router).Start(ctx)
}
