package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	catalogStore "github.com/MrJamesThe3rd/mobility/internal/catalog/store"
	"github.com/MrJamesThe3rd/mobility/internal/config"
	"github.com/MrJamesThe3rd/mobility/internal/database"
	"github.com/MrJamesThe3rd/mobility/internal/employee"
	"github.com/MrJamesThe3rd/mobility/internal/employee/upstream"
	mobilityHttp "github.com/MrJamesThe3rd/mobility/internal/http"
	catalogHandler "github.com/MrJamesThe3rd/mobility/internal/http/catalog"
	employeeHandler "github.com/MrJamesThe3rd/mobility/internal/http/employee"
	importHandler "github.com/MrJamesThe3rd/mobility/internal/http/importcsv"
	"github.com/MrJamesThe3rd/mobility/internal/importer"
	"github.com/MrJamesThe3rd/mobility/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.App.LogLevel, cfg.App.LogFormat)

	cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	var (
		importService   = importer.NewService(cat)
		employeeService = employee.NewService(
			upstream.New(cfg.Employees.URL, cfg.App.Name, cfg.Employees.Secret, cfg.Employees.Timeout),
		)
	)

	var (
		importH   = importHandler.NewHandler(importService, cfg.Server.MaxUploadSize)
		catalogH  = catalogHandler.NewHandler(cat)
		employeeH = employeeHandler.NewHandler(employeeService)
	)

	router := mobilityHttp.New(
		mobilityHttp.Options{CORSOrigins: cfg.Server.CORSOrigins, Timeout: cfg.Server.Timeout},
		importH, catalogH, employeeH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "catalog", cfg.Catalog.Source)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// loadCatalog only connects to the database when the catalog lives there.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	src := catalog.Source(cfg.Catalog.Source)
	if src != catalog.SourcePostgres {
		return catalog.Load(ctx, src, cfg.Catalog.File, nil)
	}

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	return catalog.Load(ctx, src, cfg.Catalog.File, catalogStore.New(db))
}
