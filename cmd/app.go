package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"asset-indexer/core/assets"
	"asset-indexer/core/config"
	"asset-indexer/core/database"
	"asset-indexer/core/logger"
	"asset-indexer/feature/index"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds what every command needs after bootstrap.
type app struct {
	cfg   *config.Config
	logg  *zap.Logger
	db    *gorm.DB
	roots assets.Roots
}

// setup loads configuration, builds the logger and connects the index store.
func setup() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open index store: %w", err)
	}

	return &app{
		cfg:   cfg,
		logg:  logg.With(zap.String("store", cfg.Database.Driver)),
		db:    db,
		roots: cfg.Assets.Resolve(),
	}, nil
}

// store returns the index store with progress logged.
func (a *app) store() *index.Store {
	return index.NewStore(a.db, a.roots, a.logg, index.NewLogProgress(a.logg))
}

// openIndex makes sure the index exists, building it on first use.
func (a *app) openIndex(ctx context.Context) (*index.Store, error) {
	s := a.store()
	if _, err := s.Open(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// close releases the store connection and flushes the logger.
func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logg.Sync()
}

// Output formats accepted by --output.
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var outputFlag = outputJSON

// printResult writes v to w in the format selected by --output.
func printResult(w io.Writer, v any) error {
	switch outputFlag {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", outputFlag)
	}
}
