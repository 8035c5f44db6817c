package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"asset-indexer/core/loader"
	"asset-indexer/core/logger"
	"asset-indexer/core/middleware/auth"
	"asset-indexer/core/middleware/rayid"
	"asset-indexer/feature/catalog"
	"asset-indexer/feature/index"
	"asset-indexer/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-indexer/docs/swagger"
)

// @title Asset Indexer API
// @version 1.0
// @description API for querying indexed game items and blueprints.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset indexer server",
	Long:  `Opens the index, building it on first use, and serves it over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and store connection
		a, err := setup()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer a.close()
		logg := a.logg
		zap.ReplaceGlobals(logg)

		// 2. Open the index; a store that cannot be built is fatal
		store, err := a.openIndex(cmd.Context())
		if err != nil {
			logg.Fatal("Failed to open index", zap.Error(err))
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Register Features
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(a.db, a.roots, logg))
		mgr.Register(index.NewFeature(store, logg, a.cfg.Server.AllowRebuild))
		mgr.Register(integrity.NewFeature(a.db, a.roots, logg))

		// 5. Middleware: RayID first so every log line carries it
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		addr := a.cfg.Server.Address()
		go func() {
			logg.Info("Starting server", zap.String("address", addr))
			if err := app.Listen(addr); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
