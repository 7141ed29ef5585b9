package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loanhub/core/config"
	"loanhub/core/database"
	"loanhub/core/loader"
	"loanhub/core/logger"
	"loanhub/core/middleware/rayid"
	"loanhub/core/storage"
	"loanhub/core/webhook"

	"loanhub/feature/intake"
	"loanhub/feature/inventory"
	"loanhub/feature/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "loanhub/docs/swagger"
)

// @title Loaning Hub API
// @version 1.0
// @description Backend API for the equipment loaning hub.
// @host localhost:5000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the loaning hub server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Archive Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				cancel()
				logg.Fatal("Failed to prepare archive bucket", zap.Error(err))
			}
			cancel()
			store = client
			logg.Info("Archive bucket ready", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Initialize Webhook Forwarder (Optional)
		forwarder := webhook.NewClient(cfg.Webhook)
		if forwarder != nil {
			logg.Info("Form forwarding enabled", zap.String("url", cfg.Webhook.URL))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
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

		corsConfig := cors.ConfigDefault
		if cfg.Server.CorsOrigins != "" {
			corsConfig.AllowOrigins = cfg.Server.CorsOrigins
		}
		app.Use(cors.New(corsConfig))

		// Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 7. Load Features under /api
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(db, logg, store, cfg.Storage.Bucket))
		mgr.Register(ledger.NewFeature(db, logg))
		mgr.Register(intake.NewFeature(db, logg, forwarder, store, cfg.Storage.Bucket))

		if err := mgr.LoadAll(app.Group("/api")); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
