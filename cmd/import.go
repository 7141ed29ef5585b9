package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"loanhub/core/config"
	"loanhub/core/database"
	"loanhub/core/logger"
	"loanhub/core/storage"
	"loanhub/feature/inventory"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFile   string
	importObject string
)

// importCmd bulk-imports a spreadsheet into the inventory, either from a local
// file or from an object in the archive bucket.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import inventory records from a CSV/XLSX spreadsheet",
	Long: `Reconciles every row of a spreadsheet into the inventory table.
Rows are keyed by item_id and applied as insert-or-full-replace upserts inside
one transaction, so re-running an import is idempotent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (importFile == "") == (importObject == "") {
			return fmt.Errorf("exactly one of --file or --object is required")
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}

		ctx := context.Background()
		name := importFile
		var source io.Reader

		if importFile != "" {
			f, err := os.Open(importFile)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", importFile, err)
			}
			defer f.Close()
			source = f
			name = filepath.Base(importFile)
		} else {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			obj, err := client.GetObject(ctx, cfg.Storage.Bucket, importObject, minio.GetObjectOptions{})
			if err != nil {
				return fmt.Errorf("failed to fetch object %s: %w", importObject, err)
			}
			defer obj.Close()
			source = obj
			name = filepath.Base(importObject)
		}

		recs, err := inventory.ParseUpload(name, source)
		if err != nil {
			return err
		}

		svc := inventory.NewService(db, logg, nil, "")
		count, err := svc.ImportAll(ctx, recs)
		if err != nil {
			return err
		}

		logg.Info("Import finished", zap.String("source", name), zap.Int("rows", count))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "local CSV/XLSX file to import")
	importCmd.Flags().StringVar(&importObject, "object", "", "object name in the archive bucket to import")
	RootCmd.AddCommand(importCmd)
}
