package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loanhub/core/storage"
	"loanhub/feature/inventory/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrItemNotFound is returned when the referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrMissingKey is returned when a reconcile record lacks its natural key.
	ErrMissingKey = errors.New("item identifier and name are required")
)

// Service handles inventory persistence.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	store  storage.Client
	bucket string
}

// NewService creates a new inventory service. store may be nil when the
// archive bucket integration is disabled.
func NewService(db *gorm.DB, logger *zap.Logger, store storage.Client, bucket string) *Service {
	return &Service{db: db, logger: logger, store: store, bucket: bucket}
}

// List returns all inventory items.
func (s *Service) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).Order("item_id").Find(&items).Error
	return items, err
}

// Get returns a single item by its identifier.
func (s *Service) Get(ctx context.Context, itemID int) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new item and returns it with its assigned identifier.
func (s *Service) Create(ctx context.Context, item *models.Item) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Update replaces the descriptive and quantity fields of an existing item.
func (s *Service) Update(ctx context.Context, itemID int, item *models.Item) (*models.Item, error) {
	res := s.db.WithContext(ctx).Model(&models.Item{}).Where("item_id = ?", itemID).
		Updates(map[string]any{
			"item_name":         item.ItemName,
			"brand":             item.Brand,
			"model":             item.Model,
			"size":              item.Size,
			"category":          item.Category,
			"total_qty":         item.TotalQty,
			"qty_available":     item.QtyAvailable,
			"qty_reserved":      item.QtyReserved,
			"qty_borrowed":      item.QtyBorrowed,
			"is_loanable":       item.IsLoanable,
			"requires_approval": item.RequiresApproval,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrItemNotFound
	}
	return s.Get(ctx, itemID)
}

// Delete removes an item by its identifier.
func (s *Service) Delete(ctx context.Context, itemID int) error {
	res := s.db.WithContext(ctx).Delete(&models.Item{}, "item_id = ?", itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Reconcile applies one externally sourced record: insert when the natural key
// is absent, full-replace of every field when it is present. The statement is
// a single conditional upsert, so there is no window between an existence
// check and the write. Applying the same record twice stores the same row.
func (s *Service) Reconcile(ctx context.Context, rec models.ImportRecord) (*models.Item, error) {
	if rec.ItemID <= 0 || rec.ItemName == "" {
		return nil, ErrMissingKey
	}
	item := rec.Normalize()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}},
		UpdateAll: true,
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// reconcileAll applies every record inside one transaction. A failing row
// aborts the whole file so a partially applied spreadsheet is never visible.
func (s *Service) reconcileAll(tx *gorm.DB, recs []models.ImportRecord) error {
	for i, rec := range recs {
		if rec.ItemID <= 0 || rec.ItemName == "" {
			return fmt.Errorf("row %d: %w", i+1, ErrMissingKey)
		}
		item := rec.Normalize()
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			UpdateAll: true,
		}).Create(&item).Error; err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// ImportAll reconciles a batch of parsed spreadsheet records atomically and
// returns the number of rows applied.
func (s *Service) ImportAll(ctx context.Context, recs []models.ImportRecord) (int, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reconcileAll(tx, recs)
	})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// Archive stores the raw upload in the archive bucket. Best-effort: failures
// are logged and swallowed, the import result does not depend on it.
func (s *Service) Archive(ctx context.Context, name string, data []byte) {
	if s.store == nil {
		return
	}
	objectName := fmt.Sprintf("imports/%s-%s", time.Now().UTC().Format("20060102T150405"), sanitizeObjectName(name))
	_, err := s.store.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Warn("Failed to archive upload", zap.String("object", objectName), zap.Error(err))
		return
	}
	s.logger.Info("Archived upload", zap.String("object", objectName))
}

func sanitizeObjectName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "upload"
	}
	return name
}
