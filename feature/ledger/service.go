package ledger

import (
	"context"
	"errors"

	"loanhub/core/utils"
	"loanhub/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrItemNotFound is returned when the referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrInsufficientStock is returned when a borrow exceeds the available quantity.
	ErrInsufficientStock = errors.New("insufficient stock available")
	// ErrExcessReturn is returned when a return exceeds the outstanding borrowed quantity.
	ErrExcessReturn = errors.New("return exceeds outstanding borrowed quantity")
	// ErrInvalidQuantity is returned when the quantity is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Service performs the borrow/return ledger adjustments.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new ledger service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Borrow atomically moves quantity from available to borrowed and appends a
// Pending borrow request. On any failed check the transaction rolls back and
// no counter moves.
func (s *Service) Borrow(ctx context.Context, itemID int, studentID string, qty int) (*BorrowRequest, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	var req *BorrowRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the item row for the duration of the adjustment.
		var item models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "item_id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if qty > utils.IntOrZero(item.QtyAvailable) {
			return ErrInsufficientStock
		}

		// The guard repeats the availability check so the check and the
		// decrement are one statement; a racing borrow that slipped past the
		// read above still cannot take the stock negative.
		res := tx.Model(&models.Item{}).
			Where("item_id = ? AND qty_available >= ?", itemID, qty).
			Updates(map[string]any{
				"qty_available": gorm.Expr("qty_available - ?", qty),
				"qty_borrowed":  gorm.Expr("COALESCE(qty_borrowed, 0) + ?", qty),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		r := &BorrowRequest{
			StudentID:    studentID,
			ItemID:       itemID,
			QtyRequested: qty,
			Status:       StatusPending,
		}
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		if err := tx.Create(&BorrowedItem{RequestID: r.ID, QtyBorrowed: qty}).Error; err != nil {
			return err
		}
		req = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Return atomically moves quantity from borrowed back to available and credits
// the oldest open borrow request of the student for the item. The per-request
// credit is skipped when it would exceed that request's borrowed quantity; the
// item counters only move when the aggregate guard holds.
func (s *Service) Return(ctx context.Context, itemID int, studentID string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "item_id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		res := tx.Model(&models.Item{}).
			Where("item_id = ? AND qty_borrowed >= ?", itemID, qty).
			Updates(map[string]any{
				"qty_available": gorm.Expr("COALESCE(qty_available, 0) + ?", qty),
				"qty_borrowed":  gorm.Expr("qty_borrowed - ?", qty),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrExcessReturn
		}

		// Credit the oldest open request, if any. A missing request is not an
		// error: the aggregate counters are the source of truth.
		var req BorrowRequest
		err := tx.Where("student_id = ? AND item_id = ? AND status = ?", studentID, itemID, StatusPending).
			Order("id").First(&req).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		upd := tx.Model(&BorrowedItem{}).
			Where("request_id = ? AND qty_returned + ? <= qty_borrowed", req.ID, qty).
			Update("qty_returned", gorm.Expr("qty_returned + ?", qty))
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			// Bounded no-op: the credit would exceed the request's quantity.
			return nil
		}

		var rec BorrowedItem
		if err := tx.Where("request_id = ?", req.ID).First(&rec).Error; err != nil {
			return err
		}
		if rec.QtyReturned >= rec.QtyBorrowed {
			if err := tx.Model(&BorrowRequest{}).Where("id = ?", req.ID).
				Update("status", StatusReturned).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListRequests returns borrow requests, optionally filtered by student.
func (s *Service) ListRequests(ctx context.Context, studentID string) ([]BorrowRequest, error) {
	q := s.db.WithContext(ctx).Model(&BorrowRequest{}).Order("created_at DESC")
	if studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	var reqs []BorrowRequest
	if err := q.Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}
