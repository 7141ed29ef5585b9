package people

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrMissingEmail is returned when a record lacks its natural key.
var ErrMissingEmail = errors.New("email is required")

// Service resolves students and supervisors by their natural key.
//
// Resolution is an upsert, not a lookup followed by an insert: the statement
// either creates the row or refreshes its descriptive fields, so two
// concurrent submissions for the same person cannot race into a duplicate.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new people service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ResolveStudent upserts the student keyed by email and returns the resolved
// identifier.
func (s *Service) ResolveStudent(ctx context.Context, student Student) (uint, error) {
	if student.Email == "" {
		return 0, ErrMissingEmail
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "matric_no"}),
	}).Create(&student).Error
	if err != nil {
		return 0, err
	}

	// Re-read by the natural key; on a conflict-update the driver's returned
	// id is not reliable across backends.
	var resolved Student
	if err := s.db.WithContext(ctx).First(&resolved, "email = ?", student.Email).Error; err != nil {
		return 0, err
	}
	return resolved.ID, nil
}

// ResolveSupervisor upserts the supervisor keyed by email and returns the
// resolved identifier.
func (s *Service) ResolveSupervisor(ctx context.Context, sup Supervisor) (uint, error) {
	if sup.Email == "" {
		return 0, ErrMissingEmail
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "staff_no"}),
	}).Create(&sup).Error
	if err != nil {
		return 0, err
	}

	var resolved Supervisor
	if err := s.db.WithContext(ctx).First(&resolved, "email = ?", sup.Email).Error; err != nil {
		return 0, err
	}
	return resolved.ID, nil
}
