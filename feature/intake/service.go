package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loanhub/core/storage"
	"loanhub/core/webhook"
	"loanhub/feature/people"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrMissingStudent is returned when the student identity fields are absent.
var ErrMissingStudent = errors.New("studentName and studentEmail are required")

// Service accepts form submissions: it resolves the referenced people,
// persists the submission and mirrors the raw payload to the workflow webhook.
type Service struct {
	db        *gorm.DB
	logger    *zap.Logger
	people    *people.Service
	forwarder *webhook.Client
	store     storage.Client
	bucket    string
}

// NewService creates a new intake service. forwarder and store may be nil when
// the respective integrations are disabled.
func NewService(db *gorm.DB, logger *zap.Logger, peopleSvc *people.Service, forwarder *webhook.Client, store storage.Client, bucket string) *Service {
	return &Service{
		db:        db,
		logger:    logger,
		people:    peopleSvc,
		forwarder: forwarder,
		store:     store,
		bucket:    bucket,
	}
}

// Submit validates and persists one form submission, then forwards the raw
// payload fire-and-forget. The returned submission carries the reference the
// caller can quote.
func (s *Service) Submit(ctx context.Context, req SubmissionRequest, raw []byte) (*FormSubmission, error) {
	if req.StudentName == "" || req.StudentEmail == "" {
		return nil, ErrMissingStudent
	}

	studentID, err := s.people.ResolveStudent(ctx, people.Student{
		Name:     req.StudentName,
		Email:    req.StudentEmail,
		MatricNo: req.MatricNo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve student: %w", err)
	}

	var supervisorID *uint
	if req.SupervisorEmail != "" {
		id, err := s.people.ResolveSupervisor(ctx, people.Supervisor{
			Name:    req.SupervisorName,
			Email:   req.SupervisorEmail,
			StaffNo: req.StaffNo,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve supervisor: %w", err)
		}
		supervisorID = &id
	}

	sub := &FormSubmission{
		Reference:    uuid.NewString(),
		StudentID:    studentID,
		SupervisorID: supervisorID,
		Purpose:      req.Purpose,
		Payload:      string(raw),
	}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}

	// Fire-and-forget side effects. Neither delays nor fails the submission.
	go s.forward(sub.ID, sub.Reference, raw)
	s.archive(ctx, sub.Reference, raw)

	return sub, nil
}

// forward delivers the raw payload to the workflow endpoint once, no retry.
func (s *Service) forward(id uint, reference string, raw []byte) {
	if s.forwarder == nil {
		return
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Warn("Submission payload is not valid JSON, forwarding skipped",
			zap.String("reference", reference), zap.Error(err))
		return
	}

	if err := s.forwarder.Forward(payload); err != nil {
		s.logger.Warn("Failed to forward submission", zap.String("reference", reference), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.db.WithContext(ctx).Model(&FormSubmission{}).Where("id = ?", id).
		Update("forwarded", true).Error; err != nil {
		s.logger.Warn("Failed to mark submission forwarded", zap.String("reference", reference), zap.Error(err))
	}
}

// archive stores the raw submission in the archive bucket, best-effort.
func (s *Service) archive(ctx context.Context, reference string, raw []byte) {
	if s.store == nil {
		return
	}
	objectName := fmt.Sprintf("forms/%s.json", reference)
	_, err := s.store.PutObject(ctx, s.bucket, objectName, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		s.logger.Warn("Failed to archive submission", zap.String("object", objectName), zap.Error(err))
	}
}

// Get returns a submission by its reference.
func (s *Service) Get(ctx context.Context, reference string) (*FormSubmission, error) {
	var sub FormSubmission
	if err := s.db.WithContext(ctx).First(&sub, "reference = ?", reference).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
