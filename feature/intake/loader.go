package intake

import (
	"loanhub/core/storage"
	"loanhub/core/webhook"
	"loanhub/feature/people"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the intake feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, forwarder *webhook.Client, store storage.Client, bucket string) *Feature {
	svc := NewService(db, logger, people.NewService(db, logger), forwarder, store, bucket)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "intake"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
