package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mealsnap/mealsnap/internal/server/models"
	"github.com/mealsnap/mealsnap/internal/server/repositories/repomanager"
)

// UploadURLIssuer mints a write-only upload capability for a media kind.
// Implemented by uploads.Broker.
type UploadURLIssuer interface {
	IssueUploadURL(ctx context.Context, kind models.MediaKind) (storageKey string, uploadURL string, err error)
}

// MealService orchestrates meal intake: validating the declared media kind,
// obtaining an upload capability, and recording the pending meal.
type MealService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	broker      UploadURLIssuer
}

// NewMealService constructs a MealService.
func NewMealService(db *sql.DB, m repomanager.RepositoryManager, broker UploadURLIssuer) *MealService {
	return &MealService{
		db:          db,
		repomanager: m,
		broker:      broker,
	}
}

// Register creates a pending meal for userID with declared content type
// fileType, returning the persisted meal and the upload URL the client must
// PUT the media to.
//
// Ordering matters: the upload capability is minted before the row is
// written, so a storage failure leaves no orphaned record, and every stored
// `uploading` meal references exactly one issued storage key. The returned
// error is common.ErrorValidation for an unsupported fileType and
// common.ErrUploadUnavailable (wrapped) when the capability cannot be
// issued; nothing is persisted on either path.
func (s *MealService) Register(ctx context.Context, userID, fileType string) (*models.Meal, string, error) {
	kind, err := models.ParseMediaKind(fileType)
	if err != nil {
		return nil, "", err
	}

	storageKey, uploadURL, err := s.broker.IssueUploadURL(ctx, kind)
	if err != nil {
		return nil, "", err
	}

	meal := &models.Meal{
		UserID:       userID,
		InputFileKey: storageKey,
		InputType:    kind.InputType(),
		Status:       models.MealStatusUploading,
	}

	repo := s.repomanager.Meals(s.db)
	meal, err = repo.Create(ctx, meal)
	if err != nil {
		return nil, "", fmt.Errorf("error creating meal: %w", err)
	}

	return meal, uploadURL, nil
}

// GetByID returns the meal with the given id if it belongs to userID.
func (s *MealService) GetByID(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	repo := s.repomanager.Meals(s.db)

	meal, err := repo.GetByID(ctx, userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("error getting meal: %w", err)
	}
	return meal, nil
}

// ListByUser returns all of userID's meals, newest first.
func (s *MealService) ListByUser(ctx context.Context, userID string) ([]*models.Meal, error) {
	repo := s.repomanager.Meals(s.db)

	meals, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing meals: %w", err)
	}
	return meals, nil
}
