package meals

import (
	"context"

	"github.com/mealsnap/mealsnap/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, meal *models.Meal) (*models.Meal, error)
	GetByID(ctx context.Context, userID, mealID string) (*models.Meal, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Meal, error)
}
