// Package meals provides a PostgreSQL-backed repository for meal records.
package meals

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mealsnap/mealsnap/internal/common"
	"github.com/mealsnap/mealsnap/internal/dbx"
	"github.com/mealsnap/mealsnap/internal/server/models"
)

// PostgresRepository implements meal storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Foods are stored as a jsonb column.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new meal row and fills in the generated id.
func (r *PostgresRepository) Create(ctx context.Context, meal *models.Meal) (*models.Meal, error) {

	foods := meal.Foods
	if foods == nil {
		foods = []models.Food{}
	}
	foodsJSON, err := json.Marshal(foods)
	if err != nil {
		return nil, fmt.Errorf("foods marshal error: %w", err)
	}

	query :=
		`INSERT INTO meals (user_id, input_file_key, input_type, status, name, icon, foods)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		meal.UserID, meal.InputFileKey, meal.InputType, meal.Status,
		meal.Name, meal.Icon, foodsJSON).Scan(&meal.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return meal, nil
}

// GetByID returns the meal with the given id owned by userID. A meal that
// does not exist and a meal owned by someone else are both
// common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	query :=
		`SELECT id, user_id, input_file_key, input_type, status, name, icon, foods, created_at
		 FROM meals
		 WHERE id = $1 AND user_id = $2
		 `

	meal, err := scanMeal(r.db.QueryRowContext(ctx, query, mealID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return meal, nil
}

// ListByUser returns all meals owned by userID, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Meal, error) {
	query :=
		`SELECT id, user_id, input_file_key, input_type, status, name, icon, foods, created_at
		 FROM meals
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select meals: %w", err)
	}
	defer rows.Close()

	var result []*models.Meal
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeal(row rowScanner) (*models.Meal, error) {
	meal := &models.Meal{}
	var foodsJSON []byte

	if err := row.Scan(&meal.ID, &meal.UserID, &meal.InputFileKey, &meal.InputType,
		&meal.Status, &meal.Name, &meal.Icon, &foodsJSON, &meal.CreatedAt); err != nil {
		return nil, err
	}

	if len(foodsJSON) > 0 {
		if err := json.Unmarshal(foodsJSON, &meal.Foods); err != nil {
			return nil, fmt.Errorf("foods unmarshal error: %w", err)
		}
	}

	return meal, nil
}
