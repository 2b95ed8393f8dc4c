package meals

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mealsnap/mealsnap/internal/common"
	"github.com/mealsnap/mealsnap/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	m := &models.Meal{
		UserID:       "u-1",
		InputFileKey: "0c6a9b9e.jpeg",
		InputType:    "picture",
		Status:       models.MealStatusUploading,
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow("m-1")
	mock.ExpectQuery(`INSERT INTO meals`).
		WithArgs("u-1", "0c6a9b9e.jpeg", "picture", "uploading", "", "", []byte("[]")).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "m-1" {
		t.Fatalf("unexpected meal: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO meals`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Meal{
		UserID:       "u-1",
		InputFileKey: "k.m4a",
		InputType:    "audio",
		Status:       models.MealStatusUploading,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "input_file_key", "input_type", "status", "name", "icon", "foods", "created_at",
	}).AddRow("m-1", "u-1", "abc.jpeg", "picture", "uploading", "", "",
		[]byte(`[{"name":"apple","quantity":1,"unit":"pc","calories":52,"proteins":0.3,"carbohydrates":14,"fats":0.2}]`), created)

	mock.ExpectQuery(`SELECT .* FROM meals`).
		WithArgs("m-1", "u-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1", "m-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "m-1" || got.Status != "uploading" {
		t.Fatalf("unexpected meal: %+v", got)
	}
	if len(got.Foods) != 1 || got.Foods[0].Name != "apple" {
		t.Fatalf("unexpected foods: %+v", got.Foods)
	}
}

func TestGetByID_NotFoundOrForeign(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM meals`).
		WithArgs("m-1", "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "intruder", "m-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestListByUser_ReturnsRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "input_file_key", "input_type", "status", "name", "icon", "foods", "created_at",
	}).
		AddRow("m-2", "u-1", "b.m4a", "audio", "uploading", "", "", []byte(`[]`), created.Add(time.Hour)).
		AddRow("m-1", "u-1", "a.jpeg", "picture", "uploading", "", "", []byte(`[]`), created)

	mock.ExpectQuery(`SELECT .* FROM meals`).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m-2" {
		t.Fatalf("unexpected meals: %+v", got)
	}
}
