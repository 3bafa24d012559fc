package sqlserver

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"pawfectfind/internal/model"
)

func TestPetSQLServer_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPetSQLServer(db)
	ctx := context.Background()

	pet := &model.Pet{
		UserID: 7,
		Name:   "Milo",
		Type:   "dog",
		Breed:  "Corgi",
		Age:    3,
	}

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now().UTC())

	mock.ExpectQuery("INSERT INTO pets").
		WithArgs(pet.UserID, pet.Name, pet.Type, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, pet)

	assert.NoError(t, err)
	assert.Equal(t, 5, result.ID)
	assert.Equal(t, "Milo", result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPetSQLServer_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPetSQLServer(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "type", "breed", "age", "photo_path", "created_at"}).
			AddRow(5, 7, "Milo", "dog", "Corgi", 3, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM pets WHERE id = @p1 AND user_id = @p2").
			WithArgs(5, 7).
			WillReturnRows(rows)

		pet, err := repo.FindByID(ctx, 5, 7)

		assert.NoError(t, err)
		assert.Equal(t, "Milo", pet.Name)
		assert.Empty(t, pet.PhotoPath)
	})

	t.Run("wrong owner", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pets WHERE id = @p1 AND user_id = @p2").
			WithArgs(5, 99).
			WillReturnError(sql.ErrNoRows)

		pet, err := repo.FindByID(ctx, 5, 99)

		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, pet)
	})
}

func TestPetSQLServer_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPetSQLServer(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "type", "breed", "age", "photo_path", "created_at"}).
		AddRow(5, 7, "Milo", "dog", "Corgi", 3, "pets/milo.jpg", time.Now()).
		AddRow(6, 7, "Mochi", "cat", nil, nil, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM pets WHERE user_id = @p1 ORDER BY").
		WithArgs(7).
		WillReturnRows(rows)

	pets, err := repo.ListByUser(ctx, 7)

	assert.NoError(t, err)
	assert.Len(t, pets, 2)
	assert.Equal(t, "pets/milo.jpg", pets[0].PhotoPath)
	assert.Empty(t, pets[1].Breed)
	assert.Zero(t, pets[1].Age)
}

func TestPetSQLServer_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPetSQLServer(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM pets WHERE id = @p1 AND user_id = @p2").
			WithArgs(5, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 5, 7))
	})

	t.Run("not owned", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM pets WHERE id = @p1 AND user_id = @p2").
			WithArgs(5, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, IsNoRowsError(repo.Delete(ctx, 5, 99)))
	})
}

func TestPetSQLServer_SetPhotoPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPetSQLServer(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE pets SET photo_path = @p1").
		WithArgs("pets/abc.jpg", 5, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetPhotoPath(ctx, 5, 7, "pets/abc.jpg"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
