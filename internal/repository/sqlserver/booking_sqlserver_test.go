package sqlserver

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
)

func TestBookingSQLServer_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBookingSQLServer(db)
	ctx := context.Background()

	booking := &model.Booking{
		UserID:      7,
		PetID:       3,
		ServiceType: "Grooming",
		VendorID:    "12",
		BookingDate: "2026-09-01",
		BookingTime: "10:00",
		Status:      model.BookingStatusPending,
	}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "status", "created_at"}).
		AddRow(42, model.BookingStatusPending, now)

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(booking.UserID, booking.PetID, booking.ServiceType, booking.VendorID,
			booking.BookingDate, booking.BookingTime, booking.Status).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, booking)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 42, result.ID)
	assert.Equal(t, model.BookingStatusPending, result.Status)
	assert.Equal(t, "2026-09-01", result.BookingDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingSQLServer_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBookingSQLServer(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "pet_id", "service_type", "vendor_id",
			"booking_date", "booking_time", "status", "created_at",
		}).AddRow(42, 7, 3, "Grooming", "12", date, "10:00", "confirmed", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE user_id = @p1 ORDER BY").
			WithArgs(7, 0, 10).
			WillReturnRows(rows)

		res, err := repo.ListByUser(ctx, 7, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, "2026-09-01", res.Items[0].BookingDate)
		assert.Equal(t, "confirmed", res.Items[0].Status)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(7).
			WillReturnError(sql.ErrConnDone)

		res, err := repo.ListByUser(ctx, 7, repository.PageQuery{Limit: 10, Offset: 0})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestBookingSQLServer_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewBookingSQLServer(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status = @p1 WHERE id = @p2").
			WithArgs("confirmed", 42).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 42, "confirmed")
		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status = @p1 WHERE id = @p2").
			WithArgs("confirmed", 999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 999, "confirmed")
		assert.True(t, IsNoRowsError(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
