package sqlserver

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVendorSQLServer_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVendorSQLServer(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "rating", "price", "services"}).
			AddRow(1, "Paws & Claws Grooming", 4.8, "From $45", `["Grooming","Bathing","Nail Trimming"]`).
			AddRow(2, "Happy Tails Hotel", 4.5, "From $60/night", `not-json`)

		mock.ExpectQuery("SELECT (.+) FROM Vendors ORDER BY rating DESC").
			WillReturnRows(rows)

		vendors, err := repo.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, vendors, 2)
		assert.Equal(t, []string{"Grooming", "Bathing", "Nail Trimming"}, vendors[0].Services)
		// Malformed services text degrades to an empty list
		assert.Empty(t, vendors[1].Services)
		assert.Equal(t, 4.8, vendors[0].Rating)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM Vendors ORDER BY rating DESC").
			WillReturnError(sql.ErrConnDone)

		vendors, err := repo.List(ctx)
		assert.Error(t, err)
		assert.Nil(t, vendors)
	})
}

func TestVendorSQLServer_AvailabilityForDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVendorSQLServer(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"available_slots"}).
			AddRow(`["09:00","10:00","14:00"]`)

		mock.ExpectQuery("SELECT available_slots FROM VendorAvailability").
			WithArgs(1, "2026-09-01").
			WillReturnRows(rows)

		slots, err := repo.AvailabilityForDate(ctx, 1, "2026-09-01")

		assert.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "14:00"}, slots)
	})

	t.Run("no row means no slots", func(t *testing.T) {
		mock.ExpectQuery("SELECT available_slots FROM VendorAvailability").
			WithArgs(1, "2026-09-02").
			WillReturnError(sql.ErrNoRows)

		slots, err := repo.AvailabilityForDate(ctx, 1, "2026-09-02")

		assert.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("null column", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"available_slots"}).AddRow(nil)

		mock.ExpectQuery("SELECT available_slots FROM VendorAvailability").
			WithArgs(1, "2026-09-03").
			WillReturnRows(rows)

		slots, err := repo.AvailabilityForDate(ctx, 1, "2026-09-03")

		assert.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestParseJSONStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseJSONStringList(`["a","b"]`))
	assert.Empty(t, parseJSONStringList(""))
	assert.Empty(t, parseJSONStringList("garbage"))
	assert.Empty(t, parseJSONStringList(`{"not":"an array"}`))
	assert.Empty(t, parseJSONStringList(`[]`))
}
