package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pawfectfind/internal/model"
	repoMocks "pawfectfind/internal/repository/mocks"
)

func TestVendorService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns vendors from repository", func(t *testing.T) {
		repo := new(repoMocks.MockVendorRepository)
		svc := NewVendorService(repo)

		repo.On("List", mock.Anything).Return([]model.Vendor{
			{ID: 1, Name: "A", Rating: 4.9},
			{ID: 2, Name: "B", Rating: 4.1},
		}, nil).Once()

		vendors := svc.List(ctx)
		assert.Len(t, vendors, 2)
		repo.AssertExpectations(t)
	})

	t.Run("falls back on repository error", func(t *testing.T) {
		repo := new(repoMocks.MockVendorRepository)
		svc := NewVendorService(repo)

		repo.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

		vendors := svc.List(ctx)
		assert.Len(t, vendors, 1)
		assert.Equal(t, "Paws & Claws Grooming", vendors[0].Name)
	})
}

func TestVendorService_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored slots", func(t *testing.T) {
		repo := new(repoMocks.MockVendorRepository)
		svc := NewVendorService(repo)

		repo.On("AvailabilityForDate", mock.Anything, 1, "2026-09-01").
			Return([]string{"10:00", "14:00"}, nil).Once()

		av := svc.Availability(ctx, 1, "2026-09-01")
		assert.Equal(t, 1, av.VendorID)
		assert.Equal(t, "2026-09-01", av.Date)
		assert.Equal(t, []string{"10:00", "14:00"}, av.AvailableSlots)
	})

	t.Run("empty when no slots published", func(t *testing.T) {
		repo := new(repoMocks.MockVendorRepository)
		svc := NewVendorService(repo)

		repo.On("AvailabilityForDate", mock.Anything, 1, "2026-09-02").
			Return([]string{}, nil).Once()

		av := svc.Availability(ctx, 1, "2026-09-02")
		assert.Empty(t, av.AvailableSlots)
	})

	t.Run("generated grid on repository error", func(t *testing.T) {
		repo := new(repoMocks.MockVendorRepository)
		svc := NewVendorService(repo)

		repo.On("AvailabilityForDate", mock.Anything, 1, "2026-09-03").
			Return(nil, errors.New("db down")).Once()

		av := svc.Availability(ctx, 1, "2026-09-03")
		assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}, av.AvailableSlots)
	})
}

func TestServiceCatalog(t *testing.T) {
	catalog := ServiceCatalog()

	assert.Len(t, catalog, 4)
	assert.Equal(t, "Premium Pet Grooming", catalog[0].Name)
	assert.Equal(t, "From $75/session", catalog[3].Price)
}
