package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pawfectfind/internal/model"
)

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) List(ctx context.Context) ([]model.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

func (m *MockVendorRepository) AvailabilityForDate(ctx context.Context, vendorID int, date string) ([]string, error) {
	args := m.Called(ctx, vendorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
