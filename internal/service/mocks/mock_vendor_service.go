package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pawfectfind/internal/model"
)

type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) List(ctx context.Context) []model.Vendor {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Vendor)
}

func (m *MockVendorService) Availability(ctx context.Context, vendorID int, date string) *model.VendorAvailability {
	args := m.Called(ctx, vendorID, date)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.VendorAvailability)
}
