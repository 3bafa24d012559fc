package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pawfectfind/internal/model"
)

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id, userID int) (*model.Pet, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) ListByUser(ctx context.Context, userID int) ([]model.Pet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetRepository) Delete(ctx context.Context, id, userID int) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockPetRepository) SetPhotoPath(ctx context.Context, id, userID int, path string) error {
	args := m.Called(ctx, id, userID, path)
	return args.Error(0)
}
