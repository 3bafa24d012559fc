package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"pawfectfind/internal/model"
	"pawfectfind/internal/service"
)

type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) Create(ctx context.Context, userID int, in service.PetInput) (*model.Pet, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) List(ctx context.Context, userID int) ([]model.Pet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetService) Get(ctx context.Context, userID, id int) (*model.Pet, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) Delete(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPetService) AttachPhoto(ctx context.Context, userID, id int, r io.Reader, originalFilename, contentType string, size int64) (string, error) {
	args := m.Called(ctx, userID, id, r, originalFilename, contentType, size)
	return args.String(0), args.Error(1)
}

func (m *MockPetService) PhotoURL(ctx context.Context, userID, id int) (string, error) {
	args := m.Called(ctx, userID, id)
	return args.String(0), args.Error(1)
}
