package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
	"pawfectfind/internal/storage"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrNoPhoto    = errors.New("pet has no photo")
	ErrReaderNil  = errors.New("reader is nil")
	ErrNameNeeded = errors.New("name and type are required")
)

// photoURLExpiry bounds how long a presigned photo link stays valid.
const photoURLExpiry = 15 * time.Minute

// PetInput carries the fields of a pet create request.
type PetInput struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Breed string `json:"breed"`
	Age   int    `json:"age"`
}

// PetService defines the pet use cases. All operations are scoped to the
// authenticated owner.
type PetService interface {
	Create(ctx context.Context, userID int, in PetInput) (*model.Pet, error)
	List(ctx context.Context, userID int) ([]model.Pet, error)
	Get(ctx context.Context, userID, id int) (*model.Pet, error)
	Delete(ctx context.Context, userID, id int) error

	// AttachPhoto uploads the photo to object storage, records its key on
	// the pet, and rolls back the object if the DB update fails. Returns a
	// presigned download URL.
	AttachPhoto(ctx context.Context, userID, id int, r io.Reader, originalFilename, contentType string, size int64) (string, error)

	// PhotoURL returns a presigned download URL for the pet's photo.
	PhotoURL(ctx context.Context, userID, id int) (string, error)
}

type petService struct {
	store storage.Storage
	repo  repository.PetRepository
}

// NewPetService constructs a new PetService.
func NewPetService(store storage.Storage, repo repository.PetRepository) PetService {
	return &petService{store: store, repo: repo}
}

func (s *petService) Create(ctx context.Context, userID int, in PetInput) (*model.Pet, error) {
	if in.Name == "" || in.Type == "" {
		return nil, ErrNameNeeded
	}
	pet, err := s.repo.Create(ctx, &model.Pet{
		UserID: userID,
		Name:   in.Name,
		Type:   in.Type,
		Breed:  in.Breed,
		Age:    in.Age,
	})
	if err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	return pet, nil
}

func (s *petService) List(ctx context.Context, userID int) ([]model.Pet, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *petService) Get(ctx context.Context, userID, id int) (*model.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pet, nil
}

func (s *petService) Delete(ctx context.Context, userID, id int) error {
	// Fetch first so a stored photo can be cleaned up alongside the row.
	pet, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if pet.PhotoPath != "" {
		if err := s.store.Delete(ctx, pet.PhotoPath); err != nil {
			return fmt.Errorf("delete photo: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *petService) AttachPhoto(ctx context.Context, userID, id int, r io.Reader, originalFilename, contentType string, size int64) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}
	// The pet must exist and belong to the caller before anything is stored.
	if _, err := s.repo.FindByID(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}

	// Generate object key using UUID + extension
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("pets", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.SetPhotoPath(ctx, id, userID, objInfo.Key); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return "", fmt.Errorf("record photo failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("record photo: %w", err)
	}

	url, err := s.store.PresignGet(ctx, objInfo.Key, photoURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return url, nil
}

func (s *petService) PhotoURL(ctx context.Context, userID, id int) (string, error) {
	pet, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	if pet.PhotoPath == "" {
		return "", ErrNoPhoto
	}
	url, err := s.store.PresignGet(ctx, pet.PhotoPath, photoURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return url, nil
}
