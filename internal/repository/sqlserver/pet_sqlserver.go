package sqlserver

import (
	"context"
	"database/sql"

	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
)

// PetSQLServer is a SQL Server implementation of repository.PetRepository.
type PetSQLServer struct {
	db *sql.DB
}

// NewPetSQLServer creates a new PetSQLServer repository.
func NewPetSQLServer(db *sql.DB) *PetSQLServer {
	return &PetSQLServer{db: db}
}

var _ repository.PetRepository = (*PetSQLServer)(nil)

// Create inserts a new pet row and returns the stored record.
func (r *PetSQLServer) Create(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	const q = `
		INSERT INTO pets (user_id, name, type, breed, age)
		OUTPUT INSERTED.id, INSERTED.created_at
		VALUES (@p1, @p2, @p3, @p4, @p5)
	`
	out := *p
	row := r.db.QueryRowContext(ctx, q,
		p.UserID,
		p.Name,
		p.Type,
		nullString(p.Breed),
		nullInt(p.Age),
	)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a pet owned by userID.
func (r *PetSQLServer) FindByID(ctx context.Context, id, userID int) (*model.Pet, error) {
	const q = `
		SELECT id, user_id, name, type, breed, age, photo_path, created_at
		FROM pets
		WHERE id = @p1 AND user_id = @p2
	`
	row := r.db.QueryRowContext(ctx, q, id, userID)
	return scanPet(row.Scan)
}

// ListByUser returns all pets of a user, newest first.
func (r *PetSQLServer) ListByUser(ctx context.Context, userID int) ([]model.Pet, error) {
	const q = `
		SELECT id, user_id, name, type, breed, age, photo_path, created_at
		FROM pets
		WHERE user_id = @p1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := make([]model.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows.Scan)
		if err != nil {
			return nil, err
		}
		pets = append(pets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pets, nil
}

// Delete removes the pet when owned by userID; sql.ErrNoRows when nothing matched.
func (r *PetSQLServer) Delete(ctx context.Context, id, userID int) error {
	const q = `DELETE FROM pets WHERE id = @p1 AND user_id = @p2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetPhotoPath records the object storage key of the pet's photo.
func (r *PetSQLServer) SetPhotoPath(ctx context.Context, id, userID int, path string) error {
	const q = `UPDATE pets SET photo_path = @p1 WHERE id = @p2 AND user_id = @p3`
	res, err := r.db.ExecContext(ctx, q, path, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanPet(scan func(dest ...any) error) (*model.Pet, error) {
	var p model.Pet
	var breed, photo sql.NullString
	var age sql.NullInt64
	if err := scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Type,
		&breed,
		&age,
		&photo,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Breed = breed.String
	p.Age = int(age.Int64)
	p.PhotoPath = photo.String
	return &p, nil
}
