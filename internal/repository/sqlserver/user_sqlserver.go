package sqlserver

import (
	"context"
	"database/sql"
	"errors"

	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
)

// UserSQLServer is a SQL Server implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserSQLServer struct {
	db *sql.DB
}

// NewUserSQLServer creates a new UserSQLServer repository.
func NewUserSQLServer(db *sql.DB) *UserSQLServer {
	return &UserSQLServer{db: db}
}

var _ repository.UserRepository = (*UserSQLServer)(nil)

// IsNoRowsError reports whether err is the database/sql missing-row sentinel.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Create inserts a new user row; id and created_at come back from OUTPUT INSERTED.
func (r *UserSQLServer) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (email, password_hash, full_name, phone_number)
		OUTPUT INSERTED.id, INSERTED.created_at
		VALUES (@p1, @p2, @p3, @p4)
	`
	out := *u
	row := r.db.QueryRowContext(ctx, q,
		u.Email,
		u.PasswordHash,
		u.FullName,
		nullString(u.PhoneNumber),
	)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByEmail fetches a single user by email.
func (r *UserSQLServer) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT id, email, password_hash, full_name, phone_number, created_at
		FROM users
		WHERE email = @p1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, q, email))
}

// FindByID fetches a single user by id.
func (r *UserSQLServer) FindByID(ctx context.Context, id int) (*model.User, error) {
	const q = `
		SELECT id, email, password_hash, full_name, phone_number, created_at
		FROM users
		WHERE id = @p1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserSQLServer) scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	var phone sql.NullString
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&phone,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.PhoneNumber = phone.String
	return &u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i != 0}
}
