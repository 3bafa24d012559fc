package sqlserver

import (
	"context"
	"database/sql"
	"time"

	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
)

// BookingSQLServer is a SQL Server implementation of repository.BookingRepository.
type BookingSQLServer struct {
	db *sql.DB
}

// NewBookingSQLServer creates a new BookingSQLServer repository.
func NewBookingSQLServer(db *sql.DB) *BookingSQLServer {
	return &BookingSQLServer{db: db}
}

var _ repository.BookingRepository = (*BookingSQLServer)(nil)

// Create inserts a new booking row and returns the stored record.
func (r *BookingSQLServer) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	const q = `
		INSERT INTO bookings (user_id, pet_id, service_type, vendor_id, booking_date, booking_time, status)
		OUTPUT INSERTED.id, INSERTED.status, INSERTED.created_at
		VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7)
	`
	out := *b
	row := r.db.QueryRowContext(ctx, q,
		b.UserID,
		b.PetID,
		b.ServiceType,
		b.VendorID,
		b.BookingDate,
		b.BookingTime,
		b.Status,
	)
	if err := row.Scan(&out.ID, &out.Status, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns bookings using OFFSET/FETCH pagination and a total count.
func (r *BookingSQLServer) ListByUser(ctx context.Context, userID int, pq repository.PageQuery) (*repository.PageResult[model.Booking], error) {
	// Count total rows
	const qCount = `SELECT COUNT(*) FROM bookings WHERE user_id = @p1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, userID).Scan(&total); err != nil {
		return nil, err
	}

	// Fetch page
	const qList = `
		SELECT id, user_id, pet_id, service_type, vendor_id, booking_date, booking_time, status, created_at
		FROM bookings
		WHERE user_id = @p1
		ORDER BY created_at DESC, id DESC
		OFFSET @p2 ROWS FETCH NEXT @p3 ROWS ONLY
	`
	rows, err := r.db.QueryContext(ctx, qList, userID, pq.Offset, pq.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var date time.Time
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.PetID,
			&b.ServiceType,
			&b.VendorID,
			&date,
			&b.BookingTime,
			&b.Status,
			&b.CreatedAt,
		); err != nil {
			return nil, err
		}
		b.BookingDate = date.Format("2006-01-02")
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Booking]{
		Items: items,
		Total: total,
	}, nil
}

// UpdateStatus sets the booking status; sql.ErrNoRows when the id is unknown.
func (r *BookingSQLServer) UpdateStatus(ctx context.Context, id int, status string) error {
	const q = `UPDATE bookings SET status = @p1 WHERE id = @p2`
	res, err := r.db.ExecContext(ctx, q, status, id)
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
