package sqlserver

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tidwall/gjson"

	"pawfectfind/internal/model"
	"pawfectfind/internal/repository"
)

// VendorSQLServer is a SQL Server implementation of repository.VendorRepository.
type VendorSQLServer struct {
	db *sql.DB
}

// NewVendorSQLServer creates a new VendorSQLServer repository.
func NewVendorSQLServer(db *sql.DB) *VendorSQLServer {
	return &VendorSQLServer{db: db}
}

var _ repository.VendorRepository = (*VendorSQLServer)(nil)

// List returns all vendors ordered by rating descending. The services text
// column holds a JSON array; malformed content degrades to an empty list.
func (r *VendorSQLServer) List(ctx context.Context) ([]model.Vendor, error) {
	const q = `SELECT id, name, rating, price, services FROM Vendors ORDER BY rating DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]model.Vendor, 0)
	for rows.Next() {
		var v model.Vendor
		var price, services sql.NullString
		if err := rows.Scan(&v.ID, &v.Name, &v.Rating, &price, &services); err != nil {
			return nil, err
		}
		v.Price = price.String
		v.Services = parseJSONStringList(services.String)
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vendors, nil
}

// AvailabilityForDate returns the open slots of a vendor on a date.
// A missing row is not an error; it means no slots were published.
func (r *VendorSQLServer) AvailabilityForDate(ctx context.Context, vendorID int, date string) ([]string, error) {
	const q = `
		SELECT available_slots
		FROM VendorAvailability
		WHERE vendor_id = @p1 AND date = @p2
	`
	var slots sql.NullString
	err := r.db.QueryRowContext(ctx, q, vendorID, date).Scan(&slots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, err
	}
	return parseJSONStringList(slots.String), nil
}

// parseJSONStringList tolerantly decodes a JSON array of strings stored as
// column text. Anything that is not a valid JSON array yields an empty list.
func parseJSONStringList(raw string) []string {
	out := make([]string, 0)
	if raw == "" || !gjson.Valid(raw) {
		return out
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return out
	}
	for _, item := range parsed.Array() {
		out = append(out, item.String())
	}
	return out
}
