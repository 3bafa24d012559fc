package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='users' AND xtype='U')
CREATE TABLE users (
  id            INT IDENTITY(1,1) PRIMARY KEY,
  email         NVARCHAR(255) UNIQUE NOT NULL,
  password_hash NVARCHAR(255) NOT NULL,
  full_name     NVARCHAR(255) NOT NULL,
  phone_number  NVARCHAR(20),
  created_at    DATETIME2 DEFAULT GETDATE()
);`,
	},
	{
		Name: "create_table_pets",
		SQL: `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='pets' AND xtype='U')
CREATE TABLE pets (
  id         INT IDENTITY(1,1) PRIMARY KEY,
  user_id    INT FOREIGN KEY REFERENCES users(id),
  name       NVARCHAR(255) NOT NULL,
  type       NVARCHAR(100) NOT NULL,
  breed      NVARCHAR(255),
  age        INT,
  photo_path NVARCHAR(512),
  created_at DATETIME2 DEFAULT GETDATE()
);`,
	},
	{
		Name: "create_table_bookings",
		SQL: `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='bookings' AND xtype='U')
CREATE TABLE bookings (
  id           INT IDENTITY(1,1) PRIMARY KEY,
  user_id      INT FOREIGN KEY REFERENCES users(id),
  pet_id       INT FOREIGN KEY REFERENCES pets(id),
  service_type NVARCHAR(100) NOT NULL,
  vendor_id    NVARCHAR(100) NOT NULL,
  booking_date DATE NOT NULL,
  booking_time NVARCHAR(50) NOT NULL,
  status       NVARCHAR(50) DEFAULT 'pending',
  created_at   DATETIME2 DEFAULT GETDATE()
);`,
	},
	{
		Name: "create_table_vendors",
		SQL: `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='Vendors' AND xtype='U')
CREATE TABLE Vendors (
  id       INT IDENTITY(1,1) PRIMARY KEY,
  name     NVARCHAR(255) NOT NULL,
  rating   DECIMAL(3,1) NOT NULL DEFAULT 0,
  price    NVARCHAR(50),
  services NVARCHAR(MAX)
);`,
	},
	{
		Name: "create_table_vendor_availability",
		SQL: `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='VendorAvailability' AND xtype='U')
CREATE TABLE VendorAvailability (
  vendor_id       INT NOT NULL,
  date            DATE NOT NULL,
  available_slots NVARCHAR(MAX),
  CONSTRAINT pk_vendor_availability PRIMARY KEY (vendor_id, date)
);`,
	},
	{
		Name: "create_index_pets_user_id",
		SQL: `IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name='idx_pets_user_id')
CREATE INDEX idx_pets_user_id ON pets (user_id);`,
	},
	{
		Name: "create_index_bookings_user_id",
		SQL: `IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name='idx_bookings_user_id')
CREATE INDEX idx_bookings_user_id ON bookings (user_id);`,
	},
	{
		Name: "create_index_bookings_status",
		SQL: `IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name='idx_bookings_status')
CREATE INDEX idx_bookings_status ON bookings (status);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists int
	query := "SELECT CASE WHEN OBJECT_ID('dbo.users', 'U') IS NOT NULL THEN 1 ELSE 0 END"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists == 1 {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
