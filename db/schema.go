package db

import (
	"context"
	"fmt"
)

func InitialiseDB(ctx context.Context, db *DB) error {
	if err := CreateEventsTable(ctx, db); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}

	if err := CreateTicketTypesTable(ctx, db); err != nil {
		return fmt.Errorf("creating ticket types table: %w", err)
	}

	if err := CreateBookingsTable(ctx, db); err != nil {
		return fmt.Errorf("creating bookings table: %w", err)
	}

	return nil
}

// columnTypes returns the id, money and timestamp column types for the dialect.
func (db *DB) columnTypes() (string, string, string) {
	if db.dialect == dialectSQLite {
		return "TEXT", "NUMERIC", "DATETIME"
	}
	return "UUID", "NUMERIC(10, 2)", "TIMESTAMP WITH TIME ZONE"
}

func CreateEventsTable(ctx context.Context, db *DB) error {
	id, _, ts := db.columnTypes()
	_, err := db.Conn.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS events (
		event_id %[1]s PRIMARY KEY,
		organizer_id %[1]s NOT NULL,
		title VARCHAR(255) NOT NULL,
		venue VARCHAR(255) NOT NULL,
		start_time %[2]s NOT NULL,
		end_time %[2]s NOT NULL,
		status VARCHAR(16) NOT NULL,
		created_at %[2]s NOT NULL
	);`, id, ts))
	return err
}

func CreateTicketTypesTable(ctx context.Context, db *DB) error {
	id, money, _ := db.columnTypes()
	_, err := db.Conn.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS ticket_types (
		ticket_type_id %[1]s PRIMARY KEY,
		event_id %[1]s NOT NULL REFERENCES events (event_id),
		name VARCHAR(255) NOT NULL,
		price %[2]s NOT NULL CHECK (price >= 0),
		quantity INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		CHECK (quantity >= 0 AND quantity <= capacity)
	);`, id, money))
	return err
}

func CreateBookingsTable(ctx context.Context, db *DB) error {
	id, money, ts := db.columnTypes()
	_, err := db.Conn.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS bookings (
		booking_id %[1]s PRIMARY KEY,
		user_id %[1]s NOT NULL,
		event_id %[1]s NOT NULL REFERENCES events (event_id),
		ticket_type_id %[1]s NOT NULL REFERENCES ticket_types (ticket_type_id),
		code VARCHAR(64) NOT NULL UNIQUE,
		status VARCHAR(16) NOT NULL,
		refund_amount %[2]s NOT NULL DEFAULT 0,
		purchased_at %[3]s NOT NULL,
		cancelled_at %[3]s,
		used_at %[3]s
	);`, id, money, ts))
	if err != nil {
		return err
	}

	_, err = db.Conn.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id, purchased_at);`)
	return err
}
