package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

type TicketTypeRepo struct {
	db *DB
}

func NewTicketTypeRepo(db *DB) TicketTypeRepo {
	return TicketTypeRepo{
		db: db,
	}
}

// Add creates a ticket type on an event owned by organizerID. The whole
// capacity starts in stock.
func (r TicketTypeRepo) Add(ctx context.Context, organizerID string, ticketType entity.TicketType) (entity.TicketType, error) {
	ticketType.Quantity = ticketType.Capacity

	err := r.db.updateInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		event, err := NewEventRepo(r.db).lockEvent(ctx, tx, ticketType.EventID)
		if err != nil {
			return err
		}

		if event.OrganizerID != organizerID {
			return entity.ErrUnauthorized
		}
		if event.Status.Finished() {
			return entity.ErrEventFinished
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`INSERT INTO ticket_types
			(ticket_type_id, event_id, name, price, quantity, capacity)
			VALUES (?, ?, ?, ?, ?, ?);`),
			ticketType.TicketTypeID, ticketType.EventID, ticketType.Name,
			ticketType.Price, ticketType.Quantity, ticketType.Capacity)
		if err != nil {
			return fmt.Errorf("inserting ticket type: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.TicketType{}, err
	}

	return ticketType, nil
}

func (r TicketTypeRepo) Get(ctx context.Context, ticketTypeID string) (entity.TicketType, error) {
	var ticketType entity.TicketType
	err := r.db.Conn.GetContext(ctx, &ticketType, r.db.Conn.Rebind(`SELECT
		ticket_type_id, event_id, name, price, quantity, capacity
		FROM ticket_types WHERE ticket_type_id = ?`), ticketTypeID)
	if err != nil {
		return entity.TicketType{}, notFound(err, "ticket type", ticketTypeID)
	}

	return ticketType, nil
}

func (r TicketTypeRepo) ListByEvent(ctx context.Context, eventID string) ([]entity.TicketType, error) {
	ticketTypes := []entity.TicketType{}
	err := r.db.Conn.SelectContext(ctx, &ticketTypes, r.db.Conn.Rebind(`SELECT
		ticket_type_id, event_id, name, price, quantity, capacity
		FROM ticket_types WHERE event_id = ? ORDER BY name`), eventID)
	if err != nil {
		return nil, fmt.Errorf("listing ticket types of event %s: %w", eventID, err)
	}

	return ticketTypes, nil
}

// reserveTicket takes one ticket out of stock. The guard is evaluated by the
// UPDATE itself, so two transactions can never both take the last ticket.
func reserveTicket(ctx context.Context, tx *sqlx.Tx, ticketTypeID string) error {
	res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE ticket_types
		SET quantity = quantity - 1
		WHERE ticket_type_id = ? AND quantity > 0`), ticketTypeID)
	if err != nil {
		return fmt.Errorf("reserving ticket: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return entity.ErrOutOfStock
	}

	return nil
}

// releaseTicket puts one ticket back in stock, never above the capacity.
func releaseTicket(ctx context.Context, tx *sqlx.Tx, ticketTypeID string) error {
	res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE ticket_types
		SET quantity = CASE WHEN quantity < capacity THEN quantity + 1 ELSE capacity END
		WHERE ticket_type_id = ?`), ticketTypeID)
	if err != nil {
		return fmt.Errorf("releasing ticket: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected exec result: %d rows affected", n)
	}

	return nil
}
