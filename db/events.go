package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

type EventRepo struct {
	db  *DB
	now func() time.Time
}

func NewEventRepo(db *DB) EventRepo {
	return EventRepo{
		db:  db,
		now: time.Now,
	}
}

// Add stores a new event in DRAFT status and returns it as stored.
func (r EventRepo) Add(ctx context.Context, event entity.Event) (entity.Event, error) {
	event.Status = entity.EventStatusDraft
	event.CreatedAt = r.now().UTC()
	event.StartTime = event.StartTime.UTC()
	event.EndTime = event.EndTime.UTC()

	_, err := r.db.Conn.ExecContext(ctx, r.db.Conn.Rebind(`INSERT INTO events
		(event_id, organizer_id, title, venue, start_time, end_time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`),
		event.EventID, event.OrganizerID, event.Title, event.Venue,
		event.StartTime, event.EndTime, event.Status, event.CreatedAt)
	if err != nil {
		return entity.Event{}, fmt.Errorf("inserting event: %w", err)
	}

	return event, nil
}

func (r EventRepo) Get(ctx context.Context, eventID string) (entity.Event, error) {
	var event entity.Event
	err := r.db.Conn.GetContext(ctx, &event, r.db.Conn.Rebind(`SELECT
		event_id, organizer_id, title, venue, start_time, end_time, status, created_at
		FROM events WHERE event_id = ?`), eventID)
	if err != nil {
		return entity.Event{}, notFound(err, "event", eventID)
	}

	return event, nil
}

func (r EventRepo) GetWithTicketTypes(ctx context.Context, eventID string) (entity.EventWithTicketTypes, error) {
	event, err := r.Get(ctx, eventID)
	if err != nil {
		return entity.EventWithTicketTypes{}, err
	}

	ticketTypes, err := NewTicketTypeRepo(r.db).ListByEvent(ctx, eventID)
	if err != nil {
		return entity.EventWithTicketTypes{}, err
	}

	return entity.EventWithTicketTypes{
		Event:       event,
		TicketTypes: ticketTypes,
	}, nil
}

// UpdateStatus moves an event owned by organizerID to status.
func (r EventRepo) UpdateStatus(
	ctx context.Context,
	eventID string,
	organizerID string,
	status entity.EventStatus,
) (entity.Event, error) {
	var event entity.Event
	err := r.db.updateInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		event, err = r.lockEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.OrganizerID != organizerID {
			return entity.ErrUnauthorized
		}
		if !event.Status.CanTransitionTo(status) {
			return fmt.Errorf("%s to %s: %w", event.Status, status, entity.ErrInvalidTransition)
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE events SET status = ? WHERE event_id = ?`), status, eventID)
		if err != nil {
			return fmt.Errorf("updating event status: %w", err)
		}

		event.Status = status
		return nil
	})
	if err != nil {
		return entity.Event{}, err
	}

	return event, nil
}

func (r EventRepo) lockEvent(ctx context.Context, tx *sqlx.Tx, eventID string) (entity.Event, error) {
	var event entity.Event
	err := tx.GetContext(ctx, &event, tx.Rebind(`SELECT
		event_id, organizer_id, title, venue, start_time, end_time, status, created_at
		FROM events WHERE event_id = ?`+r.db.forUpdate()), eventID)
	if err != nil {
		return entity.Event{}, notFound(err, "event", eventID)
	}

	return event, nil
}
