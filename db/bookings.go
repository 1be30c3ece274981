package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lithammer/shortuuid/v3"
	"github.com/shopspring/decimal"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
	"github.com/Nafiz37/Event-Ekhanei-sub000/event"
)

// maxCodeAttempts bounds how many times a booking is retried when its
// generated code or id collides with an existing one.
const maxCodeAttempts = 3

// Outbox stores an event in the same transaction as the state change it
// describes. It is forwarded to subscribers after commit.
type Outbox interface {
	PublishInTx(ctx context.Context, tx *sql.Tx, event any) error
}

type BookingRepo struct {
	db      *DB
	outbox  Outbox
	now     func() time.Time
	newCode func() string
}

func NewBookingRepo(db *DB, outbox Outbox) BookingRepo {
	return BookingRepo{
		db:     db,
		outbox:  outbox,
		now:     time.Now,
		newCode: shortuuid.New,
	}
}

// WithClock returns a copy of the repo that reads the current time from now.
func (r BookingRepo) WithClock(now func() time.Time) BookingRepo {
	r.now = now
	return r
}

// WithCodeGenerator returns a copy of the repo that draws booking codes from newCode.
func (r BookingRepo) WithCodeGenerator(newCode func() string) BookingRepo {
	r.newCode = newCode
	return r
}

const bookingColumns = `booking_id, user_id, event_id, ticket_type_id, code, status,
	refund_amount, purchased_at, cancelled_at, used_at`

// Create books one ticket of the requested type and takes it out of stock.
func (r BookingRepo) Create(ctx context.Context, req entity.BookingRequest) (entity.BookingCreated, error) {
	var v entity.FieldValidator
	v.RequireID("user_id", &req.UserID)
	v.RequireID("event_id", &req.EventID)
	v.RequireID("ticket_type_id", &req.TicketTypeID)
	if err := v.Err(); err != nil {
		return entity.BookingCreated{}, err
	}

	for attempt := 1; ; attempt++ {
		created, err := r.create(ctx, req)
		if err != nil && isErrorUniqueViolation(err) && attempt < maxCodeAttempts {
			continue
		}
		return created, err
	}
}

func (r BookingRepo) create(ctx context.Context, req entity.BookingRequest) (entity.BookingCreated, error) {
	booking := entity.Booking{
		BookingID:    uuid.NewString(),
		UserID:       req.UserID,
		EventID:      req.EventID,
		TicketTypeID: req.TicketTypeID,
		Code:         r.newCode(),
		Status:       entity.BookingStatusValid,
		RefundAmount: decimal.Zero,
		PurchasedAt:  r.now().UTC(),
	}

	err := r.db.updateInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var ticketType struct {
			EventID     string             `db:"event_id"`
			Price       decimal.Decimal    `db:"price"`
			EventStatus entity.EventStatus `db:"status"`
		}
		err := tx.GetContext(ctx, &ticketType, tx.Rebind(`SELECT tt.event_id, tt.price, e.status
			FROM ticket_types tt JOIN events e ON e.event_id = tt.event_id
			WHERE tt.ticket_type_id = ?`+r.db.forShareOf("e")), req.TicketTypeID)
		if err != nil {
			return notFound(err, "ticket type", req.TicketTypeID)
		}

		if ticketType.EventID != req.EventID {
			return fmt.Errorf("ticket type %s of event %s: %w", req.TicketTypeID, req.EventID, entity.ErrNotFound)
		}
		if !ticketType.EventStatus.OnSale() {
			return entity.ErrEventNotOnSale
		}

		if err := reserveTicket(ctx, tx, req.TicketTypeID); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`INSERT INTO bookings
			(booking_id, user_id, event_id, ticket_type_id, code, status, refund_amount, purchased_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?);`),
			booking.BookingID, booking.UserID, booking.EventID, booking.TicketTypeID,
			booking.Code, booking.Status, booking.RefundAmount, booking.PurchasedAt)
		if err != nil {
			return fmt.Errorf("inserting booking: %w", err)
		}

		if err := r.outbox.PublishInTx(ctx, tx.Tx, event.NewBookingCreated(booking, ticketType.Price)); err != nil {
			return fmt.Errorf("publishing event in transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.BookingCreated{}, err
	}

	return entity.BookingCreated{
		BookingID: booking.BookingID,
		Code:      booking.Code,
	}, nil
}

// Cancel cancels a booking on behalf of its owner, refunds part of the price
// depending on how close the event is and puts the ticket back in stock.
func (r BookingRepo) Cancel(ctx context.Context, bookingID, userID string) (entity.Cancellation, error) {
	var v entity.FieldValidator
	v.RequireID("booking_id", &bookingID)
	v.RequireID("user_id", &userID)
	if err := v.Err(); err != nil {
		return entity.Cancellation{}, err
	}

	var cancellation entity.Cancellation
	err := r.db.updateInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, err := r.lockBooking(ctx, tx, "booking_id", bookingID)
		if err != nil {
			return err
		}

		if booking.UserID != userID {
			return entity.ErrUnauthorized
		}

		status, err := booking.Status.Cancel()
		if err != nil {
			return err
		}

		var policy struct {
			StartTime time.Time       `db:"start_time"`
			Price     decimal.Decimal `db:"price"`
		}
		err = tx.GetContext(ctx, &policy, tx.Rebind(`SELECT e.start_time, tt.price
			FROM ticket_types tt JOIN events e ON e.event_id = tt.event_id
			WHERE tt.ticket_type_id = ?`), booking.TicketTypeID)
		if err != nil {
			return notFound(err, "ticket type", booking.TicketTypeID)
		}

		now := r.now().UTC()
		percentage, err := entity.RefundPercentage(policy.StartTime, now)
		if err != nil {
			return err
		}

		cancellation = entity.Cancellation{
			BookingID:        booking.BookingID,
			RefundAmount:     entity.RefundAmount(policy.Price, percentage),
			RefundPercentage: percentage,
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE bookings
			SET status = ?, refund_amount = ?, cancelled_at = ?
			WHERE booking_id = ?`),
			status, cancellation.RefundAmount, now, booking.BookingID)
		if err != nil {
			return fmt.Errorf("cancelling booking: %w", err)
		}

		if err := releaseTicket(ctx, tx, booking.TicketTypeID); err != nil {
			return err
		}

		if err := r.outbox.PublishInTx(ctx, tx.Tx, event.NewBookingCancelled(booking, cancellation)); err != nil {
			return fmt.Errorf("publishing event in transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.Cancellation{}, err
	}

	return cancellation, nil
}

// CheckIn marks the booking identified by code as used. Only the organizer
// of the booking's event may do that.
func (r BookingRepo) CheckIn(ctx context.Context, code, organizerID string) (entity.CheckInSummary, error) {
	var v entity.FieldValidator
	v.RequireString("code", &code)
	v.RequireID("user_id", &organizerID)
	if err := v.Err(); err != nil {
		return entity.CheckInSummary{}, err
	}

	var summary entity.CheckInSummary
	err := r.db.updateInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, err := r.lockBooking(ctx, tx, "code", code)
		if err != nil {
			return err
		}

		var details struct {
			OrganizerID    string `db:"organizer_id"`
			EventTitle     string `db:"title"`
			TicketTypeName string `db:"name"`
		}
		err = tx.GetContext(ctx, &details, tx.Rebind(`SELECT e.organizer_id, e.title, tt.name
			FROM ticket_types tt JOIN events e ON e.event_id = tt.event_id
			WHERE tt.ticket_type_id = ?`), booking.TicketTypeID)
		if err != nil {
			return notFound(err, "ticket type", booking.TicketTypeID)
		}

		if details.OrganizerID != organizerID {
			return entity.ErrUnauthorized
		}

		status, err := booking.Status.CheckIn()
		if err != nil {
			return err
		}

		usedAt := r.now().UTC()
		_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE bookings SET status = ?, used_at = ? WHERE booking_id = ?`),
			status, usedAt, booking.BookingID)
		if err != nil {
			return fmt.Errorf("checking in booking: %w", err)
		}

		summary = entity.CheckInSummary{
			BookingID:      booking.BookingID,
			Code:           booking.Code,
			Status:         status,
			AttendeeID:     booking.UserID,
			TicketTypeName: details.TicketTypeName,
			EventID:        booking.EventID,
			EventTitle:     details.EventTitle,
			UsedAt:         usedAt,
		}

		if err := r.outbox.PublishInTx(ctx, tx.Tx, event.NewTicketCheckedIn(summary, organizerID)); err != nil {
			return fmt.Errorf("publishing event in transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.CheckInSummary{}, err
	}

	return summary, nil
}

// ListByUser returns the user's bookings, most recent purchase first.
func (r BookingRepo) ListByUser(ctx context.Context, userID string) ([]entity.BookingSummary, error) {
	var v entity.FieldValidator
	v.RequireID("user_id", &userID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	bookings := []entity.BookingSummary{}
	err := r.db.Conn.SelectContext(ctx, &bookings, r.db.Conn.Rebind(`SELECT
			b.booking_id, b.code, b.status, b.refund_amount, b.purchased_at,
			e.event_id, e.title AS event_title, e.start_time AS event_start_time,
			tt.ticket_type_id, tt.name AS ticket_type_name, tt.price
		FROM bookings b
		JOIN events e ON e.event_id = b.event_id
		JOIN ticket_types tt ON tt.ticket_type_id = b.ticket_type_id
		WHERE b.user_id = ?
		ORDER BY b.purchased_at DESC, b.booking_id`), userID)
	if err != nil {
		return nil, fmt.Errorf("listing bookings of user %s: %w", userID, err)
	}

	return bookings, nil
}

func (r BookingRepo) Get(ctx context.Context, bookingID string) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.Conn.GetContext(ctx, &booking, r.db.Conn.Rebind(`SELECT `+bookingColumns+`
		FROM bookings WHERE booking_id = ?`), bookingID)
	if err != nil {
		return entity.Booking{}, notFound(err, "booking", bookingID)
	}

	return booking, nil
}

// lockBooking reads a booking by a unique column and holds its row lock until
// the transaction ends.
func (r BookingRepo) lockBooking(ctx context.Context, tx *sqlx.Tx, column, value string) (entity.Booking, error) {
	var booking entity.Booking
	err := tx.GetContext(ctx, &booking, tx.Rebind(`SELECT `+bookingColumns+`
		FROM bookings WHERE `+column+` = ?`+r.db.forUpdate()), value)
	if err != nil {
		return entity.Booking{}, notFound(err, "booking", value)
	}

	return booking, nil
}
