package event

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/shopspring/decimal"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

type header struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func newHeader(idempotencyKey string) header {
	return header{
		ID:             watermill.NewUUID(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type BookingCreated struct {
	Header       header          `json:"header"`
	BookingID    string          `json:"booking_id"`
	UserID       string          `json:"user_id"`
	EventID      string          `json:"event_id"`
	TicketTypeID string          `json:"ticket_type_id"`
	Code         string          `json:"code"`
	Price        decimal.Decimal `json:"price"`
}

func NewBookingCreated(booking entity.Booking, price decimal.Decimal) BookingCreated {
	return BookingCreated{
		Header:       newHeader("booking-created-" + booking.BookingID),
		BookingID:    booking.BookingID,
		UserID:       booking.UserID,
		EventID:      booking.EventID,
		TicketTypeID: booking.TicketTypeID,
		Code:         booking.Code,
		Price:        price,
	}
}

type BookingCancelled struct {
	Header           header          `json:"header"`
	BookingID        string          `json:"booking_id"`
	UserID           string          `json:"user_id"`
	EventID          string          `json:"event_id"`
	TicketTypeID     string          `json:"ticket_type_id"`
	RefundAmount     decimal.Decimal `json:"refund_amount"`
	RefundPercentage int             `json:"refund_percentage"`
}

func NewBookingCancelled(booking entity.Booking, cancellation entity.Cancellation) BookingCancelled {
	return BookingCancelled{
		Header:           newHeader("booking-cancelled-" + booking.BookingID),
		BookingID:        booking.BookingID,
		UserID:           booking.UserID,
		EventID:          booking.EventID,
		TicketTypeID:     booking.TicketTypeID,
		RefundAmount:     cancellation.RefundAmount,
		RefundPercentage: cancellation.RefundPercentage,
	}
}

type TicketCheckedIn struct {
	Header      header    `json:"header"`
	BookingID   string    `json:"booking_id"`
	EventID     string    `json:"event_id"`
	AttendeeID  string    `json:"attendee_id"`
	OrganizerID string    `json:"organizer_id"`
	UsedAt      time.Time `json:"used_at"`
}

func NewTicketCheckedIn(summary entity.CheckInSummary, organizerID string) TicketCheckedIn {
	return TicketCheckedIn{
		Header:      newHeader("ticket-checked-in-" + summary.BookingID),
		BookingID:   summary.BookingID,
		EventID:     summary.EventID,
		AttendeeID:  summary.AttendeeID,
		OrganizerID: organizerID,
		UsedAt:      summary.UsedAt,
	}
}
