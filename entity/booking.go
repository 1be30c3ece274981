package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusValid     BookingStatus = "VALID"
	BookingStatusUsed      BookingStatus = "USED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// CheckIn returns the status a booking moves to when its code is scanned at
// the entrance. Only VALID bookings can be checked in.
func (s BookingStatus) CheckIn() (BookingStatus, error) {
	switch s {
	case BookingStatusValid:
		return BookingStatusUsed, nil
	case BookingStatusUsed:
		return s, ErrAlreadyUsed
	case BookingStatusCancelled:
		return s, ErrTicketCancelled
	default:
		return s, ErrInvalidStatus
	}
}

// Cancel returns the status a booking moves to when its owner cancels it.
func (s BookingStatus) Cancel() (BookingStatus, error) {
	switch s {
	case BookingStatusValid:
		return BookingStatusCancelled, nil
	case BookingStatusCancelled:
		return s, ErrAlreadyCancelled
	case BookingStatusUsed:
		return s, ErrAlreadyUsed
	default:
		return s, ErrInvalidStatus
	}
}

type Booking struct {
	BookingID    string          `json:"booking_id" db:"booking_id"`
	UserID       string          `json:"user_id" db:"user_id"`
	EventID      string          `json:"event_id" db:"event_id"`
	TicketTypeID string          `json:"ticket_type_id" db:"ticket_type_id"`
	Code         string          `json:"code" db:"code"`
	Status       BookingStatus   `json:"status" db:"status"`
	RefundAmount decimal.Decimal `json:"refund_amount" db:"refund_amount"`
	PurchasedAt  time.Time       `json:"purchased_at" db:"purchased_at"`
	CancelledAt  *time.Time      `json:"cancelled_at,omitempty" db:"cancelled_at"`
	UsedAt       *time.Time      `json:"used_at,omitempty" db:"used_at"`
}

type BookingRequest struct {
	UserID       string `json:"user_id"`
	EventID      string `json:"event_id"`
	TicketTypeID string `json:"ticket_type_id"`
}

type BookingCreated struct {
	BookingID string `json:"booking_id"`
	Code      string `json:"code"`
}

type Cancellation struct {
	BookingID        string          `json:"booking_id"`
	RefundAmount     decimal.Decimal `json:"refund_amount"`
	RefundPercentage int             `json:"refund_percentage"`
}

// BookingSummary is a booking as shown in the attendee's ticket list.
type BookingSummary struct {
	BookingID      string          `json:"booking_id" db:"booking_id"`
	Code           string          `json:"code" db:"code"`
	Status         BookingStatus   `json:"status" db:"status"`
	RefundAmount   decimal.Decimal `json:"refund_amount" db:"refund_amount"`
	PurchasedAt    time.Time       `json:"purchased_at" db:"purchased_at"`
	EventID        string          `json:"event_id" db:"event_id"`
	EventTitle     string          `json:"event_title" db:"event_title"`
	EventStartTime time.Time       `json:"event_start_time" db:"event_start_time"`
	TicketTypeID   string          `json:"ticket_type_id" db:"ticket_type_id"`
	TicketTypeName string          `json:"ticket_type_name" db:"ticket_type_name"`
	Price          decimal.Decimal `json:"price" db:"price"`
}

// CheckInSummary is what the organizer sees after scanning a ticket.
type CheckInSummary struct {
	BookingID      string        `json:"booking_id"`
	Code           string        `json:"code"`
	Status         BookingStatus `json:"status"`
	AttendeeID     string        `json:"attendee_id"`
	TicketTypeName string        `json:"ticket_type_name"`
	EventID        string        `json:"event_id"`
	EventTitle     string        `json:"event_title"`
	UsedAt         time.Time     `json:"used_at"`
}
