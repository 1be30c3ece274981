package command

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/shopspring/decimal"
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

// RefundTicket asks the payment provider to return Amount for a cancelled booking.
type RefundTicket struct {
	Header    header          `json:"header"`
	BookingID string          `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewRefundTicket(bookingID string, amount decimal.Decimal, idempotencyKey string) RefundTicket {
	return RefundTicket{
		Header:    newHeader(idempotencyKey),
		BookingID: bookingID,
		Amount:    amount,
	}
}
