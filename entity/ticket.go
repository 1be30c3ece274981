package entity

import "github.com/shopspring/decimal"

// TicketType is a priced allocation of tickets for one event. Quantity is
// the remaining stock and never exceeds Capacity.
type TicketType struct {
	TicketTypeID string          `json:"ticket_type_id" db:"ticket_type_id"`
	EventID      string          `json:"event_id" db:"event_id"`
	Name         string          `json:"name" db:"name"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Quantity     int             `json:"quantity" db:"quantity"`
	Capacity     int             `json:"capacity" db:"capacity"`
}
