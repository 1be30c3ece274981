package entity

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields            = errors.New("missing required fields")
	ErrNotFound                 = errors.New("not found")
	ErrOutOfStock               = errors.New("ticket type is out of stock")
	ErrEventNotOnSale           = errors.New("event is not on sale")
	ErrEventFinished            = errors.New("event is completed or cancelled")
	ErrCancellationWindowClosed = errors.New("cannot cancel within 48 hours of the event start")
	ErrAlreadyCancelled         = errors.New("booking is already cancelled")
	ErrAlreadyUsed              = errors.New("ticket has already been used")
	ErrTicketCancelled          = errors.New("ticket has been cancelled")
	ErrInvalidStatus            = errors.New("ticket has an invalid status")
	ErrInvalidTransition        = errors.New("status change is not allowed")
	ErrUnauthorized             = errors.New("not allowed to act on this resource")
)

// MissingFieldsError lists the request fields that were absent or malformed.
type MissingFieldsError struct {
	Fields []string
}

func (e MissingFieldsError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrMissingFields, "missing_fields"},
	{ErrNotFound, "not_found"},
	{ErrOutOfStock, "out_of_stock"},
	{ErrEventNotOnSale, "event_not_on_sale"},
	{ErrEventFinished, "event_finished"},
	{ErrCancellationWindowClosed, "cancellation_window_closed"},
	{ErrAlreadyCancelled, "already_cancelled"},
	{ErrAlreadyUsed, "already_used"},
	{ErrTicketCancelled, "ticket_cancelled"},
	{ErrInvalidStatus, "invalid_status"},
	{ErrInvalidTransition, "invalid_transition"},
	{ErrUnauthorized, "unauthorized"},
}

// ErrorKind names the business rule behind err, "ok" for nil and
// "transaction_failure" for anything that is not a business rule.
func ErrorKind(err error) string {
	if err == nil {
		return "ok"
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "transaction_failure"
}
