package entity

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an organizer may move an event from s to next.
// COMPLETED and CANCELLED are terminal.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	switch s {
	case EventStatusDraft:
		return next == EventStatusPublished || next == EventStatusCancelled
	case EventStatusPublished:
		return next == EventStatusCompleted || next == EventStatusCancelled
	}
	return false
}

// OnSale reports whether tickets for the event can be booked.
func (s EventStatus) OnSale() bool {
	return s == EventStatusPublished
}

// Finished reports whether the event no longer accepts changes to its ticket types.
func (s EventStatus) Finished() bool {
	return s == EventStatusCompleted || s == EventStatusCancelled
}

type Event struct {
	EventID     string      `json:"event_id" db:"event_id"`
	OrganizerID string      `json:"organizer_id" db:"organizer_id"`
	Title       string      `json:"title" db:"title"`
	Venue       string      `json:"venue" db:"venue"`
	StartTime   time.Time   `json:"start_time" db:"start_time"`
	EndTime     time.Time   `json:"end_time" db:"end_time"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

type EventWithTicketTypes struct {
	Event
	TicketTypes []TicketType `json:"ticket_types"`
}
