package db_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

func TestTicketTypeRepo_Add(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event, ticketType := f.publishedTicketType(t, f.now.Add(10*day), "24.75", 100)

	assert.Equal(t, 100, ticketType.Quantity)

	got, err := f.ticketTypes.Get(ctx, ticketType.TicketTypeID)
	require.NoError(t, err)
	assert.Equal(t, "24.75", got.Price.String())
	assert.Equal(t, 100, got.Quantity)
	assert.Equal(t, 100, got.Capacity)

	vip := entity.TicketType{
		TicketTypeID: uuid.NewString(),
		EventID:      event.EventID,
		Name:         "VIP",
		Price:        decimal.NewFromInt(150),
		Capacity:     10,
	}

	_, err = f.ticketTypes.Add(ctx, uuid.NewString(), vip)
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	_, err = f.ticketTypes.Add(ctx, event.OrganizerID, vip)
	require.NoError(t, err)

	ticketTypes, err := f.ticketTypes.ListByEvent(ctx, event.EventID)
	require.NoError(t, err)
	require.Len(t, ticketTypes, 2)
	assert.Equal(t, "General admission", ticketTypes[0].Name)
	assert.Equal(t, "VIP", ticketTypes[1].Name)
}

func TestTicketTypeRepo_Add_finished_event(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	event, _ := f.publishedTicketType(t, f.now.Add(10*day), "10", 1)

	_, err := f.events.UpdateStatus(ctx, event.EventID, event.OrganizerID, entity.EventStatusCancelled)
	require.NoError(t, err)

	_, err = f.ticketTypes.Add(ctx, event.OrganizerID, entity.TicketType{
		TicketTypeID: uuid.NewString(),
		EventID:      event.EventID,
		Name:         "Late entry",
		Price:        decimal.NewFromInt(5),
		Capacity:     10,
	})
	require.ErrorIs(t, err, entity.ErrEventFinished)
}

func TestTicketTypeRepo_release_is_capped_at_capacity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, ticketType := f.publishedTicketType(t, f.now.Add(10*day), "10", 1)
	userID := uuid.NewString()

	created := f.book(t, userID, ticketType)
	assert.Equal(t, 0, f.quantity(t, ticketType.TicketTypeID))

	_, err := f.db.Conn.ExecContext(ctx, f.db.Conn.Rebind(`UPDATE ticket_types SET quantity = capacity WHERE ticket_type_id = ?`), ticketType.TicketTypeID)
	require.NoError(t, err)

	_, err = f.bookings.Cancel(ctx, created.BookingID, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.quantity(t, ticketType.TicketTypeID))
}
