package http_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
	ticketsHttp "github.com/Nafiz37/Event-Ekhanei-sub000/http"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Create(ctx context.Context, req entity.BookingRequest) (entity.BookingCreated, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entity.BookingCreated), args.Error(1)
}

func (m *mockBookingService) Cancel(ctx context.Context, bookingID, userID string) (entity.Cancellation, error) {
	args := m.Called(ctx, bookingID, userID)
	return args.Get(0).(entity.Cancellation), args.Error(1)
}

func (m *mockBookingService) CheckIn(ctx context.Context, code, organizerID string) (entity.CheckInSummary, error) {
	args := m.Called(ctx, code, organizerID)
	return args.Get(0).(entity.CheckInSummary), args.Error(1)
}

func (m *mockBookingService) ListByUser(ctx context.Context, userID string) ([]entity.BookingSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entity.BookingSummary), args.Error(1)
}

func TestErrorResponses(t *testing.T) {
	testCases := []struct {
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			err:         entity.MissingFieldsError{Fields: []string{"ticket_type_id"}},
			wantCode:    http.StatusBadRequest,
			wantMessage: "missing or invalid fields: ticket_type_id",
		},
		{
			err:         fmt.Errorf("booking x: %w", entity.ErrNotFound),
			wantCode:    http.StatusNotFound,
			wantMessage: entity.ErrNotFound.Error(),
		},
		{
			err:         entity.ErrCancellationWindowClosed,
			wantCode:    http.StatusForbidden,
			wantMessage: "cannot cancel within 48 hours of the event start",
		},
		{
			err:         entity.ErrAlreadyCancelled,
			wantCode:    http.StatusConflict,
			wantMessage: entity.ErrAlreadyCancelled.Error(),
		},
		{
			err:         errors.Join(errors.New("committing transaction: driver: bad connection"), errors.New("rollback failed")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal error",
		},
	}

	for _, tc := range testCases {
		t.Run(entity.ErrorKind(tc.err), func(t *testing.T) {
			bookings := &mockBookingService{}
			bookingID, userID := uuid.NewString(), uuid.NewString()
			bookings.On("Cancel", mock.Anything, bookingID, userID).Return(entity.Cancellation{}, tc.err)

			server := ticketsHttp.NewRouter(bookings, nil, nil)
			rec := doRequest(t, server, http.MethodPost, "/bookings/"+bookingID+"/cancel", userID, nil)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantMessage)
			assert.NotContains(t, rec.Body.String(), "bad connection")
			bookings.AssertExpectations(t)
		})
	}
}
