package http

import (
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
	"github.com/Nafiz37/Event-Ekhanei-sub000/observability"
)

// headerKeyUserID carries the id of the authenticated caller, set by the
// gateway in front of this service.
const headerKeyUserID = "X-User-ID"

// callerField names the caller's id in validation errors on every route.
const callerField = "user_id"

type createBookingRequest struct {
	EventID      string `json:"event_id"`
	TicketTypeID string `json:"ticket_type_id"`
}

type checkInRequest struct {
	Code string `json:"code"`
}

func userID(c echo.Context) string {
	return c.Request().Header.Get(headerKeyUserID)
}

func (h handler) CreateBooking(c echo.Context) error {
	var request createBookingRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(err)
	}

	ctx := c.Request().Context()
	created, err := h.bookings.Create(ctx, entity.BookingRequest{
		UserID:       userID(c),
		EventID:      request.EventID,
		TicketTypeID: request.TicketTypeID,
	})
	observability.TrackBooking(err)
	if err != nil {
		return httpError(err, "creating booking")
	}

	log.FromContext(ctx).WithField("booking_id", created.BookingID).Info("Booking created")

	return c.JSON(http.StatusCreated, created)
}

func (h handler) CancelBooking(c echo.Context) error {
	ctx := c.Request().Context()

	cancellation, err := h.bookings.Cancel(ctx, c.Param("booking_id"), userID(c))
	observability.TrackCancellation(cancellation, err)
	if err != nil {
		return httpError(err, "cancelling booking")
	}

	log.FromContext(ctx).WithField("booking_id", cancellation.BookingID).
		WithField("refund_percentage", cancellation.RefundPercentage).
		Info("Booking cancelled")

	return c.JSON(http.StatusOK, cancellation)
}

func (h handler) CheckIn(c echo.Context) error {
	var request checkInRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(err)
	}

	ctx := c.Request().Context()
	summary, err := h.bookings.CheckIn(ctx, request.Code, userID(c))
	observability.TrackCheckIn(err)
	if err != nil {
		return httpError(err, "checking in")
	}

	log.FromContext(ctx).WithField("booking_id", summary.BookingID).Info("Ticket checked in")

	return c.JSON(http.StatusOK, summary)
}

func (h handler) ListBookings(c echo.Context) error {
	bookings, err := h.bookings.ListByUser(c.Request().Context(), userID(c))
	if err != nil {
		return httpError(err, "listing bookings")
	}

	return c.JSON(http.StatusOK, bookings)
}
