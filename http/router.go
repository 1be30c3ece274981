package http

import (
	"context"
	"net/http"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

var ErrServerClosed = http.ErrServerClosed

type BookingService interface {
	Create(ctx context.Context, req entity.BookingRequest) (entity.BookingCreated, error)
	Cancel(ctx context.Context, bookingID, userID string) (entity.Cancellation, error)
	CheckIn(ctx context.Context, code, organizerID string) (entity.CheckInSummary, error)
	ListByUser(ctx context.Context, userID string) ([]entity.BookingSummary, error)
}

type EventRepo interface {
	Add(ctx context.Context, event entity.Event) (entity.Event, error)
	GetWithTicketTypes(ctx context.Context, eventID string) (entity.EventWithTicketTypes, error)
	UpdateStatus(ctx context.Context, eventID, organizerID string, status entity.EventStatus) (entity.Event, error)
}

type TicketTypeRepo interface {
	Add(ctx context.Context, organizerID string, ticketType entity.TicketType) (entity.TicketType, error)
}

type handler struct {
	bookings    BookingService
	events      EventRepo
	ticketTypes TicketTypeRepo
}

func NewRouter(bookings BookingService, events EventRepo, ticketTypes TicketTypeRepo) *echo.Echo {
	server := commonHTTP.NewEcho()
	server.Use(otelecho.Middleware("tickets"))

	server.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := handler{
		bookings:    bookings,
		events:      events,
		ticketTypes: ticketTypes,
	}

	server.POST("/bookings", handler.CreateBooking)
	server.GET("/bookings", handler.ListBookings)
	server.POST("/bookings/:booking_id/cancel", handler.CancelBooking)
	server.POST("/check-in", handler.CheckIn)

	server.POST("/events", handler.CreateEvent)
	server.GET("/events/:event_id", handler.GetEvent)
	server.PUT("/events/:event_id/status", handler.UpdateEventStatus)
	server.POST("/events/:event_id/ticket-types", handler.CreateTicketType)

	return server
}
