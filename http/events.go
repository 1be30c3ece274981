package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

type createEventRequest struct {
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type updateEventStatusRequest struct {
	Status entity.EventStatus `json:"status"`
}

type createTicketTypeRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Capacity int             `json:"capacity"`
}

// maxPrice is the first price that no longer fits the price column.
var maxPrice = decimal.NewFromInt(100_000_000)

func (h handler) CreateEvent(c echo.Context) error {
	var request createEventRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(err)
	}

	organizerID := userID(c)

	var v entity.FieldValidator
	v.RequireID(callerField, &organizerID)
	v.RequireString("title", &request.Title)
	v.RequireString("venue", &request.Venue)
	v.Require("start_time", !request.StartTime.IsZero())
	v.Require("end_time", request.EndTime.After(request.StartTime))
	if err := v.Err(); err != nil {
		return httpError(err, "creating event")
	}

	event, err := h.events.Add(c.Request().Context(), entity.Event{
		EventID:     uuid.NewString(),
		OrganizerID: organizerID,
		Title:       request.Title,
		Venue:       request.Venue,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
	})
	if err != nil {
		return httpError(err, "creating event")
	}

	return c.JSON(http.StatusCreated, event)
}

func (h handler) GetEvent(c echo.Context) error {
	eventID := c.Param("event_id")

	var v entity.FieldValidator
	v.RequireID("event_id", &eventID)
	if err := v.Err(); err != nil {
		return httpError(err, "getting event")
	}

	event, err := h.events.GetWithTicketTypes(c.Request().Context(), eventID)
	if err != nil {
		return httpError(err, "getting event")
	}

	return c.JSON(http.StatusOK, event)
}

func (h handler) UpdateEventStatus(c echo.Context) error {
	var request updateEventStatusRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(err)
	}

	eventID := c.Param("event_id")
	organizerID := userID(c)

	var v entity.FieldValidator
	v.RequireID("event_id", &eventID)
	v.RequireID(callerField, &organizerID)
	v.Require("status", request.Status.Valid())
	if err := v.Err(); err != nil {
		return httpError(err, "updating event status")
	}

	event, err := h.events.UpdateStatus(c.Request().Context(), eventID, organizerID, request.Status)
	if err != nil {
		return httpError(err, "updating event status")
	}

	return c.JSON(http.StatusOK, event)
}

func (h handler) CreateTicketType(c echo.Context) error {
	var request createTicketTypeRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(err)
	}

	eventID := c.Param("event_id")
	organizerID := userID(c)

	var v entity.FieldValidator
	v.RequireID("event_id", &eventID)
	v.RequireID(callerField, &organizerID)
	v.RequireString("name", &request.Name)
	v.Require("price", !request.Price.IsNegative() && request.Price.Round(2).LessThan(maxPrice))
	v.Require("capacity", request.Capacity >= 1)
	if err := v.Err(); err != nil {
		return httpError(err, "creating ticket type")
	}

	ticketType, err := h.ticketTypes.Add(c.Request().Context(), organizerID, entity.TicketType{
		TicketTypeID: uuid.NewString(),
		EventID:      eventID,
		Name:         request.Name,
		Price:        request.Price.Round(2),
		Capacity:     request.Capacity,
	})
	if err != nil {
		return httpError(err, "creating ticket type")
	}

	return c.JSON(http.StatusCreated, ticketType)
}
