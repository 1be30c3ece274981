package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
)

var errorStatuses = []struct {
	err  error
	code int
}{
	{entity.ErrMissingFields, http.StatusBadRequest},
	{entity.ErrNotFound, http.StatusNotFound},
	{entity.ErrUnauthorized, http.StatusForbidden},
	{entity.ErrCancellationWindowClosed, http.StatusForbidden},
	{entity.ErrOutOfStock, http.StatusConflict},
	{entity.ErrEventNotOnSale, http.StatusConflict},
	{entity.ErrEventFinished, http.StatusConflict},
	{entity.ErrAlreadyCancelled, http.StatusConflict},
	{entity.ErrAlreadyUsed, http.StatusConflict},
	{entity.ErrTicketCancelled, http.StatusConflict},
	{entity.ErrInvalidStatus, http.StatusConflict},
	{entity.ErrInvalidTransition, http.StatusConflict},
}

// httpError maps a failed operation to its response. Anything that is not a
// business rule is reported as an internal error.
func httpError(err error, action string) *echo.HTTPError {
	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			return &echo.HTTPError{
				Code:     s.code,
				Message:  message(err, s.err),
				Internal: fmt.Errorf("%s: %w", action, err),
			}
		}
	}

	return &echo.HTTPError{
		Code:     http.StatusInternalServerError,
		Message:  "internal error",
		Internal: fmt.Errorf("%s: %w", action, err),
	}
}

func message(err, kind error) string {
	var missing entity.MissingFieldsError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	return kind.Error()
}

func badRequest(err error) *echo.HTTPError {
	return &echo.HTTPError{
		Code:     http.StatusBadRequest,
		Message:  "failed to parse request",
		Internal: fmt.Errorf("failed to bind request: %w", err),
	}
}
