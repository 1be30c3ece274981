package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Nafiz37/Event-Ekhanei-sub000/entity"
	"github.com/stretchr/testify/assert"
)

func TestMissingFieldsError(t *testing.T) {
	err := fmt.Errorf("validating booking: %w", entity.MissingFieldsError{Fields: []string{"event_id", "user_id"}})

	assert.ErrorIs(t, err, entity.ErrMissingFields)
	assert.EqualError(t, err, "validating booking: missing or invalid fields: event_id, user_id")
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "ok", entity.ErrorKind(nil))
	assert.Equal(t, "out_of_stock", entity.ErrorKind(fmt.Errorf("reserving: %w", entity.ErrOutOfStock)))
	assert.Equal(t, "missing_fields", entity.ErrorKind(entity.MissingFieldsError{Fields: []string{"code"}}))
	assert.Equal(t, "transaction_failure", entity.ErrorKind(errors.New("connection reset")))
}
