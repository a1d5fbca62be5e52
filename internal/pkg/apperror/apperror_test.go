package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-sportstore/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errThing = apperror.New(apperror.CodeNotFound, "Thing not found", http.StatusNotFound)

func TestToHTTP(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, apperror.ToHTTP(nil).Status)
	})

	t.Run("app error through a wrap chain", func(t *testing.T) {
		err := fmt.Errorf("load thing: %w", errThing)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Thing not found", httpErr.Message)
	})

	t.Run("unknown error hides the cause", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "internal server error", httpErr.Message)
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.Wrap(cause, apperror.CodeInvalidInput, "Bad", http.StatusBadRequest)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Bad: boom", err.Error())
}

func TestValidationDetails(t *testing.T) {
	type req struct {
		ProductID int64 `json:"productId" validate:"required,gt=0"`
		Qty       int   `json:"qty" validate:"omitempty,min=1"`
	}

	v := validator.New()
	apperror.RegisterJSONTagNames(v)

	err := v.Struct(req{Qty: -1})
	require.Error(t, err)

	appErr := apperror.NewValidationError(err)
	httpErr := apperror.ToHTTP(appErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	details, ok := httpErr.Details.([]apperror.FieldError)
	require.True(t, ok)
	require.Len(t, details, 2)
	assert.Equal(t, "productId", details[0].Field)
	assert.Equal(t, "required", details[0].Rule)
	assert.Equal(t, "qty", details[1].Field)
	assert.Equal(t, "min", details[1].Rule)
}
