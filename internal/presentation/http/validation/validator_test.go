package validation

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storehouse/pkg/errorbank"
)

type signup struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Price    float64 `json:"product_price,omitempty" validate:"gte=0"`
	Internal string  `json:"-"`
}

func TestValidator(t *testing.T) {
	v := New()

	t.Run("valid payload", func(t *testing.T) {
		assert.NoError(t, v.Validate(&signup{Username: "alice", Email: "a@x.com"}))
	})

	t.Run("reports json field name", func(t *testing.T) {
		err := v.Validate(&signup{Email: "a@x.com"})
		require.Error(t, err)
		assert.True(t, errorbank.IsKind(err, errorbank.KindValidationFailure))
		assert.Equal(t, "username is required", errorbank.From(err).Message())
	})

	t.Run("email format", func(t *testing.T) {
		err := v.Validate(&signup{Username: "alice", Email: "nope"})
		assert.Equal(t, "email must be a valid email address", errorbank.From(err).Message())
	})

	t.Run("lower bound", func(t *testing.T) {
		err := v.Validate(&signup{Username: "alice", Email: "a@x.com", Price: -1})
		assert.Equal(t, "product_price must be at least 0", errorbank.From(err).Message())
	})
}

func TestDescribeNonValidationError(t *testing.T) {
	assert.Equal(t, "invalid payload", Describe(errors.New("boom")))
}

func TestBindError(t *testing.T) {
	typeErr := &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(float64(0)), Field: "product_price"}
	err := BindError(echo.NewHTTPError(http.StatusBadRequest).SetInternal(typeErr))
	assert.True(t, errorbank.IsKind(err, errorbank.KindValidationFailure))
	assert.Equal(t, "product_price must be a float64", errorbank.From(err).Message())

	err = BindError(echo.NewHTTPError(http.StatusBadRequest, "unexpected EOF"))
	assert.True(t, errorbank.IsKind(err, errorbank.KindBadRequest))
	assert.Equal(t, "Malformed request body.", errorbank.From(err).Message())
}
