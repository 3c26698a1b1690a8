package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "O1")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "O1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: O1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "D1", cause)

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "D1", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: D1 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("customerId", "C1")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "C1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: C1", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("orderId", "O1", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "O1", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: orderId, ID is: O1 (cause: duplicated key)",
			err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("itemType")

		assert.Equal(t, "itemType", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: itemType", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("itemType", cause)

		assert.Equal(t, "itemType", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: itemType (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 11, 1, 10)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 11, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 11 is quantity, min value is 1, max value is 10", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 1, 5, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 1, max value is 5 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerID")

		assert.Equal(t, "customerID", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerID", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customerID", cause)

		assert.Equal(t, "customerID", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerID (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "O1")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		objectExistsErr := errs.NewObjectAlreadyExistsError("orderId", "O1")
		require.ErrorIs(t, objectExistsErr, errs.ErrObjectAlreadyExists)

		valueInvalidErr := errs.NewValueIsInvalidError("itemType")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 11, 1, 10)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customerID")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)
	})
}
