package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id, "C1", order.ItemElectronics, 2, 1.5)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with valid parameters", func(t *testing.T) {
		before := time.Now().UTC()
		o, err := order.NewOrder("O1", "C1", order.ItemBooks, 3, 2.5)
		after := time.Now().UTC()

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "O1", o.ID())
		assert.Equal(t, "C1", o.CustomerID())
		assert.Equal(t, order.ItemBooks, o.Item())
		assert.Equal(t, 3, o.Quantity())
		assert.InDelta(t, 2.5, o.Weight(), 0.0001)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.PaymentID())
		assert.False(t, o.IsPaid())
		assert.False(t, o.CreatedAt().Before(before))
		assert.False(t, o.CreatedAt().After(after))
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		o, err := order.NewOrder("", "C1", order.ItemBooks, 1, 1)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "id")
	})

	t.Run("should fail with empty customer id", func(t *testing.T) {
		o, err := order.NewOrder("O1", "", order.ItemBooks, 1, 1)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerID")
	})

	t.Run("should fail with unknown item type", func(t *testing.T) {
		o, err := order.NewOrder("O1", "C1", order.ItemUnknown, 1, 1)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with quantity outside bounds", func(t *testing.T) {
		for _, quantity := range []int{0, -1, 11, 100} {
			o, err := order.NewOrder("O1", "C1", order.ItemBooks, quantity, 1)

			require.Error(t, err)
			assert.Nil(t, o)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should accept quantity boundaries", func(t *testing.T) {
		for _, quantity := range []int{order.MinQuantity, order.MaxQuantity} {
			_, err := order.NewOrder("O1", "C1", order.ItemBooks, quantity, 1)
			require.NoError(t, err)
		}
	})

	t.Run("should fail with weight outside bounds", func(t *testing.T) {
		for _, weight := range []float64{0, -1, 50.1, 999} {
			o, err := order.NewOrder("O1", "C1", order.ItemBooks, 1, weight)

			require.Error(t, err)
			assert.Nil(t, o)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should accept maximum weight", func(t *testing.T) {
		_, err := order.NewOrder("O1", "C1", order.ItemBooks, 1, order.MaxWeight)
		require.NoError(t, err)
	})

	t.Run("should aggregate multiple validation failures", func(t *testing.T) {
		_, err := order.NewOrder("", "", order.ItemUnknown, 0, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order to persisted state", func(t *testing.T) {
		driverID := "D1"
		paymentID := "P1"
		createdAt := time.Now().UTC().Add(-time.Hour)

		o, err := order.RestoreOrder(
			"O1", "C1", order.ItemFood, 2, 3.5,
			&driverID, order.Delivered, createdAt, &paymentID, true,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.Driver())
		assert.Equal(t, "D1", *o.Driver())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.PaymentID())
		assert.Equal(t, "P1", *o.PaymentID())
		assert.True(t, o.IsPaid())
	})

	t.Run("should fail with driver on pending order", func(t *testing.T) {
		driverID := "D1"

		_, err := order.RestoreOrder(
			"O1", "C1", order.ItemFood, 1, 1,
			&driverID, order.Pending, time.Now().UTC(), nil, false,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Pending is not a valid status to have a driver")
	})

	t.Run("should fail with missing driver on assigned order", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"O1", "C1", order.ItemFood, 1, 1,
			nil, order.Assigned, time.Now().UTC(), nil, false,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Assigned is not a valid status to have no driver")
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"O1", "C1", order.ItemFood, 1, 1,
			nil, order.Unknown, time.Now().UTC(), nil, false,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should assign pending order to driver", func(t *testing.T) {
		o := mustNewOrder(t, "O1")

		err := o.Assign("D1")

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Driver())
		assert.Equal(t, "D1", *o.Driver())
	})

	t.Run("should reject empty driver id", func(t *testing.T) {
		o := mustNewOrder(t, "O1")

		err := o.Assign("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject assignment of non-pending order", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))

		err := o.Assign("D2")

		require.ErrorIs(t, err, order.ErrInvalidState)

		var stateErr *order.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "O1", stateErr.OrderID)
		assert.Equal(t, "assign", stateErr.Operation)
		assert.Equal(t, order.Assigned, stateErr.Current)
		assert.Equal(t, order.Pending, stateErr.Expected)

		// The original assignment is untouched.
		assert.Equal(t, "D1", *o.Driver())
	})
}

func TestOrder_PickUp(t *testing.T) {
	t.Run("should mark assigned order as picked up", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))

		err := o.PickUp("D1")

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, o.Status())
		assert.Equal(t, "D1", *o.Driver())
	})

	t.Run("should reject pickup of pending order", func(t *testing.T) {
		o := mustNewOrder(t, "O1")

		err := o.PickUp("D1")

		require.ErrorIs(t, err, order.ErrInvalidState)

		var stateErr *order.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "pickup", stateErr.Operation)
		assert.Equal(t, order.Pending, stateErr.Current)
		assert.Equal(t, order.Assigned, stateErr.Expected)
	})

	t.Run("should reject pickup by non-assigned driver", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))

		err := o.PickUp("D2")

		require.ErrorIs(t, err, order.ErrDriverNotAssigned)

		var driverErr *order.DriverNotAssignedError
		require.ErrorAs(t, err, &driverErr)
		assert.Equal(t, "O1", driverErr.OrderID)
		assert.Equal(t, "D2", driverErr.DriverID)
		assert.Equal(t, order.Assigned, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("should mark picked up order as delivered", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))
		require.NoError(t, o.PickUp("D1"))

		err := o.Complete("D1")

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		// Driver reference is retained for history.
		require.NotNil(t, o.Driver())
		assert.Equal(t, "D1", *o.Driver())
	})

	t.Run("should reject completion before pickup", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))

		err := o.Complete("D1")

		require.ErrorIs(t, err, order.ErrInvalidState)

		var stateErr *order.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, "complete", stateErr.Operation)
		assert.Equal(t, order.PickedUp, stateErr.Expected)
	})

	t.Run("should reject completion by non-assigned driver", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))
		require.NoError(t, o.PickUp("D1"))

		err := o.Complete("D2")

		require.ErrorIs(t, err, order.ErrDriverNotAssigned)
		assert.Equal(t, order.PickedUp, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		o := mustNewOrder(t, "O1")

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("should cancel assigned order and clear driver", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("should never cancel picked up order", func(t *testing.T) {
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))
		require.NoError(t, o.PickUp("D1"))

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrNotCancellable)

		var cancelErr *order.NotCancellableError
		require.ErrorAs(t, err, &cancelErr)
		assert.Equal(t, "O1", cancelErr.OrderID)
		assert.Equal(t, order.PickedUp, cancelErr.Current)
		assert.Equal(t, order.PickedUp, o.Status())
	})

	t.Run("should reject cancellation of final orders", func(t *testing.T) {
		delivered := mustNewOrder(t, "O1")
		require.NoError(t, delivered.Assign("D1"))
		require.NoError(t, delivered.PickUp("D1"))
		require.NoError(t, delivered.Complete("D1"))
		require.ErrorIs(t, delivered.Cancel(), order.ErrNotCancellable)

		cancelled := mustNewOrder(t, "O2")
		require.NoError(t, cancelled.Cancel())
		require.ErrorIs(t, cancelled.Cancel(), order.ErrNotCancellable)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	deliveredOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o := mustNewOrder(t, "O1")
		require.NoError(t, o.Assign("D1"))
		require.NoError(t, o.PickUp("D1"))
		require.NoError(t, o.Complete("D1"))
		return o
	}

	t.Run("should record payment against delivered order", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.MarkPaid("P1")

		require.NoError(t, err)
		assert.True(t, o.IsPaid())
		require.NotNil(t, o.PaymentID())
		assert.Equal(t, "P1", *o.PaymentID())
	})

	t.Run("should not overwrite existing payment", func(t *testing.T) {
		o := deliveredOrder(t)
		require.NoError(t, o.MarkPaid("P1"))

		err := o.MarkPaid("P2")

		require.NoError(t, err)
		assert.Equal(t, "P1", *o.PaymentID())
	})

	t.Run("should reject payment before delivery", func(t *testing.T) {
		o := mustNewOrder(t, "O1")

		err := o.MarkPaid("P1")

		require.ErrorIs(t, err, order.ErrInvalidState)
		assert.False(t, o.IsPaid())
	})

	t.Run("should reject empty payment id", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.MarkPaid("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_IsExpired(t *testing.T) {
	timeout := 30 * time.Minute

	restoreAgedOrder := func(t *testing.T, status order.Status, driverID *string, age time.Duration) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(
			"O1", "C1", order.ItemFood, 1, 1,
			driverID, status, time.Now().UTC().Add(-age), nil, false,
		)
		require.NoError(t, err)
		return o
	}

	t.Run("should expire stale pending order", func(t *testing.T) {
		o := restoreAgedOrder(t, order.Pending, nil, time.Hour)

		assert.True(t, o.IsExpired(time.Now().UTC(), timeout))
	})

	t.Run("should expire stale assigned order", func(t *testing.T) {
		driverID := "D1"
		o := restoreAgedOrder(t, order.Assigned, &driverID, time.Hour)

		assert.True(t, o.IsExpired(time.Now().UTC(), timeout))
	})

	t.Run("should not expire fresh order", func(t *testing.T) {
		o := mustNewOrder(t, "O1")

		assert.False(t, o.IsExpired(time.Now().UTC(), timeout))
	})

	t.Run("should never expire picked up order regardless of age", func(t *testing.T) {
		driverID := "D1"
		o := restoreAgedOrder(t, order.PickedUp, &driverID, 24*time.Hour)

		assert.False(t, o.IsExpired(time.Now().UTC(), timeout))
	})

	t.Run("should never expire final orders", func(t *testing.T) {
		driverID := "D1"
		delivered := restoreAgedOrder(t, order.Delivered, &driverID, 24*time.Hour)
		cancelled := restoreAgedOrder(t, order.Cancelled, nil, 24*time.Hour)

		assert.False(t, delivered.IsExpired(time.Now().UTC(), timeout))
		assert.False(t, cancelled.IsExpired(time.Now().UTC(), timeout))
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare orders by id", func(t *testing.T) {
		o1 := mustNewOrder(t, "O1")
		o2 := mustNewOrder(t, "O1")
		o3 := mustNewOrder(t, "O2")

		assert.True(t, o1.IsEqual(o2))
		assert.False(t, o1.IsEqual(o3))
		assert.False(t, o1.IsEqual(nil))
	})
}
