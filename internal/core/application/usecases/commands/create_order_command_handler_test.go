package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_AssignsAvailableDriver(t *testing.T) {
	f := newFixture(t)
	f.onboardCustomer(t, "C1")
	f.onboardDriver(t, "D1")

	f.placeOrder(t, "O1", "C1")

	o, err := f.orders.Get(t.Context(), "O1")
	require.NoError(t, err)
	assert.Equal(t, order.Assigned, o.Status())
	require.NotNil(t, o.Driver())
	assert.Equal(t, "D1", *o.Driver())

	d, err := f.drivers.Get(t.Context(), "D1")
	require.NoError(t, err)
	assert.False(t, d.IsAvailable())

	assert.True(t, f.notifier.contains("Order O1 placed successfully."))
}

func TestCreateOrderCommandHandler_QueuesWhenNoDriver(t *testing.T) {
	f := newFixture(t)
	f.onboardCustomer(t, "C1")

	f.placeOrder(t, "O1", "C1")

	assert.Equal(t, order.Pending, f.orderStatus(t, "O1"))
	assert.Equal(t, []string{"O1"}, f.engine.QueuedOrders())
}

func TestCreateOrderCommandHandler_UnknownCustomer(t *testing.T) {
	f := newFixture(t)

	cmd, err := commands.NewCreateOrderCommand("O1", "ghost", order.ItemFood, 1, 0.5)
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(f.customers, f.orders, f.notifier, f.engine)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_DuplicateOrderID(t *testing.T) {
	f := newFixture(t)
	f.onboardCustomer(t, "C1")
	f.placeOrder(t, "O1", "C1")

	cmd, err := commands.NewCreateOrderCommand("O1", "C1", order.ItemBooks, 1, 1.0)
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(f.customers, f.orders, f.notifier, f.engine)
	err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestCreateOrderCommandHandler_NotConstructedCommand(t *testing.T) {
	f := newFixture(t)

	h := commands.NewCreateOrderCommandHandler(f.customers, f.orders, f.notifier, f.engine)
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
