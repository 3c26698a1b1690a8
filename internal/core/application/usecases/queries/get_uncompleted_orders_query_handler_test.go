package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/adapters/out/inmemory"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
)

func addOrderInStatus(t *testing.T, repo *inmemory.OrderRepository, id string, driverID *string, status order.Status) {
	t.Helper()
	o, err := order.RestoreOrder(
		id, "C1", order.ItemFood, 1, 0.5,
		driverID, status, time.Now().UTC(), nil, false,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), o))
}

func TestGetUncompletedOrdersQueryHandler_FiltersTerminalOrders(t *testing.T) {
	repo := inmemory.NewOrderRepository()
	driverID := "D1"
	addOrderInStatus(t, repo, "pending", nil, order.Pending)
	addOrderInStatus(t, repo, "assigned", &driverID, order.Assigned)
	addOrderInStatus(t, repo, "moving", &driverID, order.PickedUp)
	addOrderInStatus(t, repo, "done", &driverID, order.Delivered)
	addOrderInStatus(t, repo, "gone", nil, order.Cancelled)

	h := queries.NewGetUncompletedOrdersQueryHandler(repo)
	active, err := h.Handle(t.Context(), queries.NewGetUncompletedOrdersQuery())
	require.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, o := range active {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"pending", "assigned", "moving"}, ids)
}

func TestGetUncompletedOrdersQueryHandler_ReadModelFields(t *testing.T) {
	repo := inmemory.NewOrderRepository()
	driverID := "D1"
	addOrderInStatus(t, repo, "O1", &driverID, order.Assigned)

	h := queries.NewGetUncompletedOrdersQueryHandler(repo)
	active, err := h.Handle(t.Context(), queries.NewGetUncompletedOrdersQuery())
	require.NoError(t, err)

	require.Len(t, active, 1)
	assert.Equal(t, "O1", active[0].ID)
	assert.Equal(t, "C1", active[0].CustomerID)
	assert.Equal(t, "Food", active[0].Item)
	assert.Equal(t, "Assigned", active[0].Status)
	require.NotNil(t, active[0].DriverID)
	assert.Equal(t, "D1", *active[0].DriverID)
}

func TestGetUncompletedOrdersQueryHandler_EmptyStore(t *testing.T) {
	repo := inmemory.NewOrderRepository()

	h := queries.NewGetUncompletedOrdersQueryHandler(repo)
	active, err := h.Handle(t.Context(), queries.NewGetUncompletedOrdersQuery())
	require.NoError(t, err)
	assert.Empty(t, active)
}
