package commands_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"marketplace/internal/adapters/out/inmemory"
	"marketplace/internal/core/application/assignment"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/services"
)

// notifierRecorder captures notifications so tests can assert on them.
type notifierRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (n *notifierRecorder) Notify(_ context.Context, message string) {
	n.record(message)
}

func (n *notifierRecorder) NotifyEmail(_ context.Context, to, message string) {
	n.record(fmt.Sprintf("email %s: %s", to, message))
}

func (n *notifierRecorder) NotifySms(_ context.Context, to, message string) {
	n.record(fmt.Sprintf("sms %s: %s", to, message))
}

func (n *notifierRecorder) record(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *notifierRecorder) contains(fragment string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, m := range n.messages {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}

// gatewayStub captures payments with deterministic IDs.
type gatewayStub struct {
	mu    sync.Mutex
	calls int
	fail  error
}

func (g *gatewayStub) ProcessPayment(
	_ context.Context,
	orderID string,
	amount decimal.Decimal,
	mode payment.Mode,
) (*payment.Payment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fail != nil {
		return nil, g.fail
	}

	g.calls++
	return payment.NewPayment(fmt.Sprintf("PAY-%d", g.calls), orderID, amount, mode)
}

type fixture struct {
	customers *inmemory.CustomerRepository
	orders    *inmemory.OrderRepository
	drivers   *inmemory.DriverRepository
	notifier  *notifierRecorder
	gateway   *gatewayStub
	engine    *assignment.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		customers: inmemory.NewCustomerRepository(),
		orders:    inmemory.NewOrderRepository(),
		drivers:   inmemory.NewDriverRepository(),
		notifier:  &notifierRecorder{},
		gateway:   &gatewayStub{},
	}
	f.engine = assignment.NewEngine(f.orders, f.drivers, services.NewFirstAvailablePolicy(), nil)
	return f
}

func (f *fixture) onboardCustomer(t *testing.T, id string) {
	t.Helper()
	cmd, err := commands.NewOnboardCustomerCommand(id, "Customer "+id)
	require.NoError(t, err)
	h := commands.NewOnboardCustomerCommandHandler(f.customers)
	require.NoError(t, h.Handle(t.Context(), cmd))
}

func (f *fixture) onboardDriver(t *testing.T, id string) {
	t.Helper()
	cmd, err := commands.NewOnboardDriverCommand(id, "Driver "+id)
	require.NoError(t, err)
	h := commands.NewOnboardDriverCommandHandler(f.drivers, f.engine)
	require.NoError(t, h.Handle(t.Context(), cmd))
}

func (f *fixture) placeOrder(t *testing.T, orderID, customerID string) {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, order.ItemBooks, 1, 1.0)
	require.NoError(t, err)
	h := commands.NewCreateOrderCommandHandler(f.customers, f.orders, f.notifier, f.engine)
	require.NoError(t, h.Handle(t.Context(), cmd))
}

func (f *fixture) pickUp(t *testing.T, orderID, driverID string) {
	t.Helper()
	cmd, err := commands.NewPickupOrderCommand(orderID, driverID)
	require.NoError(t, err)
	h := commands.NewPickupOrderCommandHandler(f.orders, f.notifier)
	require.NoError(t, h.Handle(t.Context(), cmd))
}

func (f *fixture) complete(t *testing.T, orderID, driverID string) {
	t.Helper()
	cmd, err := commands.NewCompleteOrderCommand(orderID, driverID)
	require.NoError(t, err)
	h := commands.NewCompleteOrderCommandHandler(f.orders, f.drivers, f.notifier, f.engine)
	require.NoError(t, h.Handle(t.Context(), cmd))
}

func (f *fixture) orderStatus(t *testing.T, orderID string) order.Status {
	t.Helper()
	o, err := f.orders.Get(t.Context(), orderID)
	require.NoError(t, err)
	return o.Status()
}
