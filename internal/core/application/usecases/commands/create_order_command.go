package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new delivery order.
// Encapsulates the parcel details: item category, quantity and weight.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-1", "CUST-1", order.ItemBooks, 2, 1.5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(customers, orders, notifier, engine)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Println("order placed and offered for driver assignment")
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	customerID string
	item       order.ItemType
	quantity   int
	weight     float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new delivery order.
// Validates that both IDs are present, the item category is known, and
// quantity and weight fall within the marketplace parcel limits.
func NewCreateOrderCommand(
	orderID, customerID string,
	item order.ItemType,
	quantity int,
	weight float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItem(item),
		cmd.setQuantity(quantity),
		cmd.setWeight(weight),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Item returns the parcel's item category.
func (c CreateOrderCommand) Item() order.ItemType {
	return c.item
}

// Quantity returns the number of items in the parcel.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Weight returns the parcel weight in kilograms.
func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItem(item order.ItemType) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.item = item
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < order.MinQuantity || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	if weight <= 0 || weight > order.MaxWeight {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weight = weight
	return nil
}
