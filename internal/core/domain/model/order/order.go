package order

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// MinQuantity is the smallest number of items a single order may carry.
	MinQuantity = 1
	// MaxQuantity is the largest number of items a single order may carry.
	MaxQuantity = 10
	// MaxWeight is the heaviest package, in kilograms, a single order may carry.
	MaxWeight = 50.0
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order in the marketplace. It is the aggregate root
// that manages the order lifecycle from creation through driver assignment,
// pickup, delivery and payment.
//
// Order follows these invariants:
//   - Must have a non-empty unique identifier and customer reference
//   - Item must be a known category, quantity within [1, 10], weight within (0, 50.0]
//   - driverID is non-nil iff status is Assigned, PickedUp or Delivered
//   - Status transitions follow the state machine defined on Status
//   - Once picked up, the order can never be cancelled
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id string

	// customerID references the customer who placed the order
	customerID string

	// item is the enumerated category of goods being delivered
	item ItemType

	// quantity is the number of items (1..10)
	quantity int

	// weight is the package weight in kilograms (0..50.0)
	weight float64

	// driverID is the assigned driver's ID (nil while unassigned or cancelled)
	driverID *string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at creation and never changes; the expiration
	// sweep uses it to detect stale orders
	createdAt time.Time

	// paymentID references the captured payment (nil until paid)
	paymentID *string

	// isPaid records whether payment was captured for the delivery
	isPaid bool

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a fresh Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be non-empty)
//   - customerID: The ordering customer's ID (must be non-empty)
//   - item: Category of goods (must be a known ItemType)
//   - quantity: Number of items (must be within [1, 10])
//   - weight: Package weight in kilograms (must be within (0, 50.0])
//
// The order starts in Pending status with no driver assigned; createdAt is
// stamped with the current UTC time.
func NewOrder(id, customerID string, item ItemType, quantity int, weight float64) (*Order, error) {
	order := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItem(item),
		order.setQuantity(quantity),
		order.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts orders Pending, this constructor
// restores an order to its previously persisted state.
//
// Business Rules:
//   - All NewOrder validations apply
//   - Status must be a valid lifecycle state
//   - Driver assignment must be consistent with the status
func RestoreOrder(
	id, customerID string,
	item ItemType,
	quantity int,
	weight float64,
	driverID *string,
	status Status,
	createdAt time.Time,
	paymentID *string,
	isPaid bool,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItem(item),
		order.setQuantity(quantity),
		order.setWeight(weight),
		order.setStatus(status, driverID),
	); err != nil {
		return nil, err
	}

	order.createdAt = createdAt
	order.paymentID = paymentID
	order.isPaid = isPaid

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the ID of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Item returns the category of goods being delivered.
func (o *Order) Item() ItemType {
	return o.item
}

// Quantity returns the number of items in the order.
func (o *Order) Quantity() int {
	return o.quantity
}

// Weight returns the package weight in kilograms.
func (o *Order) Weight() float64 {
	return o.weight
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID.
// Returns nil if no driver is assigned.
func (o *Order) Driver() *string {
	return o.driverID
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaymentID returns the ID of the captured payment.
// Returns nil if the order has not been paid.
func (o *Order) PaymentID() *string {
	return o.paymentID
}

// IsPaid reports whether payment has been captured for the order.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// Assign assigns the order to a driver and updates the status to Assigned.
//
// Business rules:
//   - The driver ID must be non-empty
//   - The order must be Pending; an order that already left the queue
//     (cancelled, assigned elsewhere) cannot be assigned again
func (o *Order) Assign(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}

	if o.status != Pending {
		return NewInvalidStateError(o.id, "assign", o.status, Pending)
	}

	o.status = Assigned
	o.driverID = &driverID
	return nil
}

// PickUp marks the order as collected by its assigned driver.
//
// Business rules:
//   - The order must be Assigned
//   - driverID must match the assigned driver
func (o *Order) PickUp(driverID string) error {
	if o.status != Assigned {
		return NewInvalidStateError(o.id, "pickup", o.status, Assigned)
	}

	if o.driverID == nil || *o.driverID != driverID {
		return NewDriverNotAssignedError(o.id, driverID)
	}

	o.status = PickedUp
	return nil
}

// Complete marks the order as delivered by its assigned driver.
//
// Business rules:
//   - The order must be PickedUp
//   - driverID must match the assigned driver
//
// The driver reference is retained on delivered orders for history.
func (o *Order) Complete(driverID string) error {
	if o.status != PickedUp {
		return NewInvalidStateError(o.id, "complete", o.status, PickedUp)
	}

	if o.driverID == nil || *o.driverID != driverID {
		return NewDriverNotAssignedError(o.id, driverID)
	}

	o.status = Delivered
	return nil
}

// Cancel cancels the order and clears the driver assignment.
//
// Business rules:
//   - Only Pending and Assigned orders are cancellable
//   - Once picked up, the order can never be cancelled
//
// Callers that need to free a held driver must read Driver() before
// calling Cancel, as the reference is cleared on success.
func (o *Order) Cancel() error {
	if !o.status.IsCancellable() {
		return NewNotCancellableError(o.id, o.status)
	}

	o.status = Cancelled
	o.driverID = nil
	return nil
}

// MarkPaid records a captured payment against a delivered order.
//
// Business rules:
//   - The order must be Delivered
//   - Repeated payment is a no-op detectable via IsPaid; MarkPaid itself
//     never overwrites an existing payment reference
func (o *Order) MarkPaid(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	if o.status != Delivered {
		return NewInvalidStateError(o.id, "pay", o.status, Delivered)
	}

	if o.isPaid {
		return nil
	}

	o.paymentID = &paymentID
	o.isPaid = true
	return nil
}

// IsExpired reports whether the order has sat unresolved longer than timeout.
// Only cancellable orders (Pending, Assigned) can expire; picked-up and
// final orders never do, regardless of age.
func (o *Order) IsExpired(now time.Time, timeout time.Duration) bool {
	return o.status.IsCancellable() && now.Sub(o.createdAt) > timeout
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's ID.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

// setItem validates and sets the order's item category.
// This is a private method used only during construction.
func (o *Order) setItem(item ItemType) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.item = item
	return nil
}

// setQuantity validates and sets the order's quantity.
// Quantity must be within [MinQuantity, MaxQuantity].
// This is a private method used only during construction.
func (o *Order) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

// setWeight validates and sets the order's weight.
// Weight must be positive and no more than MaxWeight kilograms.
// This is a private method used only during construction.
func (o *Order) setWeight(weight float64) error {
	if weight <= 0 || weight > MaxWeight {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, int(MaxWeight))
	}
	o.weight = weight
	return nil
}

// setStatus validates and sets the restored status together with the driver
// reference, enforcing consistency between the two.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status, driverID *string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return err
	}
	o.status = status
	o.driverID = driverID
	return nil
}
