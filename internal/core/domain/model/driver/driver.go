package driver

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// MinScore is the lowest rating score a delivery can receive.
	MinScore = 1
	// MaxScore is the highest rating score a delivery can receive.
	MaxScore = 5
)

var (
	// ErrDriverIsNotConstructed is returned when using a Driver that was not
	// created through the NewDriver or RestoreDriver factory methods.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrDriverIsNotAvailable is returned when attempting to reserve a
	// driver who is already holding an order.
	ErrDriverIsNotAvailable = errors.New("driver is not available")
)

// Driver represents a delivery driver in the marketplace.
// It is an aggregate root managing driver identity, availability and the
// rating accumulator used to compute the running average rating.
//
// Business rules:
//   - Driver must have a non-empty ID and name
//   - Status is Busy iff the driver is holding exactly one non-terminal order
//   - Rating is the running mean of all received scores, 0.0 while unrated;
//     the accumulator (totalScore, ratedCount) is internal and only surfaces
//     through Rating()
//   - orderCount counts completed deliveries
type Driver struct {
	// id uniquely identifies the driver
	id string
	// name is the human-readable name of the driver
	name string
	// status reflects whether the driver can take an order
	status Status
	// totalScore accumulates all received rating scores
	totalScore float64
	// ratedCount is the number of ratings received
	ratedCount int
	// orderCount is the number of completed deliveries
	orderCount int
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
// The driver starts Available, unrated, with no completed deliveries.
//
// Parameters:
//   - id: Unique identifier for the driver (must be non-empty)
//   - name: Human-readable name (must be non-empty)
func NewDriver(id, name string) (*Driver, error) {
	driver := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its availability and rating accumulator.
func RestoreDriver(
	id, name string,
	status Status,
	totalScore float64,
	ratedCount int,
	orderCount int,
) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setStatus(status),
		driver.setRatingAccumulator(totalScore, ratedCount),
		driver.setOrderCount(orderCount),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate checks if the Driver was properly constructed using a factory method.
// The zero value of Driver is invalid and will fail this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id == other.id
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() string {
	return d.id
}

// Name returns the human-readable name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// Status returns the current availability of the driver.
func (d *Driver) Status() Status {
	return d.status
}

// IsAvailable reports whether the driver can be matched to an order.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// Rating returns the running average of all received scores.
// Returns 0.0 while the driver is unrated.
func (d *Driver) Rating() float64 {
	if d.ratedCount == 0 {
		return 0.0
	}
	return d.totalScore / float64(d.ratedCount)
}

// TotalScore returns the accumulated sum of received rating scores.
// Exposed for persistence only; use Rating for the average.
func (d *Driver) TotalScore() float64 {
	return d.totalScore
}

// RatedCount returns the number of ratings received.
// Exposed for persistence only; use Rating for the average.
func (d *Driver) RatedCount() int {
	return d.ratedCount
}

// OrderCount returns the number of completed deliveries.
func (d *Driver) OrderCount() int {
	return d.orderCount
}

// MarkBusy reserves the driver for an order.
//
// Business rules:
//   - The driver must be Available; reserving a Busy driver fails with
//     ErrDriverIsNotAvailable so a double assignment can never succeed
func (d *Driver) MarkBusy() error {
	if d.status != Available {
		return ErrDriverIsNotAvailable
	}

	d.status = Busy
	return nil
}

// MarkAvailable frees the driver after the held order is completed or
// cancelled. Marking an already Available driver is a no-op.
func (d *Driver) MarkAvailable() {
	d.status = Available
}

// AddRating records a score for a completed delivery and updates the
// running average.
//
// Business rules:
//   - score must be within [MinScore, MaxScore]
func (d *Driver) AddRating(score int) error {
	if score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, MinScore, MaxScore)
	}

	d.totalScore += float64(score)
	d.ratedCount++
	return nil
}

// IncrementOrderCount records one more completed delivery.
func (d *Driver) IncrementOrderCount() {
	d.orderCount++
}

// setID sets the driver's unique identifier with validation.
// This is an internal setter used during construction.
func (d *Driver) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

// setName sets the driver's name with validation.
// This is an internal setter used during construction.
func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

// setStatus sets the driver's availability with validation.
// This is an internal setter used during restoration.
func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// setRatingAccumulator restores the rating accumulator with validation.
// This is an internal setter used during restoration.
func (d *Driver) setRatingAccumulator(totalScore float64, ratedCount int) error {
	if totalScore < 0 || ratedCount < 0 {
		return errs.NewValueIsInvalidError("rating accumulator is invalid")
	}
	if ratedCount == 0 && totalScore != 0 {
		return errs.NewValueIsInvalidError("rating accumulator is invalid")
	}

	d.totalScore = totalScore
	d.ratedCount = ratedCount
	return nil
}

// setOrderCount restores the completed delivery counter with validation.
// This is an internal setter used during restoration.
func (d *Driver) setOrderCount(orderCount int) error {
	if orderCount < 0 {
		return errs.NewValueIsInvalidError("orderCount is invalid")
	}
	d.orderCount = orderCount
	return nil
}
