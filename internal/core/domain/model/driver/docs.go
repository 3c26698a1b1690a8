// Package driver provides domain entities and business logic for driver
// management in the delivery marketplace.
//
// The package includes:
//   - Driver: The aggregate root that manages driver identity, availability,
//     completed-delivery count and the rating accumulator
//   - Status: Driver availability (Available or Busy)
//
// Key business rules:
//   - A driver is Busy iff currently holding exactly one non-terminal order
//   - Only Available drivers can be reserved; reserving a Busy driver fails,
//     which makes double assignment under concurrency impossible
//   - The rating is a simple running mean of scores within [1, 5];
//     unrated drivers report 0.0
package driver
