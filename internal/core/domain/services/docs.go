// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the delivery marketplace. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - MatchingPolicy: A swappable rule selecting an available driver for a
//     pending order
//   - FirstAvailablePolicy: Stable insertion-order scan, deterministic for
//     FIFO fairness
//   - BestRatedPolicy: Highest-rated available driver, ties broken first-seen
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
