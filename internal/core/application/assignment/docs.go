// Package assignment implements the engine that matches pending orders to
// available drivers.
//
// The engine owns the FIFO queue of orders waiting for a driver and
// serializes all assignment attempts behind a single mutex, making the
// read-match-write sequence of an attempt atomic. Command handlers call
// AttemptAssignment when an order is created and OnDriverAvailable whenever
// a driver frees up (delivery completed or an assigned order cancelled).
//
// The matching rule itself is a swappable services.MatchingPolicy; the
// engine contributes the concurrency control and queueing around it.
package assignment
