// Package inmemory provides in-memory implementations of the repository
// ports. Each repository is backed by a concurrency-safe keyed collection
// that preserves insertion order and hands out shallow copies, so callers
// can only change stored state through the atomic Mutate operation.
//
// These repositories are the default stores for single-process deployments
// and for tests; the postgres adapters provide the durable alternative
// behind the same ports.
package inmemory
