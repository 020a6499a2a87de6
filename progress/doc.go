// Package progress defines a lightweight tracker for aggregated allocation
// counters, delivered through the context so that any component in the
// pipeline can report without a global registry.
package progress
