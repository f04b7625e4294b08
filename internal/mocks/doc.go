// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations are shared across test packages: in-memory
// stores that honor the same contracts as the Postgres stores, and a
// configurable JWT service. Each mock exposes function fields to override
// individual methods when a test needs custom behavior.
package mocks
