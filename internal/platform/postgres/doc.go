// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles the details of query execution, schema bootstrap, and data
// mapping between domain entities and database records.
//
// Stores are built on database/sql with the pgx stdlib driver. Each operation
// takes one dedicated connection from a store.ConnProvider and releases it
// before returning. Driver errors are classified with MapError and never
// reach callers unwrapped.
package postgres
