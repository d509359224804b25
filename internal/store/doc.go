// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// It also owns the store error taxonomy. Implementations translate every
// driver-level failure into one of these sentinels before returning.
package store
