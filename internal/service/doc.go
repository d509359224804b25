// Package service contains the application-specific use cases for clients
// and accounts. It orchestrates the repositories defined in internal/store.
//
// Every operation accepts its inputs as text, exactly as they arrived at the
// boundary, and runs the same pipeline before any store access:
//
//  1. Blank check: trimmed text inputs must be non-empty (ErrEmptyParameter).
//  2. Type check: numeric inputs are parsed left to right, stopping at the
//     first failure (ErrBadParameter).
//  3. Business rules, e.g. low < high for range queries (ErrBadParameter).
//  4. Store call, whose outcome is re-wrapped in a *ServiceError carrying a
//     message with the caller's identifiers and the original kind.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
