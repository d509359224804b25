// Package domain contains the core business entities of the application:
// clients and the accounts they own. It is independent of any storage or
// delivery mechanism.
package domain
