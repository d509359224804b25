// Package ciutil detects the CI environment and reads environment variables
// with fallbacks and masking, for use by test helpers.
package ciutil
