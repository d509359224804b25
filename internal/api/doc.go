// Package api handles incoming HTTP requests, routing, request decoding
// and response formatting. It adapts HTTP to the client and account
// services: path and body values are handed to the services as text, and
// the kind of any returned error selects the status code.
package api
