// Package middleware provides the HTTP middleware chain: trace ID
// propagation, panic recovery, and bearer-token authentication.
package middleware
