// Package store defines the persistence interfaces and the error
// taxonomy shared by every store implementation.
package store
