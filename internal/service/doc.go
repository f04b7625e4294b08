// Package service contains the business logic that sits between the
// HTTP boundary and the persistence layer.
package service
