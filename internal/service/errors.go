package service

import (
	"fmt"

	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

// Service-level errors.
var (
	// ErrStatusNotFound is returned by UpdateStatus when the status text
	// does not match any member of the closed status set. It deliberately
	// wraps store.ErrNotFound so the boundary reports 404, preserving the
	// external contract even though the condition is really bad input.
	ErrStatusNotFound = fmt.Errorf("%w: task status", store.ErrNotFound)
)
