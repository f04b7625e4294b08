// Package api implements the HTTP handlers for the task manager:
// registration and login under /auth, and the task CRUD endpoints
// under /api/v1/tasks. Handlers decode and validate request payloads,
// delegate to the service layer, and translate service errors into
// the shared JSON error envelope.
package api
