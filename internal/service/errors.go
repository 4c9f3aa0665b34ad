// Package service implements the booking rules: who may create a
// booking, which rooms can take one, and how an existing booking may
// be moved. Handlers translate the two sentinel errors below into
// HTTP statuses; any other error is an opaque server fault.
package service

import "errors"

// ErrNotFound is returned when a referenced entity does not exist:
// the user's enrollment, their booking, or the requested room.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the entity exists but a business rule
// disallows the operation: unpaid, remote or non-hotel ticket, or a
// room with no vacancy. Handlers should translate this into an HTTP
// 403 response.
var ErrForbidden = errors.New("forbidden")
