// Package gateway holds errors shared by the film page service gateways.
package gateway

import "errors"

// ErrNotFound is returned when the remote service has no data for the
// request.
var ErrNotFound = errors.New("not found")
