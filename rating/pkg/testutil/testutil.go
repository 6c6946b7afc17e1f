// Package testutil provides in-memory wiring for rating service tests.
package testutil

import (
	"github.com/okovalenko/filmfortoday/rating/internal/controller/rating"
	httphandler "github.com/okovalenko/filmfortoday/rating/internal/handler/http"
	"github.com/okovalenko/filmfortoday/rating/internal/repository/memory"
)

// NewTestRatingHandler creates a rating HTTP handler backed by an in-memory
// repository, for tests.
func NewTestRatingHandler() (*httphandler.Handler, *memory.Repository) {
	r := memory.New()
	return httphandler.New(rating.New(r, nil)), r
}
