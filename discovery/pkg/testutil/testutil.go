package testutil

import (
	"github.com/uber-go/tally/v4"

	"github.com/okovalenko/filmfortoday/discovery/internal/controller/discovery"
	httphandler "github.com/okovalenko/filmfortoday/discovery/internal/handler/http"
	"github.com/okovalenko/filmfortoday/discovery/internal/repository/memory"
)

// NewTestDiscoveryHandler creates a discovery HTTP handler over a fresh
// in-memory repository, returning both so tests can seed data.
func NewTestDiscoveryHandler() (*httphandler.Handler, *memory.Repository) {
	r := memory.New()
	ctrl := discovery.New(r, r, r, r, r)
	return httphandler.New(ctrl, tally.NoopScope), r
}
