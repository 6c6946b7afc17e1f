// Package http provides an HTTP gateway to the discovery service.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"

	discoverymodel "github.com/okovalenko/filmfortoday/discovery/pkg/model"
	"github.com/okovalenko/filmfortoday/filmpage/internal/gateway"
	"github.com/okovalenko/filmfortoday/pkg/discovery"
)

// Gateway defines an HTTP gateway for the discovery service.
type Gateway struct {
	registry discovery.Registry
}

// New creates a new HTTP gateway for the discovery service.
func New(registry discovery.Registry) *Gateway {
	return &Gateway{registry}
}

// FilmDetails returns the catalog view of a film, or gateway.ErrNotFound if
// the film does not exist.
func (g *Gateway) FilmDetails(ctx context.Context, id discoverymodel.FilmID) (discoverymodel.FilmDetails, error) {
	var details discoverymodel.FilmDetails
	addrs, err := g.registry.ServiceAddresses(ctx, "discovery")
	if err != nil {
		return details, err
	}
	url := "http://" + addrs[rand.Intn(len(addrs))] + "/films"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return details, err
	}
	values := req.URL.Query()
	values.Add("id", strconv.FormatInt(int64(id), 10))
	req.URL.RawQuery = values.Encode()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return details, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return details, gateway.ErrNotFound
	}
	if resp.StatusCode/100 != 2 {
		return details, fmt.Errorf("non-2xx response: %v", resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return details, err
	}
	return details, nil
}
