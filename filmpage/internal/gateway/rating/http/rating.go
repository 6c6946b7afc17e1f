// Package http provides an HTTP gateway to the rating service.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/okovalenko/filmfortoday/filmpage/internal/gateway"
	"github.com/okovalenko/filmfortoday/pkg/discovery"
	ratingmodel "github.com/okovalenko/filmfortoday/rating/pkg/model"
)

// Gateway defines an HTTP gateway for the rating service.
type Gateway struct {
	registry discovery.Registry
}

// New creates a new HTTP gateway for the rating service.
func New(registry discovery.Registry) *Gateway {
	return &Gateway{registry}
}

func (g *Gateway) request(ctx context.Context, path string, userID ratingmodel.UserID, filmID ratingmodel.FilmID) (*http.Response, error) {
	addrs, err := g.registry.ServiceAddresses(ctx, "rating")
	if err != nil {
		return nil, err
	}
	url := "http://" + addrs[rand.Intn(len(addrs))] + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	values := req.URL.Query()
	values.Add("userId", strconv.FormatInt(int64(userID), 10))
	values.Add("filmId", strconv.FormatInt(int64(filmID), 10))
	req.URL.RawQuery = values.Encode()
	return http.DefaultClient.Do(req)
}

// GetUserRating returns the user's stored rating for a film, or
// gateway.ErrNotFound if the user has not rated it.
func (g *Gateway) GetUserRating(ctx context.Context, userID ratingmodel.UserID, filmID ratingmodel.FilmID) (ratingmodel.RatingValue, error) {
	resp, err := g.request(ctx, "/rating", userID, filmID)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return 0, gateway.ErrNotFound
	}
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("non-2xx response: %v", resp)
	}
	var v ratingmodel.RatingValue
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return 0, err
	}
	return v, nil
}

// GetUserMoodTags returns the user's active mood tag set for a film.
func (g *Gateway) GetUserMoodTags(ctx context.Context, userID ratingmodel.UserID, filmID ratingmodel.FilmID) ([]ratingmodel.MoodTagID, error) {
	resp, err := g.request(ctx, "/rating/moods", userID, filmID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("non-2xx response: %v", resp)
	}
	var body struct {
		MoodTagIDs []ratingmodel.MoodTagID `json:"moodTagIds"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.MoodTagIDs, nil
}
