package filmpage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	discoverymodel "github.com/okovalenko/filmfortoday/discovery/pkg/model"
	"github.com/okovalenko/filmfortoday/filmpage/internal/gateway"
	ratingmodel "github.com/okovalenko/filmfortoday/rating/pkg/model"
)

type fakeDiscoveryGateway struct {
	details discoverymodel.FilmDetails
	err     error
}

func (g fakeDiscoveryGateway) FilmDetails(_ context.Context, _ discoverymodel.FilmID) (discoverymodel.FilmDetails, error) {
	return g.details, g.err
}

type fakeRatingGateway struct {
	rating    ratingmodel.RatingValue
	ratingErr error
	moods     []ratingmodel.MoodTagID
	moodsErr  error
}

func (g fakeRatingGateway) GetUserRating(_ context.Context, _ ratingmodel.UserID, _ ratingmodel.FilmID) (ratingmodel.RatingValue, error) {
	return g.rating, g.ratingErr
}

func (g fakeRatingGateway) GetUserMoodTags(_ context.Context, _ ratingmodel.UserID, _ ratingmodel.FilmID) ([]ratingmodel.MoodTagID, error) {
	return g.moods, g.moodsErr
}

func TestGet(t *testing.T) {
	details := discoverymodel.FilmDetails{
		Film:   discoverymodel.Film{ID: 10, Name: "Heat"},
		Genres: []string{"Thriller"},
	}
	c := New(
		fakeDiscoveryGateway{details: details},
		fakeRatingGateway{rating: 4, moods: []ratingmodel.MoodTagID{2, 3}},
	)

	page, err := c.Get(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, details, page.Details)
	require.NotNil(t, page.UserRating)
	assert.Equal(t, ratingmodel.RatingValue(4), *page.UserRating)
	assert.Equal(t, []ratingmodel.MoodTagID{2, 3}, page.UserMoods)
}

func TestGetFilmNotFound(t *testing.T) {
	c := New(fakeDiscoveryGateway{err: gateway.ErrNotFound}, fakeRatingGateway{})

	_, err := c.Get(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetNoUserRating(t *testing.T) {
	c := New(
		fakeDiscoveryGateway{details: discoverymodel.FilmDetails{Film: discoverymodel.Film{ID: 10}}},
		fakeRatingGateway{ratingErr: gateway.ErrNotFound},
	)

	page, err := c.Get(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Nil(t, page.UserRating)
}

func TestGetRatingGatewayFault(t *testing.T) {
	fault := errors.New("rating service unavailable")
	c := New(
		fakeDiscoveryGateway{details: discoverymodel.FilmDetails{Film: discoverymodel.Film{ID: 10}}},
		fakeRatingGateway{ratingErr: fault},
	)

	_, err := c.Get(context.Background(), 10, 1)
	assert.ErrorIs(t, err, fault)
}
