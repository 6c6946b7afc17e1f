package filmpage

import (
	"context"
	"errors"

	discoverymodel "github.com/okovalenko/filmfortoday/discovery/pkg/model"
	"github.com/okovalenko/filmfortoday/filmpage/internal/gateway"
	"github.com/okovalenko/filmfortoday/filmpage/pkg/model"
	ratingmodel "github.com/okovalenko/filmfortoday/rating/pkg/model"
)

// ErrNotFound is returned when the film is not in the catalog.
var ErrNotFound = errors.New("film not found")

type discoveryGateway interface {
	FilmDetails(ctx context.Context, id discoverymodel.FilmID) (discoverymodel.FilmDetails, error)
}

type ratingGateway interface {
	GetUserRating(ctx context.Context, userID ratingmodel.UserID, filmID ratingmodel.FilmID) (ratingmodel.RatingValue, error)
	GetUserMoodTags(ctx context.Context, userID ratingmodel.UserID, filmID ratingmodel.FilmID) ([]ratingmodel.MoodTagID, error)
}

// Controller defines a film page service controller.
type Controller struct {
	discoveryGateway discoveryGateway
	ratingGateway    ratingGateway
}

// New creates a new film page service controller.
func New(discoveryGateway discoveryGateway, ratingGateway ratingGateway) *Controller {
	return &Controller{discoveryGateway, ratingGateway}
}

// Get assembles the film page for a viewer. A missing film is ErrNotFound.
// A missing viewer rating leaves UserRating nil, it is not an error.
func (c *Controller) Get(ctx context.Context, filmID discoverymodel.FilmID, userID ratingmodel.UserID) (model.FilmPage, error) {
	var page model.FilmPage
	details, err := c.discoveryGateway.FilmDetails(ctx, filmID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return page, ErrNotFound
		}
		return page, err
	}
	page.Details = details

	v, err := c.ratingGateway.GetUserRating(ctx, userID, ratingmodel.FilmID(filmID))
	switch {
	case err == nil:
		page.UserRating = &v
	case !errors.Is(err, gateway.ErrNotFound):
		return page, err
	}

	moods, err := c.ratingGateway.GetUserMoodTags(ctx, userID, ratingmodel.FilmID(filmID))
	if err != nil {
		return page, err
	}
	page.UserMoods = moods
	return page, nil
}
