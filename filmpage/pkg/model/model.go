package model

import (
	discoverymodel "github.com/okovalenko/filmfortoday/discovery/pkg/model"
	ratingmodel "github.com/okovalenko/filmfortoday/rating/pkg/model"
)

// FilmPage aggregates the catalog view of a film with the viewer's own
// rating and mood votes. UserRating is nil when the viewer has not rated
// the film.
type FilmPage struct {
	Details    discoverymodel.FilmDetails `json:"details"`
	UserRating *ratingmodel.RatingValue   `json:"userRating,omitempty"`
	UserMoods  []ratingmodel.MoodTagID    `json:"userMoodTagIds,omitempty"`
}
