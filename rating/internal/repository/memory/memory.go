// Package memory implements the rating store in process.
package memory

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"

	"github.com/okovalenko/filmfortoday/rating/internal/repository"
	"github.com/okovalenko/filmfortoday/rating/pkg/model"
)

const tracerID = "rating-repository-memory"

type pair struct {
	userID model.UserID
	filmID model.FilmID
}

// Repository defines an in-memory rating repository.
type Repository struct {
	sync.RWMutex
	ratings   map[pair]model.RatingValue
	moodVotes map[pair][]model.MoodTagID
}

// New creates a new in-memory rating repository.
func New() *Repository {
	return &Repository{
		ratings:   map[pair]model.RatingValue{},
		moodVotes: map[pair][]model.MoodTagID{},
	}
}

// Get retrieves the user's rating for a film.
func (r *Repository) Get(ctx context.Context, userID model.UserID, filmID model.FilmID) (model.RatingValue, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	v, ok := r.ratings[pair{userID, filmID}]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return v, nil
}

// Put stores a rating, overwriting any prior value for the pair.
func (r *Repository) Put(ctx context.Context, rating model.Rating) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	r.ratings[pair{rating.UserID, rating.FilmID}] = rating.Value
	return nil
}

// Delete removes the user's rating for a film. Deleting a missing rating is
// not an error.
func (r *Repository) Delete(ctx context.Context, userID model.UserID, filmID model.FilmID) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()

	delete(r.ratings, pair{userID, filmID})
	return nil
}

// UserMoodTags returns the user's active mood tag set for a film.
func (r *Repository) UserMoodTags(ctx context.Context, userID model.UserID, filmID model.FilmID) ([]model.MoodTagID, error) {
	r.RLock()
	defer r.RUnlock()
	return append([]model.MoodTagID(nil), r.moodVotes[pair{userID, filmID}]...), nil
}

// ReplaceMoodVotes swaps the user's full vote set for a film atomically.
func (r *Repository) ReplaceMoodVotes(ctx context.Context, userID model.UserID, filmID model.FilmID, tagIDs []model.MoodTagID) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ReplaceMoodVotes")
	defer span.End()

	k := pair{userID, filmID}
	if len(tagIDs) == 0 {
		delete(r.moodVotes, k)
		return nil
	}
	r.moodVotes[k] = append([]model.MoodTagID(nil), tagIDs...)
	return nil
}
