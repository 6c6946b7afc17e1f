package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/okovalenko/filmfortoday/discovery/internal/facets"
	"github.com/okovalenko/filmfortoday/discovery/internal/mood"
	"github.com/okovalenko/filmfortoday/discovery/internal/repository"
	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

// ErrNotFound is returned when a requested film does not exist.
var ErrNotFound = errors.New("not found")

// Page titles name which branch of the fallback cascade produced the result.
// The two fallback transitions stay distinct: running out of personalized
// candidates and running out of mood matches carry different titles.
const (
	titlePersonalized = "Recommended for you"
	titleTopOverall   = "Most popular on FilmForToday"
	titleTopForMood   = "Most popular for this mood"
	titleMoodMatched  = "Personalized by mood"
)

// candidateLimit caps the item-based collaborative candidate set.
const candidateLimit = 20

type ratingRepository interface {
	UserHasRatings(ctx context.Context, userID model.UserID) (bool, error)
}

type recommendationRepository interface {
	// ItemBasedCandidates returns films liked by peers of the user, scored by
	// peer occurrence count, ordered by score descending, capped by limit.
	ItemBasedCandidates(ctx context.Context, userID model.UserID, limit int) ([]model.RecommendationCandidate, error)
}

type topFilmsRepository interface {
	// TopRatedFilms returns the globally ranked list: average rating
	// descending, vote count descending, release year descending.
	TopRatedFilms(ctx context.Context, limit int) ([]model.Film, error)
}

type moodRepository interface {
	// MoodTagCounts returns per-film tag and total mood vote counts for one
	// tag. A nil film id set means the whole catalog.
	MoodTagCounts(ctx context.Context, tagID model.MoodTagID, filmIDs []model.FilmID) ([]model.MoodTagCount, error)
	// FilmSummaries resolves films by id, preserving the order of ids.
	FilmSummaries(ctx context.Context, ids []model.FilmID) ([]model.Film, error)
}

type catalogRepository interface {
	Search(ctx context.Context, filter model.FacetFilter) ([]model.Film, error)
	SuggestByName(ctx context.Context, query string) ([]model.Film, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Platforms(ctx context.Context) ([]model.Platform, error)
	MoodTags(ctx context.Context) ([]model.MoodTag, error)
	CountryStrings(ctx context.Context) ([]string, error)
	DurationStrings(ctx context.Context) ([]string, error)
	ReleaseYears(ctx context.Context) ([]int, error)
	FilmDetails(ctx context.Context, id model.FilmID) (*model.FilmDetails, error)
}

// Controller is the discovery engine. It is stateless across requests; all
// state lives in the rating and catalog store behind the repositories.
type Controller struct {
	ratings ratingRepository
	recs    recommendationRepository
	top     topFilmsRepository
	moods   moodRepository
	catalog catalogRepository
}

// New creates a discovery controller.
func New(ratings ratingRepository, recs recommendationRepository, top topFilmsRepository, moods moodRepository, catalog catalogRepository) *Controller {
	return &Controller{ratings: ratings, recs: recs, top: top, moods: moods, catalog: catalog}
}

// Recommendations produces the discovery set for a user, optionally narrowed
// by a mood tag. Every empty stage resolves through the fallback cascade; a
// store error aborts the request and propagates to the caller.
func (c *Controller) Recommendations(ctx context.Context, userID model.UserID, moodTagID *model.MoodTagID) (*model.Recommendation, error) {
	hasRatings, err := c.ratings.UserHasRatings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checking rating history: %w", err)
	}

	// Cold start: nothing to personalize on.
	if !hasRatings {
		if moodTagID != nil {
			films, err := c.topFilmsByMood(ctx, *moodTagID)
			if err != nil {
				return nil, err
			}
			return &model.Recommendation{PageTitle: titleTopForMood, Films: films}, nil
		}
		films, err := c.top.TopRatedFilms(ctx, mood.TopLimit)
		if err != nil {
			return nil, fmt.Errorf("fetching top rated films: %w", err)
		}
		return &model.Recommendation{PageTitle: titleTopOverall, Films: films}, nil
	}

	candidates, err := c.recs.ItemBasedCandidates(ctx, userID, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("computing item-based candidates: %w", err)
	}

	films := make([]model.Film, len(candidates))
	for i, cand := range candidates {
		films[i] = cand.Film
	}
	title := titlePersonalized

	// First fallback: the collaborative query found no peers worth trusting.
	if len(films) == 0 {
		films, err = c.top.TopRatedFilms(ctx, mood.TopLimit)
		if err != nil {
			return nil, fmt.Errorf("fetching top rated films: %w", err)
		}
		title = titleTopOverall
	}

	if moodTagID == nil {
		return &model.Recommendation{PageTitle: title, Films: films}, nil
	}

	// Narrow the (possibly fallback) candidate set by mood relevance.
	ids := make([]model.FilmID, len(films))
	byID := make(map[model.FilmID]model.Film, len(films))
	for i, f := range films {
		ids[i] = f.ID
		byID[f.ID] = f
	}
	counts, err := c.moods.MoodTagCounts(ctx, *moodTagID, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching mood counts: %w", err)
	}
	matched := make([]model.Film, 0, len(films))
	for _, id := range mood.Relevant(counts) {
		if f, ok := byID[id]; ok {
			matched = append(matched, f)
		}
	}
	if len(matched) > 0 {
		return &model.Recommendation{PageTitle: titleMoodMatched, Films: matched}, nil
	}

	// Second fallback: none of the candidates carry the mood, fall back to
	// the global mood ranking.
	films, err = c.topFilmsByMood(ctx, *moodTagID)
	if err != nil {
		return nil, err
	}
	return &model.Recommendation{PageTitle: titleTopForMood, Films: films}, nil
}

func (c *Controller) topFilmsByMood(ctx context.Context, tagID model.MoodTagID) ([]model.Film, error) {
	counts, err := c.moods.MoodTagCounts(ctx, tagID, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching mood counts: %w", err)
	}
	ids := mood.Top(counts)
	if len(ids) == 0 {
		return []model.Film{}, nil
	}
	films, err := c.moods.FilmSummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving mood films: %w", err)
	}
	return films, nil
}

// Search runs the composed multi-facet query. Identical filters on an
// unchanged store return identical ordered results.
func (c *Controller) Search(ctx context.Context, filter model.FacetFilter) ([]model.Film, error) {
	films, err := c.catalog.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	return films, nil
}

// Suggest returns films whose name contains the query. Queries that fail the
// sanity check yield an empty list rather than an error.
func (c *Controller) Suggest(ctx context.Context, query string) ([]model.Film, error) {
	if !facets.IsValidSearchQuery(query) {
		return []model.Film{}, nil
	}
	films, err := c.catalog.SuggestByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("suggesting films: %w", err)
	}
	return films, nil
}

// Facets assembles every filter dictionary the search page offers, deriving
// the country list and duration range from raw catalog strings.
func (c *Controller) Facets(ctx context.Context) (*model.Facets, error) {
	genres, err := c.catalog.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching genres: %w", err)
	}
	countries, err := c.catalog.CountryStrings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching countries: %w", err)
	}
	years, err := c.catalog.ReleaseYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching years: %w", err)
	}
	durations, err := c.catalog.DurationStrings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching durations: %w", err)
	}
	platforms, err := c.catalog.Platforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching platforms: %w", err)
	}
	tags, err := c.catalog.MoodTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching mood tags: %w", err)
	}
	return &model.Facets{
		Genres:    genres,
		Countries: facets.NormalizeCountries(countries),
		Years:     years,
		Duration:  facets.DurationRange(durations),
		Platforms: platforms,
		MoodTags:  tags,
	}, nil
}

// FilmDetails returns everything the film page shows for one film.
func (c *Controller) FilmDetails(ctx context.Context, id model.FilmID) (*model.FilmDetails, error) {
	details, err := c.catalog.FilmDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching film details: %w", err)
	}
	return details, nil
}
