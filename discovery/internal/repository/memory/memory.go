// Package memory implements the discovery store contract in process. It
// mirrors the mysql repository's query semantics so controllers and handlers
// can be exercised without a database.
package memory

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"

	"github.com/okovalenko/filmfortoday/discovery/internal/facets"
	"github.com/okovalenko/filmfortoday/discovery/internal/repository"
	"github.com/okovalenko/filmfortoday/discovery/internal/search"
	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

const tracerID = "discovery-repository-memory"

// Offer is one platform entry for a film.
type Offer struct {
	PlatformID int64
	Platform   string
	AccessType string
	Price      float64
}

// Repository holds the catalog, ratings and mood votes behind a single lock.
type Repository struct {
	sync.RWMutex
	films        map[model.FilmID]model.Film
	filmGenres   map[model.FilmID][]int64
	filmOffers   map[model.FilmID][]Offer
	ratings      map[model.UserID]map[model.FilmID]int
	moodVotes    map[model.FilmID]map[model.MoodTagID]int
	genres       []model.Genre
	platforms    []model.Platform
	moodTagsDict []model.MoodTag
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{
		films:      map[model.FilmID]model.Film{},
		filmGenres: map[model.FilmID][]int64{},
		filmOffers: map[model.FilmID][]Offer{},
		ratings:    map[model.UserID]map[model.FilmID]int{},
		moodVotes:  map[model.FilmID]map[model.MoodTagID]int{},
	}
}

// AddFilm registers a film with its genre ids and platform offers.
func (r *Repository) AddFilm(f model.Film, genreIDs []int64, offers []Offer) {
	r.Lock()
	defer r.Unlock()
	r.films[f.ID] = f
	r.filmGenres[f.ID] = genreIDs
	r.filmOffers[f.ID] = offers
}

// SetRating stores a star rating, overwriting any prior value.
func (r *Repository) SetRating(userID model.UserID, filmID model.FilmID, value int) {
	r.Lock()
	defer r.Unlock()
	if r.ratings[userID] == nil {
		r.ratings[userID] = map[model.FilmID]int{}
	}
	r.ratings[userID][filmID] = value
}

// AddMoodVotes records n votes for a tag on a film.
func (r *Repository) AddMoodVotes(filmID model.FilmID, tagID model.MoodTagID, n int) {
	r.Lock()
	defer r.Unlock()
	if r.moodVotes[filmID] == nil {
		r.moodVotes[filmID] = map[model.MoodTagID]int{}
	}
	r.moodVotes[filmID][tagID] += n
}

// SetDictionaries seeds the genre, platform and mood-tag dictionaries.
func (r *Repository) SetDictionaries(genres []model.Genre, platforms []model.Platform, tags []model.MoodTag) {
	r.Lock()
	defer r.Unlock()
	r.genres = genres
	r.platforms = platforms
	r.moodTagsDict = tags
}

// UserHasRatings reports whether the user rated anything.
func (r *Repository) UserHasRatings(ctx context.Context, userID model.UserID) (bool, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/UserHasRatings")
	defer span.End()

	return len(r.ratings[userID]) > 0, nil
}

// ItemBasedCandidates replays the collaborative chain: the user's highly
// rated films, peers who also liked them, and the peer set's other liked
// films counted by occurrence.
func (r *Repository) ItemBasedCandidates(ctx context.Context, userID model.UserID, limit int) ([]model.RecommendationCandidate, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ItemBasedCandidates")
	defer span.End()

	liked := map[model.FilmID]struct{}{}
	for filmID, v := range r.ratings[userID] {
		if v >= 4 {
			liked[filmID] = struct{}{}
		}
	}
	if len(liked) == 0 {
		return nil, nil
	}

	peers := map[model.UserID]struct{}{}
	for uid, films := range r.ratings {
		if uid == userID {
			continue
		}
		for filmID, v := range films {
			if v >= 4 {
				if _, ok := liked[filmID]; ok {
					peers[uid] = struct{}{}
					break
				}
			}
		}
	}

	scores := map[model.FilmID]int{}
	for uid := range peers {
		for filmID, v := range r.ratings[uid] {
			if v < 4 {
				continue
			}
			if _, rated := r.ratings[userID][filmID]; rated {
				continue
			}
			scores[filmID]++
		}
	}

	candidates := make([]model.RecommendationCandidate, 0, len(scores))
	for filmID, score := range scores {
		f, ok := r.films[filmID]
		if !ok {
			continue
		}
		candidates = append(candidates, model.RecommendationCandidate{Film: f, Score: score})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Film.ID < candidates[j].Film.ID
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// TopRatedFilms ranks the catalog by average rating, vote count and release
// year, all descending.
func (r *Repository) TopRatedFilms(ctx context.Context, limit int) ([]model.Film, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/TopRatedFilms")
	defer span.End()

	films := r.rankedFilms(nil)
	if len(films) > limit {
		films = films[:limit]
	}
	return films, nil
}

// MoodTagCounts tallies votes for one tag per film. A nil id set means the
// whole catalog; films without any mood votes are omitted, matching the SQL
// GROUP BY over the vote table.
func (r *Repository) MoodTagCounts(ctx context.Context, tagID model.MoodTagID, filmIDs []model.FilmID) ([]model.MoodTagCount, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/MoodTagCounts")
	defer span.End()

	var restrict map[model.FilmID]struct{}
	if filmIDs != nil {
		restrict = make(map[model.FilmID]struct{}, len(filmIDs))
		for _, id := range filmIDs {
			restrict[id] = struct{}{}
		}
	}

	counts := []model.MoodTagCount{}
	for filmID, votes := range r.moodVotes {
		if restrict != nil {
			if _, ok := restrict[filmID]; !ok {
				continue
			}
		}
		total := 0
		for _, n := range votes {
			total += n
		}
		if total == 0 {
			continue
		}
		counts = append(counts, model.MoodTagCount{
			FilmID:   filmID,
			TagCount: votes[tagID],
			Total:    total,
		})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].FilmID < counts[j].FilmID })
	return counts, nil
}

// FilmSummaries resolves films by id, keeping the id order.
func (r *Repository) FilmSummaries(ctx context.Context, ids []model.FilmID) ([]model.Film, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/FilmSummaries")
	defer span.End()

	films := make([]model.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := r.films[id]; ok {
			films = append(films, f)
		}
	}
	return films, nil
}

// Search applies the facet filter with the same semantics the composed SQL
// has, including the fixed result ordering.
func (r *Repository) Search(ctx context.Context, filter model.FacetFilter) ([]model.Film, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Search")
	defer span.End()

	films := r.rankedFilms(func(f model.Film) bool { return r.matches(f, filter) })
	if len(films) > search.ResultLimit {
		films = films[:search.ResultLimit]
	}
	return films, nil
}

// SuggestByName matches film names by case-insensitive substring.
func (r *Repository) SuggestByName(ctx context.Context, query string) ([]model.Film, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/SuggestByName")
	defer span.End()

	q := strings.ToLower(query)
	films := []model.Film{}
	for _, f := range r.films {
		if strings.Contains(strings.ToLower(f.Name), q) {
			films = append(films, f)
		}
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

// Genres returns the genre dictionary sorted by name.
func (r *Repository) Genres(ctx context.Context) ([]model.Genre, error) {
	r.RLock()
	defer r.RUnlock()
	genres := append([]model.Genre(nil), r.genres...)
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })
	return genres, nil
}

// Platforms returns the platform dictionary sorted by name.
func (r *Repository) Platforms(ctx context.Context) ([]model.Platform, error) {
	r.RLock()
	defer r.RUnlock()
	platforms := append([]model.Platform(nil), r.platforms...)
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].Name < platforms[j].Name })
	return platforms, nil
}

// MoodTags returns the mood tag dictionary.
func (r *Repository) MoodTags(ctx context.Context) ([]model.MoodTag, error) {
	r.RLock()
	defer r.RUnlock()
	return append([]model.MoodTag(nil), r.moodTagsDict...), nil
}

// CountryStrings returns the distinct raw country strings, ascending.
func (r *Repository) CountryStrings(ctx context.Context) ([]string, error) {
	r.RLock()
	defer r.RUnlock()
	seen := map[string]struct{}{}
	for _, f := range r.films {
		if f.Country != "" {
			seen[f.Country] = struct{}{}
		}
	}
	countries := make([]string, 0, len(seen))
	for c := range seen {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries, nil
}

// DurationStrings returns every non-empty raw duration string.
func (r *Repository) DurationStrings(ctx context.Context) ([]string, error) {
	r.RLock()
	defer r.RUnlock()
	ids := r.sortedFilmIDs()
	durations := []string{}
	for _, id := range ids {
		if d := r.films[id].Duration; d != "" {
			durations = append(durations, d)
		}
	}
	return durations, nil
}

// ReleaseYears returns the distinct numeric release years, descending.
func (r *Repository) ReleaseYears(ctx context.Context) ([]int, error) {
	r.RLock()
	defer r.RUnlock()
	seen := map[int]struct{}{}
	for _, f := range r.films {
		if y := leadingYear(f.ReleaseYear); y > 0 {
			seen[y] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// FilmDetails assembles the film page aggregate for one film.
func (r *Repository) FilmDetails(ctx context.Context, id model.FilmID) (*model.FilmDetails, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/FilmDetails")
	defer span.End()

	f, ok := r.films[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	genreNames := []string{}
	for _, gid := range r.filmGenres[id] {
		for _, g := range r.genres {
			if g.ID == gid {
				genreNames = append(genreNames, g.Name)
			}
		}
	}

	prices := []model.FilmPrice{}
	for _, o := range r.filmOffers[id] {
		prices = append(prices, model.FilmPrice{Platform: o.Platform, AccessType: o.AccessType, Price: o.Price})
	}

	avg, votes := r.filmRating(id)

	moods := []model.FilmMood{}
	for tagID, n := range r.moodVotes[id] {
		name, emoji := "", ""
		for _, t := range r.moodTagsDict {
			if t.ID == tagID {
				name, emoji = t.Name, t.Emoji
			}
		}
		moods = append(moods, model.FilmMood{Name: name, Emoji: emoji, TagCount: n})
	}
	sort.Slice(moods, func(i, j int) bool {
		if moods[i].TagCount != moods[j].TagCount {
			return moods[i].TagCount > moods[j].TagCount
		}
		return moods[i].Name < moods[j].Name
	})
	if len(moods) > 3 {
		moods = moods[:3]
	}

	return &model.FilmDetails{
		Film:     f,
		Genres:   genreNames,
		Prices:   prices,
		Rating:   model.FilmRating{AvgRating: avg, VoteCount: votes},
		TopMoods: moods,
	}, nil
}

// rankedFilms returns films passing keep (nil keeps all) with avg rating and
// vote count filled in, ordered by the fixed search contract.
func (r *Repository) rankedFilms(keep func(model.Film) bool) []model.Film {
	films := []model.Film{}
	for _, id := range r.sortedFilmIDs() {
		f := r.films[id]
		if keep != nil && !keep(f) {
			continue
		}
		f.AvgRating, f.VoteCount = r.filmRating(id)
		films = append(films, f)
	}
	sort.SliceStable(films, func(i, j int) bool {
		if films[i].AvgRating != films[j].AvgRating {
			return films[i].AvgRating > films[j].AvgRating
		}
		if films[i].VoteCount != films[j].VoteCount {
			return films[i].VoteCount > films[j].VoteCount
		}
		return leadingYear(films[i].ReleaseYear) > leadingYear(films[j].ReleaseYear)
	})
	return films
}

func (r *Repository) sortedFilmIDs() []model.FilmID {
	ids := make([]model.FilmID, 0, len(r.films))
	for id := range r.films {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *Repository) filmRating(id model.FilmID) (float64, int) {
	sum, n := 0, 0
	for _, films := range r.ratings {
		if v, ok := films[id]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return float64(sum) / float64(n), n
}

func (r *Repository) matches(f model.Film, filter model.FacetFilter) bool {
	if filter.GenreID != nil && !containsInt64(r.filmGenres[f.ID], *filter.GenreID) {
		return false
	}
	if filter.PriceType != nil {
		switch *filter.PriceType {
		case model.PriceTypeSubscription:
			if !r.hasOffer(f.ID, func(o Offer) bool { return o.AccessType == "Subscription" }) {
				return false
			}
		case model.PriceTypeFree:
			if !r.hasOffer(f.ID, func(o Offer) bool { return o.AccessType == "Free" }) {
				return false
			}
		case model.PriceTypeRent:
			if !r.hasOffer(f.ID, func(o Offer) bool {
				return strings.HasPrefix(o.AccessType, "Rent") || strings.HasPrefix(o.AccessType, "Rental")
			}) {
				return false
			}
		}
		// Unknown price types constrain nothing.
	}
	if filter.PlatformID != nil {
		if !r.hasOffer(f.ID, func(o Offer) bool { return o.PlatformID == *filter.PlatformID }) {
			return false
		}
	}
	if filter.Query != nil {
		if !strings.Contains(strings.ToLower(f.Name), strings.ToLower(*filter.Query)) {
			return false
		}
	}
	if filter.YearFrom != nil && leadingYear(f.ReleaseYear) < *filter.YearFrom {
		return false
	}
	if filter.YearTo != nil && leadingYear(f.ReleaseYear) > *filter.YearTo {
		return false
	}
	if filter.Country != nil && !strings.Contains(f.Country, *filter.Country) {
		return false
	}
	if filter.DurationMax != nil {
		d := facets.DurationMinutes(f.Duration)
		if d == 0 || d > *filter.DurationMax {
			return false
		}
	}
	if filter.IMDBMin != nil && f.IMDBRating < *filter.IMDBMin {
		return false
	}
	return true
}

func (r *Repository) hasOffer(id model.FilmID, match func(Offer) bool) bool {
	for _, o := range r.filmOffers[id] {
		if match(o) {
			return true
		}
	}
	return false
}

func containsInt64(s []int64, v int64) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

var leadingYearRE = regexp.MustCompile(`^\d+`)

// leadingYear mirrors MySQL's numeric coercion of the release_year text
// column: "2010-2012" compares as 2010.
func leadingYear(raw string) int {
	m := leadingYearRE.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}
