package mysql

import (
	"context"
	"database/sql"

	"github.com/okovalenko/filmfortoday/discovery/internal/repository"
	"github.com/okovalenko/filmfortoday/discovery/internal/search"
	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

// Search executes the composed facet query. The composer owns predicate and
// parameter ordering; this method only runs the statement and scans.
func (r *Repository) Search(ctx context.Context, filter model.FacetFilter) ([]model.Film, error) {
	q := search.Compose(filter)
	rows, err := r.db.QueryContext(ctx, q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []model.Film
	for rows.Next() {
		var f model.Film
		var imdb, year, country, duration sql.NullString
		if err := rows.Scan(&f.ID, &f.Name, &f.PosterURL, &imdb, &year, &country, &duration, &f.AvgRating, &f.VoteCount); err != nil {
			return nil, err
		}
		f.IMDBRating = scanNullableFloat(imdb)
		f.ReleaseYear = year.String
		f.Country = country.String
		f.Duration = duration.String
		films = append(films, f)
	}
	return films, rows.Err()
}

// SuggestByName matches film names by substring.
func (r *Repository) SuggestByName(ctx context.Context, query string) ([]model.Film, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, poster_url FROM films WHERE name LIKE ?", "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []model.Film
	for rows.Next() {
		var f model.Film
		if err := rows.Scan(&f.ID, &f.Name, &f.PosterURL); err != nil {
			return nil, err
		}
		films = append(films, f)
	}
	return films, rows.Err()
}

// Genres returns the genre dictionary sorted by name.
func (r *Repository) Genres(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT genre_id, name FROM genre ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// Platforms returns the platform dictionary sorted by name.
func (r *Repository) Platforms(ctx context.Context) ([]model.Platform, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT platform_id, name FROM platform ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var platforms []model.Platform
	for rows.Next() {
		var p model.Platform
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}

// MoodTags returns the mood tag dictionary.
func (r *Repository) MoodTags(ctx context.Context) ([]model.MoodTag, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT mood_tag_id, name, emoji FROM mood_tags")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []model.MoodTag
	for rows.Next() {
		var t model.MoodTag
		var emoji sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &emoji); err != nil {
			return nil, err
		}
		t.Emoji = emoji.String
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// CountryStrings returns the distinct raw country strings for facet
// normalization.
func (r *Repository) CountryStrings(ctx context.Context) ([]string, error) {
	return r.stringColumn(ctx,
		"SELECT DISTINCT country FROM films WHERE country IS NOT NULL AND country != '' ORDER BY country ASC")
}

// DurationStrings returns every raw duration string for range derivation.
func (r *Repository) DurationStrings(ctx context.Context) ([]string, error) {
	return r.stringColumn(ctx,
		"SELECT duration FROM films WHERE duration IS NOT NULL AND duration != ''")
}

// ReleaseYears returns the distinct numeric release years, newest first.
func (r *Repository) ReleaseYears(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT CONVERT(release_year, SIGNED) AS year FROM films
		WHERE release_year IS NOT NULL AND release_year != ''
		ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// FilmDetails assembles the film page aggregate: the film row, its genres,
// platform prices, community rating and top-3 mood tags.
func (r *Repository) FilmDetails(ctx context.Context, id model.FilmID) (*model.FilmDetails, error) {
	var d model.FilmDetails
	var imdb, year, country, duration sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, poster_url, imdb_rating, release_year, country, duration FROM films WHERE id = ?", id).
		Scan(&d.Film.ID, &d.Film.Name, &d.Film.PosterURL, &imdb, &year, &country, &duration)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.Film.IMDBRating = scanNullableFloat(imdb)
	d.Film.ReleaseYear = year.String
	d.Film.Country = country.String
	d.Film.Duration = duration.String

	if d.Genres, err = r.filmGenres(ctx, id); err != nil {
		return nil, err
	}
	if d.Prices, err = r.filmPrices(ctx, id); err != nil {
		return nil, err
	}
	if err = r.db.QueryRowContext(ctx,
		"SELECT COALESCE(AVG(rating), 0), COUNT(rating) FROM ratings WHERE film_id = ?", id).
		Scan(&d.Rating.AvgRating, &d.Rating.VoteCount); err != nil {
		return nil, err
	}
	if d.TopMoods, err = r.topFilmMoods(ctx, id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) filmGenres(ctx context.Context, id model.FilmID) ([]string, error) {
	return r.stringColumn(ctx,
		"SELECT g.name FROM genre g JOIN film_genre fg ON g.genre_id = fg.genre_id WHERE fg.film_id = ?", id)
}

func (r *Repository) filmPrices(ctx context.Context, id model.FilmID) ([]model.FilmPrice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.name, fp.access_type, COALESCE(fp.price, 0)
		FROM platform p
		JOIN film_platform fp ON p.platform_id = fp.platform_id
		WHERE fp.film_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []model.FilmPrice
	for rows.Next() {
		var p model.FilmPrice
		if err := rows.Scan(&p.Platform, &p.AccessType, &p.Price); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func (r *Repository) topFilmMoods(ctx context.Context, id model.FilmID) ([]model.FilmMood, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT mt.name, COALESCE(mt.emoji, ''), COUNT(fmr.mood_tag_id) AS tag_count
		FROM film_mood_ratings fmr
		JOIN mood_tags mt ON fmr.mood_tag_id = mt.mood_tag_id
		WHERE fmr.film_id = ?
		GROUP BY fmr.mood_tag_id, mt.name, mt.emoji
		ORDER BY tag_count DESC
		LIMIT 3`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moods []model.FilmMood
	for rows.Next() {
		var m model.FilmMood
		if err := rows.Scan(&m.Name, &m.Emoji, &m.TagCount); err != nil {
			return nil, err
		}
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

func (r *Repository) stringColumn(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
