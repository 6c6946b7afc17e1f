// Package mysql implements the discovery store contract on MySQL.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

// Repository defines a MySQL-based discovery repository.
type Repository struct {
	db *sql.DB
}

// New creates a new MySQL-based repository.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &Repository{db}, nil
}

// UserHasRatings reports whether the user has at least one stored rating.
func (r *Repository) UserHasRatings(ctx context.Context, userID model.UserID) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM ratings WHERE user_id = ? LIMIT 1", userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ItemBasedCandidates runs the collaborative chain in one statement: the
// user's highly rated films, the distinct peers who also rated them highly,
// and the peer set's other liked films counted by occurrence.
func (r *Repository) ItemBasedCandidates(ctx context.Context, userID model.UserID, limit int) ([]model.RecommendationCandidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		WITH target_user_high_ratings AS (
			SELECT film_id FROM ratings WHERE user_id = ? AND rating >= 4
		),
		users_who_liked_same_films AS (
			SELECT DISTINCT user_id FROM ratings
			WHERE film_id IN (SELECT film_id FROM target_user_high_ratings)
			AND rating >= 4
			AND user_id != ?
		),
		recommended_items AS (
			SELECT r.film_id, COUNT(r.film_id) AS recommendation_score
			FROM ratings r
			JOIN users_who_liked_same_films u ON r.user_id = u.user_id
			WHERE r.rating >= 4
			AND r.film_id NOT IN (SELECT film_id FROM ratings WHERE user_id = ?)
			GROUP BY r.film_id
		)
		SELECT f.id, f.name, f.poster_url, ri.recommendation_score
		FROM recommended_items ri
		JOIN films f ON ri.film_id = f.id
		ORDER BY ri.recommendation_score DESC
		LIMIT ?`,
		userID, userID, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []model.RecommendationCandidate
	for rows.Next() {
		var c model.RecommendationCandidate
		if err := rows.Scan(&c.Film.ID, &c.Film.Name, &c.Film.PosterURL, &c.Score); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// TopRatedFilms returns the globally ranked list by community rating.
func (r *Repository) TopRatedFilms(ctx context.Context, limit int) ([]model.Film, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.name, f.poster_url,
			COALESCE(AVG(rt.rating), 0) AS avg_rating,
			COUNT(rt.rating) AS vote_count
		FROM films f
		LEFT JOIN ratings rt ON f.id = rt.film_id
		GROUP BY f.id, f.name, f.poster_url
		ORDER BY avg_rating DESC, vote_count DESC, CAST(f.release_year AS SIGNED) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []model.Film
	for rows.Next() {
		var f model.Film
		if err := rows.Scan(&f.ID, &f.Name, &f.PosterURL, &f.AvgRating, &f.VoteCount); err != nil {
			return nil, err
		}
		films = append(films, f)
	}
	return films, rows.Err()
}

// MoodTagCounts tallies one tag's votes against each film's total mood votes.
// A nil film id set tallies the whole vote table.
func (r *Repository) MoodTagCounts(ctx context.Context, tagID model.MoodTagID, filmIDs []model.FilmID) ([]model.MoodTagCount, error) {
	query := `
		SELECT film_id,
			SUM(CASE WHEN mood_tag_id = ? THEN 1 ELSE 0 END) AS tag_count,
			COUNT(*) AS total
		FROM film_mood_ratings`
	args := []interface{}{tagID}
	if filmIDs != nil {
		if len(filmIDs) == 0 {
			return nil, nil
		}
		query += " WHERE film_id IN (" + placeholders(len(filmIDs)) + ")"
		for _, id := range filmIDs {
			args = append(args, id)
		}
	}
	query += " GROUP BY film_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.MoodTagCount
	for rows.Next() {
		var c model.MoodTagCount
		if err := rows.Scan(&c.FilmID, &c.TagCount, &c.Total); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// FilmSummaries resolves films by id, preserving the order of ids.
func (r *Repository) FilmSummaries(ctx context.Context, ids []model.FilmID) ([]model.Film, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, poster_url FROM films WHERE id IN ("+placeholders(len(ids))+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[model.FilmID]model.Film, len(ids))
	for rows.Next() {
		var f model.Film
		if err := rows.Scan(&f.ID, &f.Name, &f.PosterURL); err != nil {
			return nil, err
		}
		byID[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	films := make([]model.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			films = append(films, f)
		}
	}
	return films, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func scanNullableFloat(s sql.NullString) float64 {
	if !s.Valid {
		return 0
	}
	var v float64
	if _, err := fmt.Sscanf(strings.TrimSpace(s.String), "%f", &v); err != nil {
		return 0
	}
	return v
}
