// Package mysql implements the rating store on MySQL.
package mysql

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"

	"github.com/okovalenko/filmfortoday/rating/internal/repository"
	"github.com/okovalenko/filmfortoday/rating/pkg/model"
)

// Repository defines a MySQL-based rating repository.
type Repository struct {
	db *sql.DB
}

// New creates a new MySQL-based rating repository.
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

// Get retrieves the user's rating for a film.
func (r *Repository) Get(ctx context.Context, userID model.UserID, filmID model.FilmID) (model.RatingValue, error) {
	var v model.RatingValue
	err := r.db.QueryRowContext(ctx,
		"SELECT rating FROM ratings WHERE user_id = ? AND film_id = ?", userID, filmID).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Put stores a rating, overwriting any prior value for the (user, film)
// pair.
func (r *Repository) Put(ctx context.Context, rating model.Rating) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO ratings (user_id, film_id, rating) VALUES (?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE rating = VALUES(rating)",
		rating.UserID, rating.FilmID, rating.Value)
	return err
}

// Delete removes the user's rating for a film.
func (r *Repository) Delete(ctx context.Context, userID model.UserID, filmID model.FilmID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM ratings WHERE user_id = ? AND film_id = ?", userID, filmID)
	return err
}

// UserMoodTags returns the mood tag ids the user holds on a film.
func (r *Repository) UserMoodTags(ctx context.Context, userID model.UserID, filmID model.FilmID) ([]model.MoodTagID, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT mood_tag_id FROM film_mood_ratings WHERE user_id = ? AND film_id = ?", userID, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []model.MoodTagID
	for rows.Next() {
		var id model.MoodTagID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		tags = append(tags, id)
	}
	return tags, rows.Err()
}

// ReplaceMoodVotes swaps the user's full vote set for a film inside one
// transaction. Readers never observe a partially written set; the discovery
// relevance ratio depends on this.
func (r *Repository) ReplaceMoodVotes(ctx context.Context, userID model.UserID, filmID model.FilmID, tagIDs []model.MoodTagID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM film_mood_ratings WHERE user_id = ? AND film_id = ?", userID, filmID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO film_mood_ratings (user_id, film_id, mood_tag_id) VALUES (?, ?, ?)",
			userID, filmID, tagID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
