package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/worldradio/newsroom-go/internal/model"
)

var ErrDuplicateFavorite = errors.New("article already favorited")

// FavoriteRepository handles favorite article persistence operations.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create stores a favorite and sets its generated ID and saved time.
// A second favorite for the same (user_id, article_url) fails with ErrDuplicateFavorite.
func (r *FavoriteRepository) Create(ctx context.Context, fav *model.Favorite) error {
	query := `INSERT INTO favorites (user_id, article_url, article_title, article_image) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		fav.UserID,
		fav.ArticleURL,
		nullString(fav.ArticleTitle),
		nullString(fav.ArticleImage),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateFavorite
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	fav.ID = id
	if fav.SavedAt.IsZero() {
		fav.SavedAt = time.Now().UTC()
	}
	return nil
}

// ListByUser retrieves a user's favorites, most recently saved first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	query := `SELECT id, user_id, article_url, article_title, article_image, saved_at
		FROM favorites WHERE user_id = ? ORDER BY saved_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []model.Favorite{}
	for rows.Next() {
		var (
			f            model.Favorite
			title, image sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.UserID, &f.ArticleURL, &title, &image, &f.SavedAt); err != nil {
			return nil, err
		}
		f.ArticleTitle = stringPtr(title)
		f.ArticleImage = stringPtr(image)
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// Delete removes the favorite with the given ID if it belongs to userID.
// Deleting a missing or foreign favorite is not an error.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ? AND user_id = ?`, id, userID)
	return err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
