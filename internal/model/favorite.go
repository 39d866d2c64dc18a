package model

import "time"

// Favorite is an article reference saved by a user.
type Favorite struct {
	ID           int64
	UserID       int64
	ArticleURL   string
	ArticleTitle *string
	ArticleImage *string
	SavedAt      time.Time
}

// FavoriteRequest is the body of POST /api/favorites.
type FavoriteRequest struct {
	ArticleURL   string  `json:"article_url"`
	ArticleTitle *string `json:"article_title"`
	ArticleImage *string `json:"article_image"`
}

// FavoriteResponse is a favorite as returned to the owner.
type FavoriteResponse struct {
	ID           int64     `json:"id"`
	ArticleURL   string    `json:"article_url"`
	ArticleTitle *string   `json:"article_title"`
	ArticleImage *string   `json:"article_image"`
	SavedAt      time.Time `json:"saved_at"`
}

// FavoriteCreatedResponse is returned after a favorite has been stored.
type FavoriteCreatedResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}
