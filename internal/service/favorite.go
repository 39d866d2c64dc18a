package service

import (
	"context"
	"errors"

	"github.com/worldradio/newsroom-go/internal/model"
	"github.com/worldradio/newsroom-go/internal/repository"
)

var (
	ErrArticleURLRequired = errors.New("article_url is required")
	ErrAlreadyFavorited   = errors.New("already favorited")
)

// FavoriteStore persists favorites.
type FavoriteStore interface {
	Create(ctx context.Context, fav *model.Favorite) error
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
	Delete(ctx context.Context, userID, id int64) error
}

// FavoriteService handles a user's saved articles.
type FavoriteService struct {
	repo FavoriteStore
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo FavoriteStore) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// List returns the user's favorites, newest first.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]model.FavoriteResponse, error) {
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return favoritesToResponse(favs), nil
}

// Add saves an article for the user. Saving the same URL twice fails with ErrAlreadyFavorited.
func (s *FavoriteService) Add(ctx context.Context, userID int64, req model.FavoriteRequest) (model.FavoriteCreatedResponse, error) {
	if req.ArticleURL == "" {
		return model.FavoriteCreatedResponse{}, ErrArticleURLRequired
	}

	fav := model.Favorite{
		UserID:       userID,
		ArticleURL:   req.ArticleURL,
		ArticleTitle: req.ArticleTitle,
		ArticleImage: req.ArticleImage,
	}
	if err := s.repo.Create(ctx, &fav); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return model.FavoriteCreatedResponse{}, ErrAlreadyFavorited
		}
		return model.FavoriteCreatedResponse{}, err
	}

	return model.FavoriteCreatedResponse{Success: true, ID: fav.ID}, nil
}

// Remove deletes the favorite if userID owns it; otherwise it does nothing.
func (s *FavoriteService) Remove(ctx context.Context, userID, favoriteID int64) error {
	return s.repo.Delete(ctx, userID, favoriteID)
}

func favoritesToResponse(favs []model.Favorite) []model.FavoriteResponse {
	result := make([]model.FavoriteResponse, len(favs))
	for i, f := range favs {
		result[i] = model.FavoriteResponse{
			ID:           f.ID,
			ArticleURL:   f.ArticleURL,
			ArticleTitle: f.ArticleTitle,
			ArticleImage: f.ArticleImage,
			SavedAt:      f.SavedAt,
		}
	}
	return result
}
