package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/worldradio/newsroom-go/internal/model"
	"github.com/worldradio/newsroom-go/internal/repository/repotest"
)

func newTestFavoriteService() (*FavoriteService, *repotest.Favorites) {
	store := repotest.NewFavorites()
	return NewFavoriteService(store), store
}

func TestAdd_RequiresURL(t *testing.T) {
	svc, _ := newTestFavoriteService()

	if _, err := svc.Add(context.Background(), 1, model.FavoriteRequest{}); err != ErrArticleURLRequired {
		t.Errorf("Add error = %v, want ErrArticleURLRequired", err)
	}
}

func TestAdd_DuplicatePerOwner(t *testing.T) {
	svc, _ := newTestFavoriteService()
	ctx := context.Background()
	req := model.FavoriteRequest{ArticleURL: "http://n/1"}

	first, err := svc.Add(ctx, 1, req)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !first.Success || first.ID == 0 {
		t.Errorf("unexpected response: %+v", first)
	}

	if _, err := svc.Add(ctx, 1, req); !errors.Is(err, ErrAlreadyFavorited) {
		t.Errorf("second Add error = %v, want ErrAlreadyFavorited", err)
	}

	if _, err := svc.Add(ctx, 2, req); err != nil {
		t.Errorf("Add by another owner: %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	svc, store := newTestFavoriteService()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	})

	title := "Second"
	if _, err := svc.Add(ctx, 1, model.FavoriteRequest{ArticleURL: "http://n/1"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, 1, model.FavoriteRequest{ArticleURL: "http://n/2", ArticleTitle: &title}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, 2, model.FavoriteRequest{ArticleURL: "http://n/3"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	favs, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(favs) != 2 {
		t.Fatalf("len = %d, want 2", len(favs))
	}
	if favs[0].ArticleURL != "http://n/2" || favs[1].ArticleURL != "http://n/1" {
		t.Errorf("order = %s, %s", favs[0].ArticleURL, favs[1].ArticleURL)
	}
	if favs[0].ArticleTitle == nil || *favs[0].ArticleTitle != "Second" {
		t.Errorf("title = %v", favs[0].ArticleTitle)
	}
}

func TestList_EmptyIsNotNil(t *testing.T) {
	svc, _ := newTestFavoriteService()

	favs, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if favs == nil {
		t.Error("List returned nil, want empty slice")
	}
}

func TestRemove_ScopedToOwner(t *testing.T) {
	svc, store := newTestFavoriteService()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, model.FavoriteRequest{ArticleURL: "http://n/1"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Remove(ctx, 2, created.ID); err != nil {
		t.Fatalf("Remove by non-owner: %v", err)
	}
	if _, ok := store.Get(created.ID); !ok {
		t.Fatal("favorite deleted by a non-owner")
	}

	if err := svc.Remove(ctx, 1, 999); err != nil {
		t.Errorf("Remove of unknown id: %v", err)
	}

	if err := svc.Remove(ctx, 1, created.ID); err != nil {
		t.Fatalf("Remove by owner: %v", err)
	}
	if _, ok := store.Get(created.ID); ok {
		t.Error("favorite still present after owner removed it")
	}
}
