// Package repotest provides in-memory stores with the same contracts as the
// MySQL repositories, for use in tests of code that depends on them.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/worldradio/newsroom-go/internal/model"
	"github.com/worldradio/newsroom-go/internal/repository"
)

// Users is an in-memory account store enforcing unique usernames and emails.
type Users struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]model.User
}

func NewUsers() *Users {
	return &Users{byID: make(map[int64]model.User)}
}

func (s *Users) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}

	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now().UTC()
	s.byID[user.ID] = *user
	return nil
}

func (s *Users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *Users) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (s *Users) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.byID)), nil
}

// Favorites is an in-memory favorites store enforcing unique (user, url) pairs.
type Favorites struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Favorite
	now    func() time.Time
}

func NewFavorites() *Favorites {
	return &Favorites{rows: make(map[int64]model.Favorite), now: time.Now}
}

// SetClock overrides the time source used for SavedAt.
func (s *Favorites) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Favorites) Create(_ context.Context, fav *model.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.rows {
		if f.UserID == fav.UserID && f.ArticleURL == fav.ArticleURL {
			return repository.ErrDuplicateFavorite
		}
	}

	s.nextID++
	fav.ID = s.nextID
	fav.SavedAt = s.now().UTC()
	s.rows[fav.ID] = *fav
	return nil
}

func (s *Favorites) ListByUser(_ context.Context, userID int64) ([]model.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Favorite{}
	for _, f := range s.rows {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].SavedAt.After(out[j].SavedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Favorites) Delete(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.rows[id]; ok && f.UserID == userID {
		delete(s.rows, id)
	}
	return nil
}

// Get returns a stored favorite regardless of owner.
func (s *Favorites) Get(id int64) (model.Favorite, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.rows[id]
	return f, ok
}
