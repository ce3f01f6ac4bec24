package store

import (
	"sync"

	"hotel-booking/internal/data/entity"

	"go.uber.org/zap"
)

// UserStore resolves usernames and ids to identities. Users are static for
// this service and created externally (seeded at startup).
type UserStore struct {
	mu    sync.RWMutex
	users []*entity.User
	log   *zap.Logger
}

func NewUserStore(users []*entity.User, log *zap.Logger) *UserStore {
	return &UserStore{
		users: users,
		log:   log.With(zap.String("store", "user")),
	}
}

// FindByUsername returns the user with the given username, or nil.
func (s *UserStore) FindByUsername(username string) *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// FindByID returns the user with the given id, or nil.
func (s *UserStore) FindByID(id int64) *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}
