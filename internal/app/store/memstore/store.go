// Package memstore is an in-process store.Store. Friendships live in a set
// for the lifetime of the process.
package memstore

import (
	"sync"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
)

//Store ...
type Store struct {
	mu                sync.RWMutex
	friendships       map[model.Friendship]struct{}
	users             map[model.UserID]*model.User
	friendsRepository *FriendsRepository
	userRepository    *UserRepository
}

//New ...
func New() *Store {
	return &Store{
		friendships: make(map[model.Friendship]struct{}),
		users:       make(map[model.UserID]*model.User),
	}
}

//Friends ...
func (s *Store) Friends() store.FriendsRepository {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.friendsRepository != nil {
		return s.friendsRepository
	}

	s.friendsRepository = &FriendsRepository{
		store: s,
	}

	return s.friendsRepository
}

//User ...
func (s *Store) User() store.UserRepository {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userRepository != nil {
		return s.userRepository
	}

	s.userRepository = &UserRepository{
		store: s,
	}

	return s.userRepository
}
