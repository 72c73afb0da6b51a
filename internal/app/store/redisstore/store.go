// Package redisstore keeps friendships in Redis. Every user owns a set of
// friend ids; a friendship is written to both sets in one MULTI/EXEC.
package redisstore

import (
	"github.com/go-redis/redis"
	"github.com/katelinlis/FriendState/internal/app/store"
)

const (
	friendsKeyPrefix = "friends:"
	userKeyPrefix    = "user:"
)

//Store ...
type Store struct {
	client            *redis.Client
	friendsRepository *FriendsRepository
	userRepository    *UserRepository
}

//New ...
func New(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

//Friends ...
func (s *Store) Friends() store.FriendsRepository {
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
	if s.userRepository != nil {
		return s.userRepository
	}

	s.userRepository = &UserRepository{
		store: s,
	}

	return s.userRepository
}
