package redisstore

import (
	"github.com/go-redis/redis"
	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
)

// UserRepository ...
type UserRepository struct {
	store *Store
}

// Create ...
func (r *UserRepository) Create(u *model.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	return r.store.client.Set(userKeyPrefix+string(u.ID), u.Name, 0).Err()
}

// Find ...
func (r *UserRepository) Find(id model.UserID) (*model.User, error) {
	name, err := r.store.client.Get(userKeyPrefix + string(id)).Result()
	if err == redis.Nil {
		return nil, store.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	return &model.User{ID: id, Name: name}, nil
}
