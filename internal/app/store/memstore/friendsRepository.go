package memstore

import (
	"sort"

	"github.com/katelinlis/FriendState/internal/app/model"
)

//FriendsRepository ...
type FriendsRepository struct {
	store *Store
}

//IsFriend ...
func (r *FriendsRepository) IsFriend(a, b model.UserID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.friendships[model.NewFriendship(a, b)]
	return ok, nil
}

//Add ...
func (r *FriendsRepository) Add(a, b model.UserID) (bool, error) {
	f := model.NewFriendship(a, b)
	if err := f.Validate(); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.friendships[f]; ok {
		return false, nil
	}
	r.store.friendships[f] = struct{}{}

	return true, nil
}

//List ...
func (r *FriendsRepository) List(id model.UserID) ([]model.UserID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := []model.UserID{}
	for f := range r.store.friendships {
		if f.Has(id) {
			ids = append(ids, f.Other(id))
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
