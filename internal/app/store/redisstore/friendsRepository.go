package redisstore

import (
	"sort"

	"github.com/go-redis/redis"
	"github.com/katelinlis/FriendState/internal/app/model"
)

//FriendsRepository ...
type FriendsRepository struct {
	store *Store
}

func friendsKey(id model.UserID) string {
	return friendsKeyPrefix + string(id)
}

//IsFriend ...
func (r *FriendsRepository) IsFriend(a, b model.UserID) (bool, error) {
	return r.store.client.SIsMember(friendsKey(a), string(b)).Result()
}

// Add writes both directions in a transaction. SADD on the first set
// returns the number of new members, so 1 means this call created it.
func (r *FriendsRepository) Add(a, b model.UserID) (bool, error) {
	f := model.NewFriendship(a, b)
	if err := f.Validate(); err != nil {
		return false, err
	}

	var added *redis.IntCmd
	_, err := r.store.client.TxPipelined(func(pipe redis.Pipeliner) error {
		added = pipe.SAdd(friendsKey(f.User1), string(f.User2))
		pipe.SAdd(friendsKey(f.User2), string(f.User1))
		return nil
	})
	if err != nil {
		return false, err
	}

	return added.Val() == 1, nil
}

//List ...
func (r *FriendsRepository) List(id model.UserID) ([]model.UserID, error) {
	members, err := r.store.client.SMembers(friendsKey(id)).Result()
	if err != nil {
		return []model.UserID{}, err
	}

	ids := make([]model.UserID, 0, len(members))
	for _, m := range members {
		ids = append(ids, model.UserID(m))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
