package friendstate

import (
	"errors"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
	"github.com/katelinlis/FriendState/internal/app/store/memstore"
)

var errBroken = errors.New("store is broken")

// brokenFriends fails every call.
type brokenFriends struct{}

func (brokenFriends) IsFriend(a, b model.UserID) (bool, error) { return false, errBroken }
func (brokenFriends) Add(a, b model.UserID) (bool, error) { return false, errBroken }
func (brokenFriends) List(id model.UserID) ([]model.UserID, error) { return nil, errBroken }

// partialStore serves users from memstore and friendships from friends.
type partialStore struct {
	*memstore.Store
	friends store.FriendsRepository
}

func (s partialStore) Friends() store.FriendsRepository { return s.friends }

// recordingNotifier keeps every notification it gets.
type recordingNotifier struct {
	sent []model.Notification
	err  error
}

func (r *recordingNotifier) Notify(n model.Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}
