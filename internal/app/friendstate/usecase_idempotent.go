package friendstate

import (
	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
)

// IdempotentUseCase accepts MarkAsFriend for users that are already friends.
type IdempotentUseCase struct {
	currentUserID model.UserID
	friends       store.FriendsRepository
}

// NewIdempotentUseCase ...
func NewIdempotentUseCase(currentUserID model.UserID, friends store.FriendsRepository) *IdempotentUseCase {
	return &IdempotentUseCase{
		currentUserID: currentUserID,
		friends:       friends,
	}
}

// IsFriend ...
func (u *IdempotentUseCase) IsFriend(id model.UserID) (bool, error) {
	return u.friends.IsFriend(u.currentUserID, id)
}

// MarkAsFriend does nothing if id is already a friend.
func (u *IdempotentUseCase) MarkAsFriend(id model.UserID) error {
	_, err := u.friends.Add(u.currentUserID, id)
	return err
}

// MarkAsFriendIfNotYet is MarkAsFriend under a name that states the condition.
func (u *IdempotentUseCase) MarkAsFriendIfNotYet(id model.UserID) error {
	return u.MarkAsFriend(id)
}
