// Package friendstate marks users as friends of a current user.
//
// Three variants share a store.FriendsRepository and differ in who checks
// the existing state:
//
//   - UseCase leaves the check to the caller; MarkAsFriend fails with
//     ErrAlreadyFriend when the users are already friends.
//   - IdempotentUseCase checks internally; MarkAsFriend can be called any
//     number of times.
//   - ReportingUseCase checks internally and returns whether the call
//     created the friendship.
package friendstate

import (
	"errors"
	"fmt"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
)

// ErrAlreadyFriend is returned by UseCase.MarkAsFriend when the precondition
// !IsFriend(id) doesn't hold.
var ErrAlreadyFriend = errors.New("user is already a friend")

// UseCase expects callers to call IsFriend before MarkAsFriend.
type UseCase struct {
	currentUserID model.UserID
	friends       store.FriendsRepository
}

// NewUseCase ...
func NewUseCase(currentUserID model.UserID, friends store.FriendsRepository) *UseCase {
	return &UseCase{
		currentUserID: currentUserID,
		friends:       friends,
	}
}

// IsFriend ...
func (u *UseCase) IsFriend(id model.UserID) (bool, error) {
	return u.friends.IsFriend(u.currentUserID, id)
}

// MarkAsFriend adds id as a friend. It is an error to call it for a user
// that is already a friend.
func (u *UseCase) MarkAsFriend(id model.UserID) error {
	created, err := u.friends.Add(u.currentUserID, id)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("mark %s as friend of %s: %w", id, u.currentUserID, ErrAlreadyFriend)
	}

	return nil
}
