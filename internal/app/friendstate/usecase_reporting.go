package friendstate

import (
	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
)

// ReportingUseCase tells the caller whether MarkAsFriend changed anything.
type ReportingUseCase struct {
	currentUserID model.UserID
	friends       store.FriendsRepository
}

// NewReportingUseCase ...
func NewReportingUseCase(currentUserID model.UserID, friends store.FriendsRepository) *ReportingUseCase {
	return &ReportingUseCase{
		currentUserID: currentUserID,
		friends:       friends,
	}
}

// IsFriend ...
func (u *ReportingUseCase) IsFriend(id model.UserID) (bool, error) {
	return u.friends.IsFriend(u.currentUserID, id)
}

// MarkAsFriend returns true if id became a friend with this call and false
// if it already was one.
func (u *ReportingUseCase) MarkAsFriend(id model.UserID) (bool, error) {
	return u.friends.Add(u.currentUserID, id)
}

// MarkAsFriendWithCallback calls onSucceeded synchronously, and only when
// the friendship was created. Prefer MarkAsFriend.
func (u *ReportingUseCase) MarkAsFriendWithCallback(id model.UserID, onSucceeded func()) error {
	created, err := u.friends.Add(u.currentUserID, id)
	if err != nil {
		return err
	}
	if created {
		onSucceeded()
	}

	return nil
}
