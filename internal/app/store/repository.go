package store

import "github.com/katelinlis/FriendState/internal/app/model"

// FriendsRepository keeps the set of friendships. Entries are never removed.
type FriendsRepository interface {
	// IsFriend is symmetric: IsFriend(a, b) == IsFriend(b, a).
	IsFriend(a, b model.UserID) (bool, error)
	// Add stores the friendship and reports whether this call created it.
	// The check and the insert happen as one operation.
	Add(a, b model.UserID) (bool, error)
	// List returns the friends of id sorted by UserID.
	List(id model.UserID) ([]model.UserID, error)
}

// UserRepository ...
type UserRepository interface {
	// Create stores the user. An existing user with the same ID is replaced.
	Create(*model.User) error
	Find(id model.UserID) (*model.User, error)
}
