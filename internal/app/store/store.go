package store

import "errors"

var (
	// ErrRecordNotFound ...
	ErrRecordNotFound = errors.New("record not found")
)

/*
Store gives access to the data repositories
*/
type Store interface {
	Friends() FriendsRepository // friendships
	User() UserRepository       // user profiles
}
