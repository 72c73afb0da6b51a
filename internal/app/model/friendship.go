package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ErrSelfFriendship is returned when both sides of a friendship are the same user.
var ErrSelfFriendship = errors.New("user can't be a friend of themselves")

// Friendship is an unordered pair of users. Use NewFriendship so that
// A-B and B-A produce the same value.
type Friendship struct {
	User1 UserID `json:"user1"`
	User2 UserID `json:"user2"`
}

// NewFriendship returns the pair in canonical order.
func NewFriendship(a, b UserID) Friendship {
	if b < a {
		a, b = b, a
	}
	return Friendship{User1: a, User2: b}
}

// Other returns the side of the pair that is not id.
func (f Friendship) Other(id UserID) UserID {
	if f.User1 == id {
		return f.User2
	}
	return f.User1
}

// Has ...
func (f Friendship) Has(id UserID) bool {
	return f.User1 == id || f.User2 == id
}

// Validate ...
func (f *Friendship) Validate() error {
	if err := validation.ValidateStruct(
		f,
		validation.Field(&f.User1, validation.Required),
		validation.Field(&f.User2, validation.Required),
	); err != nil {
		return err
	}

	if f.User1 == f.User2 {
		return ErrSelfFriendship
	}

	return nil
}
