package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// UserID is an opaque user identifier. Values compare by content.
type UserID string

// String ...
func (id UserID) String() string {
	return string(id)
}

// Validate ...
func (id UserID) Validate() error {
	// validate the underlying string, UserID itself is Validatable
	return validation.Validate(
		string(id),
		validation.Required,
		validation.Length(1, 64),
		validation.Match(userIDPattern),
	)
}

// User ...
type User struct {
	ID   UserID `json:"id"`
	Name string `json:"name"`
}

// Validate ...
func (u *User) Validate() error {
	return validation.ValidateStruct(
		u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Name, validation.Required, validation.Length(1, 100)),
	)
}
