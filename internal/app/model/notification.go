package model

import (
	"time"

	"github.com/google/uuid"
)

// Event ...
type Event int

const (
	// EventNewFriend is sent once, when a friendship is created.
	EventNewFriend Event = iota + 1
)

func (e Event) String() string {
	switch e {
	case EventNewFriend:
		return "new_friend"
	default:
		return "unknown"
	}
}

// MarshalText ...
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Notification ...
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Type      Event     `json:"type"`
	UserID    UserID    `json:"userid"`
	FriendID  UserID    `json:"friendid"`
	TimeStamp int64     `json:"timestamp"`
}

// NewNotification ...
func NewNotification(event Event, userID, friendID UserID) Notification {
	return Notification{
		ID:        uuid.New(),
		Type:      event,
		UserID:    userID,
		FriendID:  friendID,
		TimeStamp: time.Now().Unix(),
	}
}
