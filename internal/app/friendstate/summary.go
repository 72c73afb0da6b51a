package friendstate

import (
	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/result"
	"github.com/katelinlis/FriendState/internal/app/store"
)

// Summary ...
type Summary struct {
	User    model.User   `json:"user"`
	Count   int          `json:"count"`
	Friends []model.User `json:"friends"`
}

type friendIDs struct {
	user *model.User
	ids  []model.UserID
}

// Summarize loads a user, the user's friends, and their profiles. The
// failing stage is reported as ErrorStepA, ErrorStepB or ErrorStepC.
func Summarize(s store.Store, id model.UserID) result.Result[Summary] {
	p := result.Pipeline[*model.User, friendIDs, Summary]{
		StepA: func() (*model.User, error) {
			return s.User().Find(id)
		},
		StepB: func(u *model.User) (friendIDs, error) {
			ids, err := s.Friends().List(u.ID)
			return friendIDs{user: u, ids: ids}, err
		},
		StepC: func(f friendIDs) (Summary, error) {
			friends, err := Users(s.User(), f.ids)
			if err != nil {
				return Summary{}, err
			}
			return Summary{User: *f.user, Count: len(friends), Friends: friends}, nil
		},
	}

	return p.Run()
}

// Users resolves ids in order. An empty ids gives an empty slice.
func Users(users store.UserRepository, ids []model.UserID) ([]model.User, error) {
	list := make([]model.User, 0, len(ids))
	for _, id := range ids {
		u, err := users.Find(id)
		if err != nil {
			return nil, err
		}
		list = append(list, *u)
	}

	return list, nil
}

// Names returns the display names of ids in order.
func Names(users store.UserRepository, ids []model.UserID) ([]string, error) {
	list, err := Users(users, ids)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.Name)
	}

	return names, nil
}
