package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
)

// UserRepository ...
type UserRepository struct {
	store *Store
}

// Create inserts the user or renames an existing one.
func (r *UserRepository) Create(u *model.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	_, err := r.store.db.Exec("INSERT INTO users(id,name) VALUES($1,$2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name",
		u.ID,
		u.Name,
	)

	return err
}

// Find ...
func (r *UserRepository) Find(id model.UserID) (*model.User, error) {
	u := &model.User{}
	err := r.store.db.QueryRow("SELECT id,name FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}
