package sqlstore

import (
	"time"

	"github.com/katelinlis/FriendState/internal/app/model"
)

//FriendsRepository ...
type FriendsRepository struct {
	store *Store
}

//IsFriend ...
func (r *FriendsRepository) IsFriend(a, b model.UserID) (bool, error) {
	f := model.NewFriendship(a, b)

	var exists bool
	err := r.store.db.QueryRow("SELECT EXISTS(SELECT 1 FROM friends WHERE user1 = $1 AND user2 = $2)",
		f.User1,
		f.User2,
	).Scan(&exists)

	return exists, err
}

// Add relies on the primary key: a conflicting insert affects no rows,
// which is how the caller learns that the pair was already stored.
func (r *FriendsRepository) Add(a, b model.UserID) (bool, error) {
	f := model.NewFriendship(a, b)
	if err := f.Validate(); err != nil {
		return false, err
	}

	res, err := r.store.db.Exec("INSERT INTO friends(user1,user2,timestamp) VALUES($1,$2,$3) ON CONFLICT (user1, user2) DO NOTHING",
		f.User1,
		f.User2,
		time.Now().Unix(),
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

//List ...
func (r *FriendsRepository) List(id model.UserID) ([]model.UserID, error) {
	ids := []model.UserID{}

	rows, err := r.store.db.Query(`SELECT CASE WHEN user1 = $1 THEN user2 ELSE user1 END AS friend
		FROM friends WHERE user1 = $1 OR user2 = $1 ORDER BY friend COLLATE "C"`,
		id,
	)
	if err != nil {
		return ids, err
	}
	defer rows.Close()

	for rows.Next() {
		var friend model.UserID
		if err := rows.Scan(&friend); err != nil {
			return ids, err
		}

		ids = append(ids, friend)
	}

	return ids, rows.Err()
}
