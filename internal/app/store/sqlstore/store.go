package sqlstore

import (
	"database/sql"

	"github.com/katelinlis/FriendState/internal/app/store"
	_ "github.com/lib/pq" //db import
)

// friends columns use the "C" collation so that user1 < user2 matches the
// byte order model.NewFriendship uses, whatever the database locale is.
// The ALTERs bring tables created before that in line.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS friends (
	user1     TEXT COLLATE "C" NOT NULL,
	user2     TEXT COLLATE "C" NOT NULL,
	timestamp BIGINT NOT NULL,
	PRIMARY KEY (user1, user2),
	CHECK (user1 < user2)
);
ALTER TABLE friends ALTER COLUMN user1 TYPE TEXT COLLATE "C";
ALTER TABLE friends ALTER COLUMN user2 TYPE TEXT COLLATE "C";`

//Store ...
type Store struct {
	db                *sql.DB
	friendsRepository *FriendsRepository
	userRepository    *UserRepository
}

//New ...
func New(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

// Migrate creates the tables used by the store if they don't exist yet.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

//Friends ...
func (s *Store) Friends() store.FriendsRepository {
	if s.friendsRepository != nil {
		return s.friendsRepository
	}

	s.friendsRepository = &FriendsRepository{
		store: s,
	}

	return s.friendsRepository
}

//User ...
func (s *Store) User() store.UserRepository {
	if s.userRepository != nil {
		return s.userRepository
	}

	s.userRepository = &UserRepository{
		store: s,
	}

	return s.userRepository
}
