package memstore_test

import (
	"testing"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
	"github.com/katelinlis/FriendState/internal/app/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	s := memstore.New()

	u := &model.User{ID: "alice", Name: "Alice"}
	require.NoError(t, s.User().Create(u))

	found, err := s.User().Find("alice")
	require.NoError(t, err)
	assert.Equal(t, u, found)

	_, err = s.User().Find("bob")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	assert.Error(t, s.User().Create(&model.User{ID: "bob"}))
}

func TestUserRepository_CreateReplaces(t *testing.T) {
	s := memstore.New()

	require.NoError(t, s.User().Create(&model.User{ID: "alice", Name: "Alice"}))
	require.NoError(t, s.User().Create(&model.User{ID: "alice", Name: "Alicia"}))

	found, err := s.User().Find("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", found.Name)
}
