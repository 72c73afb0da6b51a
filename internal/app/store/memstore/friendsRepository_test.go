package memstore_test

import (
	"sync"
	"testing"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendsRepository_Add(t *testing.T) {
	s := memstore.New()

	created, err := s.Friends().Add("u1", "u2")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Friends().Add("u1", "u2")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = s.Friends().Add("u2", "u1")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestFriendsRepository_IsFriend(t *testing.T) {
	s := memstore.New()

	ok, err := s.Friends().IsFriend("u1", "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Friends().Add("u1", "u2")
	require.NoError(t, err)

	ok, _ = s.Friends().IsFriend("u1", "u2")
	assert.True(t, ok)
	ok, _ = s.Friends().IsFriend("u2", "u1")
	assert.True(t, ok)
	ok, _ = s.Friends().IsFriend("u1", "u3")
	assert.False(t, ok)
}

func TestFriendsRepository_AddInvalid(t *testing.T) {
	s := memstore.New()

	_, err := s.Friends().Add("u1", "u1")
	assert.ErrorIs(t, err, model.ErrSelfFriendship)

	_, err = s.Friends().Add("", "u1")
	assert.Error(t, err)
}

func TestFriendsRepository_List(t *testing.T) {
	s := memstore.New()

	ids, err := s.Friends().List("u1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, id := range []model.UserID{"u4", "u2", "u3"} {
		_, err := s.Friends().Add("u1", id)
		require.NoError(t, err)
	}
	_, err = s.Friends().Add("u2", "u3")
	require.NoError(t, err)

	ids, err = s.Friends().List("u1")
	require.NoError(t, err)
	assert.Equal(t, []model.UserID{"u2", "u3", "u4"}, ids)

	ids, err = s.Friends().List("u3")
	require.NoError(t, err)
	assert.Equal(t, []model.UserID{"u1", "u2"}, ids)
}

func TestFriendsRepository_ConcurrentAdd(t *testing.T) {
	s := memstore.New()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.Friends().Add("u1", "u2")
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}
