package iavl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
)

func TestCommitStoreCommitAndReload(t *testing.T) {
	db := dbm.NewMemDB()
	s := NewCommitStoreFromDB(db)
	require.NoError(t, s.LoadLatestVersion())

	cache := s.CacheWrap()
	require.NoError(t, cache.Set([]byte("swap"), []byte("filled")))

	// nothing reaches the tree before the cache is written
	val, err := s.Get([]byte("swap"))
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, cache.Write())
	id, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)

	// a fresh store on the same db sees the committed data
	reloaded := NewCommitStoreFromDB(db)
	require.NoError(t, reloaded.LoadLatestVersion())
	val, err = reloaded.Get([]byte("swap"))
	require.NoError(t, err)
	assert.Equal(t, []byte("filled"), val)

	latest, err := reloaded.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, id, latest)
}

func TestCommitStoreDelete(t *testing.T) {
	s := NewCommitStoreFromDB(dbm.NewMemDB())
	require.NoError(t, s.LoadLatestVersion())

	cache := s.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))
	require.NoError(t, cache.Write())
	_, err := s.Commit()
	require.NoError(t, err)

	cache = s.CacheWrap()
	require.NoError(t, cache.Delete([]byte("a")))
	require.NoError(t, cache.Write())
	_, err = s.Commit()
	require.NoError(t, err)

	has, err := s.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}
