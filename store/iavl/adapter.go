package iavl

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of iavl nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state.
type CommitStore struct {
	db   dbm.DB
	tree *iavl.MutableTree
}

var _ pswap.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with disk backing. The database is a
// goleveldb instance named name, stored in dir.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s/%s: %s", dir, name, err)
	}
	return NewCommitStoreFromDB(db), nil
}

// NewCommitStoreFromDB creates a store on top of any tendermint database,
// for example dbm.NewMemDB() in tests.
func NewCommitStoreFromDB(db dbm.DB) *CommitStore {
	return &CommitStore{db: db, tree: iavl.NewMutableTree(db, DefaultCacheSize)}
}

// Close releases the underlying database. Uncommitted changes are lost.
func (s *CommitStore) Close() error {
	s.db.Close()
	return nil
}

// Get returns the value from the working tree.
// Returns nil iff key doesn't exist. Panics on nil key.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.Get(key)
	return val, nil
}

// Has checks if a key exists in the working tree. Panics on nil key.
func (s *CommitStore) Has(key []byte) (bool, error) {
	return s.tree.Has(key), nil
}

// CacheWrap gives us a savepoint to perform actions.
// Changes reach the working tree only on Write and disk only on Commit.
func (s *CommitStore) CacheWrap() pswap.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, treeWriter{s.tree}, nil)
}

// Commit the next version to disk, and returns info.
func (s *CommitStore) Commit() (pswap.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return pswap.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return pswap.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() (pswap.CommitID, error) {
	return pswap.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// treeWriter applies flushed cache entries to the working tree.
type treeWriter struct {
	tree *iavl.MutableTree
}

func (w treeWriter) Set(key, value []byte) error {
	w.tree.Set(key, value)
	return nil
}

func (w treeWriter) Delete(key []byte) error {
	w.tree.Remove(key)
	return nil
}
