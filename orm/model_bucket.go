package orm

import (
	"reflect"
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
// All models are protobuf messages.
type Model interface {
	proto.Message
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db pswap.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns true if an entity with given primary key exists.
	Has(db pswap.ReadOnlyKVStore, key []byte) (bool, error)

	// Put saves given model in the database. Model is validated before
	// being written.
	Put(db pswap.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db pswap.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance that stores all entities
// under "<name>:" prefix. Only models of the same type as given example can be
// stored in it.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic("illegal bucket: " + name)
	}
	return &modelBucket{
		prefix: []byte(name + ":"),
		model:  reflect.TypeOf(example),
	}
}

type modelBucket struct {
	prefix []byte
	model  reflect.Type
}

// dbKey is the full key used in the database.
func (mb *modelBucket) dbKey(key []byte) []byte {
	res := make([]byte, 0, len(mb.prefix)+len(key))
	return append(append(res, mb.prefix...), key...)
}

func (mb *modelBucket) One(db pswap.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := mb.checkType(dest); err != nil {
		return err
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.prefix, key)
	}
	return pswap.Unmarshal(raw, dest)
}

func (mb *modelBucket) Has(db pswap.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

func (mb *modelBucket) Put(db pswap.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := mb.checkType(m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := pswap.Marshal(m)
	if err != nil {
		return err
	}
	return db.Set(mb.dbKey(key), raw)
}

func (mb *modelBucket) Delete(db pswap.KVStore, key []byte) error {
	ok, err := mb.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.prefix, key)
	}
	return db.Delete(mb.dbKey(key))
}

func (mb *modelBucket) checkType(m Model) error {
	if t := reflect.TypeOf(m); t != mb.model {
		return errors.Wrapf(errors.ErrType, "bucket %s stores %s, got %s", mb.prefix, mb.model, t)
	}
	return nil
}
