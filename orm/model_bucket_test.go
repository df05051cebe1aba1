package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/store"
	"github.com/iov-one/pswap/weavetest/assert"
)

type counter struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Count int64  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (c *counter) Reset()         { *c = counter{} }
func (c *counter) String() string { return proto.CompactTextString(c) }
func (*counter) ProtoMessage()    {}

func (c *counter) Validate() error {
	if c.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

type other struct {
	Value int64 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (o *other) Reset()         { *o = other{} }
func (o *other) String() string { return proto.CompactTextString(o) }
func (*other) ProtoMessage()    {}
func (*other) Validate() error  { return nil }

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Name: "first", Count: 7}))

	var got counter
	assert.Nil(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, counter{Name: "first", Count: 7}, got)

	has, err := b.Has(db, []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	if err := b.One(db, []byte("missing"), &got); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketRejects(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})

	if err := b.Put(db, []byte("a"), &counter{}); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want validation error, got %+v", err)
	}
	if err := b.Put(db, []byte("a"), &other{Value: 1}); !errors.ErrType.Is(err) {
		t.Fatalf("want type error, got %+v", err)
	}
	if err := b.Put(db, nil, &counter{Name: "x"}); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want empty key error, got %+v", err)
	}
	if err := b.Delete(db, []byte("a")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("alpha", &counter{})
	b := NewModelBucket("beta", &counter{})

	assert.Nil(t, a.Put(db, []byte("k"), &counter{Name: "a"}))
	has, err := b.Has(db, []byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	assert.Nil(t, a.Delete(db, []byte("k")))
	has, err = a.Has(db, []byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}

func TestIllegalBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("Not-Valid", &counter{}) })
}
