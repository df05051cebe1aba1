/*
Package store provides KVStore implementations.

MemStore is an in-memory btree store. Every store can be wrapped with
CacheWrap to get a savepoint: changes are visible through the wrap only,
until Write flushes them to the parent or Discard drops them. Swap
transitions run inside such a savepoint so that a failed value transfer
leaves no state change behind.

Persistent, versioned storage lives in store/iavl.
*/
package store
