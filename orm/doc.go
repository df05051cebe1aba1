/*
Package orm provides an easy to use db wrapper.

A ModelBucket maps a primary key to a single protobuf model of one type.
All keys in a bucket share the "<name>:" prefix, so many buckets can live
in the same KVStore without collisions.
*/
package orm
