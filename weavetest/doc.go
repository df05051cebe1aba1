/*
Package weavetest provides helpers for writing tests: mock authenticators,
unique test conditions, a single message transaction and a block context.
*/
package weavetest
