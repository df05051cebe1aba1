/*
Package pswap defines the interfaces used throughout the premium swap
application, such as storage, transactions, handlers and context helpers.

We pass context through context.Context between app, middleware, and
handlers. To do so, pswap defines some common keys to store info, such as
block height and block time. There should exist two functions for every XYZ
of type T that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

The atomic swap protocol itself lives in x/aswap, the fungible token ledger
it moves value through lives in x/token.
*/
package pswap
