/*
Package token implements a multi token fungible ledger.

Every account holds a balance per token ticker. An owner can send tokens
directly or approve a spender to move a limited amount on the owner's behalf,
which is how the swap escrow pulls deposits.
*/
package token
