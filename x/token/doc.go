/*
Package token is a ledger of non fungible tokens.

A mint defines a kind of token and who may create new units of it. A token
account holds units of exactly one mint on behalf of an owner. Creating a
mint or an account requires a rent deposit, which is kept in a cash wallet
at the address of the new account and returned when the account is closed.

Accounts are created at addresses that must be authorized by the caller,
either a signature of a fresh key or a derived condition granted by another
extension. This lets other extensions own token accounts that only they can
move tokens out of.
*/
package token
