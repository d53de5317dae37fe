/*
Package cash keeps the native coin balances of the ledger.

There is no logic in the coins, except that the balance of any coin may
not go below zero. Wallets are keyed by address, so any account created
elsewhere (a token account, an escrow record) can hold coins at its own
address. This is how rent deposits are kept.
*/
package cash
