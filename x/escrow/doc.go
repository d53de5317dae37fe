/*
Package escrow implements a trustless swap of two non fungible tokens.

> An escrow is a financial arrangement where a third party holds and regulates
> payment of the funds required for two parties involved in a given transaction.

Here the third party is the escrow extension itself. The offering party
initializes a swap naming the token it offers, the token it wants and the
account of the requesting party that holds it. Each party then moves its
token into an escrow account that only this extension can spend from. Once
both sides are funded anybody may crank the swap, which delivers both
tokens at once. Until then either party may take its own token back, which
cancels the swap.

Every address used by a swap is derived from the two source accounts:

	record            = derive("escrow", offering source, requesting source)
	offering escrow   = derive("escrow-offered-token-account", offering source)
	requesting escrow = derive("escrow-requested-token-account", requesting source)

Handlers never trust an address sent by the client. They derive it again and
reject the message with ErrAddressMismatch when the two differ.
*/
package escrow
