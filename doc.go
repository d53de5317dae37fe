/*
Package nftswap defines the common interfaces that tie together the
subpackages of the swap ledger, as well as implementations of the simpler
components (when interfaces would be too much overhead).

Context is passed through context.Context between app, middleware and
handlers. This package defines the common keys to store info, such as block
height and chain id. Each extension, such as sigs, may add its own keys to
enrich the context with specific data.

Accounts are addressed by an Address, the truncated hash of a Condition.
A Condition is either fulfilled by a signature or granted by a handler.
Conditions that a handler grants are derived deterministically from seeds
(see CreateDerivedCondition) so that anybody can recompute the address of an
account controlled by a program without asking the ledger.
*/
package nftswap
