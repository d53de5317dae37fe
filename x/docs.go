/*
Package x holds what the extensions of the swap ledger share.

Each sub-package is one extension (cash, token, escrow, sigs) or a set of
decorators (utils). Extensions receive an Authenticator instead of reading
signatures themselves, so that conditions granted by another extension are
accepted the same way as signatures.
*/
package x
