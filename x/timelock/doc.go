/*
Package timelock implements a time locked custody escrow for registry
tokens.

A lock takes a token from its owner into a custody address generated from
the token id and records the earliest time the token may return. Locks can
be created by the owner directly or relayed by the configured asset
registry. Releasing is permissionless and idempotent: anyone may ask for a
release at any time and nothing happens unless the token is locked and the
unlock time was reached. The configured admin can force a release at any
time.

The escrow does not implement token transfers itself. Custody changes are
delegated to a TokenMover and maturity rules to a VintagePolicy, both
injected during route registration.
*/
package timelock
