/*
Package assets implements the carbon credit registry.

Every credit is represented as a token with a unique numeric id, a single
owner and an immutable vintage unlock time. Tokens are minted by the
configured issuer and can be transferred by their owner.

Other extensions interact with the registry through the Controller, which
exposes ownership lookups, vintage information and custody transfers.
*/
package assets
