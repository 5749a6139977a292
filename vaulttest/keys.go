package vaulttest

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/crypto"
)

func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

func NewCondition() vault.Condition {
	return NewKey().PublicKey().Condition()
}
