package sigs

import (
	"context"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/crypto"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := vault.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []vault.Condition{priv.PublicKey().Condition()}

	bz := []byte("art")
	tx := NewStdTx(bz)
	sig, err := SignTx(priv, tx, chainID, 0)
	assert.Nil(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	assert.Nil(t, err)

	deliver := func(dec vault.Decorator, my vault.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec vault.Decorator, my vault.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(vault.Decorator, vault.Tx) error{check, deliver} {
		// test with no sigs
		tx.Signatures = nil
		if err := fn(d, tx); err == nil {
			t.Fatalf("%d: expected missing signature to fail", i)
		}

		// test with one
		tx.Signatures = []*StdSignature{sig}
		if err := fn(d, tx); err != nil {
			t.Fatalf("%d: %+v", i, err)
		}
		assert.Equal(t, perms, signers.Signers)

		// test with replay
		if err := fn(d, tx); err == nil {
			t.Fatalf("%d: expected replay to fail", i)
		}

		// test allowing none
		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		if err := fn(ad, tx); err != nil {
			t.Fatalf("%d: %+v", i, err)
		}
		assert.Equal(t, 0, len(signers.Signers))

		// test allowing, with next sequence
		tx.Signatures = []*StdSignature{sig1}
		if err := fn(ad, tx); err != nil {
			t.Fatalf("%d: %+v", i, err)
		}
		assert.Equal(t, perms, signers.Signers)
	}
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []vault.Condition
}

var _ vault.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.DeliverResult{}, nil
}
