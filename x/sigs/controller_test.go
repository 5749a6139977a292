package sigs

import (
	"bytes"
	"testing"

	"github.com/carbonvault/vault/crypto"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestSignBytes(t *testing.T) {
	bz := []byte("foobar")
	tx := NewStdTx(bz)

	bz2 := []byte("blast")
	tx2 := NewStdTx(bz2)

	// make sure the values out are sensible
	tbz, err := tx.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, bz, tbz)
	tbz2, err := tx2.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, bz2, tbz2)

	// make sure sign bytes match tx
	chainID := "test-sign-bytes"
	c1, err := BuildSignBytesTx(tx, chainID, 17)
	assert.Nil(t, err)
	c1a, err := BuildSignBytes(bz, chainID, 17)
	assert.Nil(t, err)
	assert.Equal(t, c1, c1a)
	if bytes.Equal(bz, c1) {
		t.Fatal("sign bytes must not equal the raw payload")
	}

	// make sure sign bytes change on tx, chain_id and seq
	ct, err := BuildSignBytes(bz2, chainID, 17)
	assert.Nil(t, err)
	if bytes.Equal(c1, ct) {
		t.Fatal("sign bytes must depend on the payload")
	}
	c2, err := BuildSignBytes(bz, chainID+"2", 17)
	assert.Nil(t, err)
	if bytes.Equal(c1, c2) {
		t.Fatal("sign bytes must depend on the chain id")
	}
	c3, err := BuildSignBytes(bz, chainID, 18)
	assert.Nil(t, err)
	if bytes.Equal(c1, c3) {
		t.Fatal("sign bytes must depend on the sequence")
	}
}

func TestVerifySignature(t *testing.T) {
	kv := store.MemStore()
	priv := crypto.GenPrivKeyEd25519()
	perm := priv.PublicKey().Condition()

	chainID := "emo-music-2345"
	bz := []byte("my special valentine")
	tx := NewStdTx(bz)

	sig0, err := SignTx(priv, tx, chainID, 0)
	assert.Nil(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	assert.Nil(t, err)
	sig2, err := SignTx(priv, tx, chainID, 2)
	assert.Nil(t, err)
	sig13, err := SignTx(priv, tx, chainID, 13)
	assert.Nil(t, err)
	empty := new(StdSignature)

	// signing should be deterministic
	sig2a, err := SignTx(priv, tx, chainID, 2)
	assert.Nil(t, err)
	assert.Equal(t, sig2, sig2a)

	// the first one must start the sequence
	if _, err := VerifySignature(kv, sig1, bz, chainID); err == nil {
		t.Fatal("expected sequence error")
	}

	// empty sig
	_, err = VerifySignature(kv, empty, bz, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// must start with 0
	sign, err := VerifySignature(kv, sig0, bz, chainID)
	assert.Nil(t, err)
	assert.Equal(t, perm, sign)
	// we can advance one (store in kvstore)
	sign, err = VerifySignature(kv, sig1, bz, chainID)
	assert.Nil(t, err)
	assert.Equal(t, perm, sign)

	// jumping and replays are a no-no
	_, err = VerifySignature(kv, sig1, bz, chainID)
	assert.IsErr(t, ErrInvalidSequence, err)
	_, err = VerifySignature(kv, sig13, bz, chainID)
	assert.IsErr(t, ErrInvalidSequence, err)

	// different chain doesn't match
	if _, err := VerifySignature(kv, sig2, bz, "metal"); err == nil {
		t.Fatal("expected chain mismatch to fail")
	}
	// doesn't match on bad sig
	copy(sig2.Signature.GetEd25519(), []byte{42, 17, 99})
	if _, err := VerifySignature(kv, sig2, bz, chainID); err == nil {
		t.Fatal("expected tampered signature to fail")
	}
}

func TestVerifyTxSignatures(t *testing.T) {
	kv := store.MemStore()

	priv := crypto.GenPrivKeyEd25519()
	addr := priv.PublicKey().Condition()
	priv2 := crypto.GenPrivKeyEd25519()
	addr2 := priv2.PublicKey().Condition()

	chainID := "hot_summer_days"
	bz := []byte("ice cream")
	tx := NewStdTx(bz)
	tx2 := NewStdTx([]byte(chainID))
	tbz, err := tx.GetSignBytes()
	assert.Nil(t, err)
	tbz2, err := tx2.GetSignBytes()
	assert.Nil(t, err)
	if bytes.Equal(tbz, tbz2) {
		t.Fatal("different transactions must have different sign bytes")
	}

	// two sigs from the first key
	sig, err := SignTx(priv, tx, chainID, 0)
	assert.Nil(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	assert.Nil(t, err)
	// one from the second
	sig2, err := SignTx(priv2, tx, chainID, 0)
	assert.Nil(t, err)
	// and a signature of wrong info
	badSig, err := SignTx(priv, tx2, chainID, 0)
	assert.Nil(t, err)

	// no signers
	signers, err := VerifyTxSignatures(kv, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(signers))

	// bad signers
	tx.Signatures = []*StdSignature{badSig}
	if _, err := VerifyTxSignatures(kv, tx, chainID); err == nil {
		t.Fatal("expected signature over wrong payload to fail")
	}

	// some signers
	tx.Signatures = []*StdSignature{sig}
	signers, err = VerifyTxSignatures(kv, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(signers))
	assert.Equal(t, addr, signers[0])

	// one signature as replay is blocked
	tx.Signatures = []*StdSignature{sig, sig2}
	if _, err := VerifyTxSignatures(kv, tx, chainID); err == nil {
		t.Fatal("expected replayed signature to fail")
	}

	// now increment seq and it passes
	tx.Signatures = []*StdSignature{sig1, sig2}
	signers, err = VerifyTxSignatures(kv, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(signers))
	assert.Equal(t, addr, signers[0])
	assert.Equal(t, addr2, signers[1])
}
