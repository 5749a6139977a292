package sigs

import (
	"testing"

	"github.com/carbonvault/vault/crypto"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestUserModel(t *testing.T) {
	kv := store.MemStore()

	bucket := NewBucket()
	pub := crypto.GenPrivKeyEd25519().PublicKey()
	addr := pub.Address()

	// not present yet
	obj, err := bucket.Get(kv, addr)
	assert.Nil(t, err)
	assert.Nil(t, obj)

	// create
	obj, err = bucket.GetOrCreate(kv, pub)
	assert.Nil(t, err)
	if obj == nil {
		t.Fatal("expected a fresh user object")
	}
	assert.Nil(t, obj.Validate())
	user := AsUser(obj)
	if user.Pubkey == nil {
		t.Fatal("expected pubkey to be set")
	}
	assert.Equal(t, int64(0), user.Sequence)

	// the sequence only advances one step at a time
	assert.IsErr(t, ErrInvalidSequence, user.CheckAndIncrementSequence(5))
	assert.Nil(t, user.CheckAndIncrementSequence(0))
	assert.IsErr(t, ErrInvalidSequence, user.CheckAndIncrementSequence(0))
	assert.Nil(t, user.CheckAndIncrementSequence(1))
	assert.Equal(t, int64(2), user.Sequence)

	// save and load
	assert.Nil(t, bucket.Save(kv, obj))
	obj2, err := bucket.Get(kv, addr)
	assert.Nil(t, err)
	if obj2 == nil {
		t.Fatal("expected the saved user object")
	}
	user2 := AsUser(obj2)
	assert.Equal(t, int64(2), user2.Sequence)
	assert.Equal(t, pub, user2.Pubkey)
}

func TestUserValidation(t *testing.T) {
	user := new(UserData)
	assert.Nil(t, user.Validate())

	// a sequence without a pubkey makes no sense
	user.Sequence = 17
	assert.IsErr(t, ErrInvalidSequence, user.Validate())
	user.Sequence = -30
	assert.IsErr(t, ErrInvalidSequence, user.Validate())

	pub := crypto.GenPrivKeyEd25519().PublicKey()
	user.SetPubkey(pub)
	user.Sequence = 17
	assert.Nil(t, user.Validate())

	// cannot set pubkey a second time
	assert.Panics(t, func() { user.SetPubkey(pub) })
}

func TestCheckAndIncrementSequenceOverflow(t *testing.T) {
	user := &UserData{
		Pubkey:   crypto.GenPrivKeyEd25519().PublicKey(),
		Sequence: (1 << 53) - 1,
	}
	if err := user.CheckAndIncrementSequence(user.Sequence); err == nil {
		t.Fatal("expected overflow error")
	}
}
