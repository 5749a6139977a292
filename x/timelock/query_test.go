package timelock

import (
	"encoding/binary"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
)

func TestLockedUntilQuery(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	owner := vaulttest.NewCondition().Address()
	for id, unlock := range map[uint64]vault.UnixTime{
		1: 100,
		2: 500,
		3: 1000,
	} {
		err := bucket.Save(db, &LockRecord{
			TokenId:         id,
			Owner:           owner,
			UnlockTimestamp: unlock,
			DepositedAt:     50,
		})
		if err != nil {
			t.Fatalf("cannot save lock record: %+v", err)
		}
	}

	h := lockedUntilHandler{bucket: bucket}

	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, 500)
	models, err := h.Query(db, vault.KeyQueryMod, data)
	if err != nil {
		t.Fatalf("cannot query: %+v", err)
	}
	if len(models) != 1 {
		t.Fatalf("want a single lock, got %d", len(models))
	}
	var rec LockRecord
	if err := rec.Unmarshal(models[0].Value); err != nil {
		t.Fatalf("cannot unmarshal lock record: %+v", err)
	}
	if rec.TokenId != 3 {
		t.Fatalf("unexpected token: %+v", rec)
	}

	if _, err := h.Query(db, vault.PrefixQueryMod, data); !errors.ErrInput.Is(err) {
		t.Fatalf("wanted an input error, got %+v", err)
	}
	if _, err := h.Query(db, vault.KeyQueryMod, []byte("123")); !errors.ErrInput.Is(err) {
		t.Fatalf("wanted an input error, got %+v", err)
	}

	// a timestamp above the int64 range must not wrap around and match
	// every lock
	binary.BigEndian.PutUint64(data, 1<<63)
	if _, err := h.Query(db, vault.KeyQueryMod, data); !errors.ErrInput.Is(err) {
		t.Fatalf("wanted an input error, got %+v", err)
	}
}
