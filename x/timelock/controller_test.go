package timelock

import (
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
)

// registryFake is a deterministic in-memory asset registry double.
type registryFake struct {
	owners   map[uint64]vault.Address
	vintages map[uint64]vault.UnixTime
	moveErr  error
}

func newRegistryFake() *registryFake {
	return &registryFake{
		owners:   make(map[uint64]vault.Address),
		vintages: make(map[uint64]vault.UnixTime),
	}
}

func (r *registryFake) TokenOwner(db vault.ReadOnlyKVStore, tokenID uint64) (vault.Address, error) {
	owner, ok := r.owners[tokenID]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "token %d", tokenID)
	}
	return owner, nil
}

func (r *registryFake) MoveToken(db vault.KVStore, src, dest vault.Address, tokenID uint64) error {
	if r.moveErr != nil {
		return r.moveErr
	}
	owner, ok := r.owners[tokenID]
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "token %d", tokenID)
	}
	if !owner.Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "token %d is not held by %s", tokenID, src)
	}
	r.owners[tokenID] = dest
	return nil
}

func (r *registryFake) MinUnlockTime(db vault.ReadOnlyKVStore, tokenID uint64) (vault.UnixTime, error) {
	return r.vintages[tokenID], nil
}

func TestControllerLockRelease(t *testing.T) {
	db := store.MemStore()
	reg := newRegistryFake()
	ctrl := NewController(reg)

	alice := vaulttest.NewCondition().Address()
	reg.owners[7] = alice

	if err := ctrl.Lock(db, 7, alice, 1000, 400); err != nil {
		t.Fatalf("cannot lock: %+v", err)
	}

	// Custody moved to the escrow.
	if owner := reg.owners[7]; !owner.Equals(CustodyCondition(7).Address()) {
		t.Fatalf("unexpected custodian: %s", owner)
	}
	rec, err := ctrl.LockStatus(db, 7)
	if err != nil {
		t.Fatalf("cannot get lock status: %+v", err)
	}
	if rec == nil {
		t.Fatal("lock record not found")
	}
	if rec.UnlockTimestamp != 1000 || rec.DepositedAt != 400 || !rec.Owner.Equals(alice) {
		t.Fatalf("unexpected record: %+v", rec)
	}

	// A token cannot be locked twice and the record stays untouched.
	if err := ctrl.Lock(db, 7, alice, 2000, 500); !ErrAlreadyLocked.Is(err) {
		t.Fatalf("wanted already locked error, got %+v", err)
	}
	rec, err = ctrl.LockStatus(db, 7)
	if err != nil {
		t.Fatalf("cannot get lock status: %+v", err)
	}
	if rec.UnlockTimestamp != 1000 {
		t.Fatalf("record was modified: %+v", rec)
	}

	// Too early, a no-op.
	released, err := ctrl.Release(db, 7, 500)
	if err != nil {
		t.Fatalf("cannot release: %+v", err)
	}
	if released {
		t.Fatal("release before the unlock time must not happen")
	}
	if owner := reg.owners[7]; !owner.Equals(CustodyCondition(7).Address()) {
		t.Fatalf("custody changed: %s", owner)
	}

	// Eligibility is inclusive of the unlock time.
	released, err = ctrl.Release(db, 7, 1000)
	if err != nil {
		t.Fatalf("cannot release: %+v", err)
	}
	if !released {
		t.Fatal("release at the unlock time must happen")
	}
	if owner := reg.owners[7]; !owner.Equals(alice) {
		t.Fatalf("custody not returned: %s", owner)
	}
	rec, err = ctrl.LockStatus(db, 7)
	if err != nil {
		t.Fatalf("cannot get lock status: %+v", err)
	}
	if rec != nil {
		t.Fatalf("record not removed: %+v", rec)
	}

	// Releasing again is a no-op, not an error.
	released, err = ctrl.Release(db, 7, 1000)
	if err != nil {
		t.Fatalf("cannot release: %+v", err)
	}
	if released {
		t.Fatal("second release must be a no-op")
	}
}

func TestControllerReleaseUnknownToken(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(newRegistryFake())

	released, err := ctrl.Release(db, 123, 1000)
	if err != nil {
		t.Fatalf("cannot release: %+v", err)
	}
	if released {
		t.Fatal("releasing an unknown token must be a no-op")
	}
}

func TestControllerLockMoveFailure(t *testing.T) {
	db := store.MemStore()
	reg := newRegistryFake()
	ctrl := NewController(reg)

	alice := vaulttest.NewCondition().Address()
	reg.owners[7] = alice
	reg.moveErr = errors.Wrap(errors.ErrState, "registry rejected")

	if err := ctrl.Lock(db, 7, alice, 1000, 400); !errors.ErrState.Is(err) {
		t.Fatalf("wanted registry failure, got %+v", err)
	}
	// The failure aborted the lock, no record must exist.
	rec, err := ctrl.LockStatus(db, 7)
	if err != nil {
		t.Fatalf("cannot get lock status: %+v", err)
	}
	if rec != nil {
		t.Fatalf("record created despite a custody failure: %+v", rec)
	}
}

func TestControllerForceRelease(t *testing.T) {
	db := store.MemStore()
	reg := newRegistryFake()
	ctrl := NewController(reg)

	alice := vaulttest.NewCondition().Address()
	reg.owners[7] = alice

	if err := ctrl.ForceRelease(db, 7); !ErrNotLocked.Is(err) {
		t.Fatalf("wanted not locked error, got %+v", err)
	}

	if err := ctrl.Lock(db, 7, alice, 1000, 400); err != nil {
		t.Fatalf("cannot lock: %+v", err)
	}
	// The unlock time is ignored entirely.
	if err := ctrl.ForceRelease(db, 7); err != nil {
		t.Fatalf("cannot force release: %+v", err)
	}
	if owner := reg.owners[7]; !owner.Equals(alice) {
		t.Fatalf("custody not returned: %s", owner)
	}
	rec, err := ctrl.LockStatus(db, 7)
	if err != nil {
		t.Fatalf("cannot get lock status: %+v", err)
	}
	if rec != nil {
		t.Fatalf("record not removed: %+v", rec)
	}
}

func TestControllerTokensLockedUntil(t *testing.T) {
	db := store.MemStore()
	reg := newRegistryFake()
	ctrl := NewController(reg)

	owner := vaulttest.NewCondition().Address()
	for id, unlock := range map[uint64]vault.UnixTime{
		1: 100,
		2: 500,
		3: 1000,
	} {
		reg.owners[id] = owner
		if err := ctrl.Lock(db, id, owner, unlock, 50); err != nil {
			t.Fatalf("cannot lock token %d: %+v", id, err)
		}
	}

	cases := map[string]struct {
		ts   vault.UnixTime
		want map[uint64]bool
	}{
		"all locks are after": {
			ts:   50,
			want: map[uint64]bool{1: true, 2: true, 3: true},
		},
		"strictly greater": {
			ts:   500,
			want: map[uint64]bool{3: true},
		},
		"none after": {
			ts:   1000,
			want: map[uint64]bool{},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ids, err := ctrl.TokensLockedUntil(db, tc.ts)
			if err != nil {
				t.Fatalf("cannot query: %+v", err)
			}
			if len(ids) != len(tc.want) {
				t.Fatalf("want %d ids, got %v", len(tc.want), ids)
			}
			for _, id := range ids {
				if !tc.want[id] {
					t.Fatalf("unexpected token id %d", id)
				}
			}
		})
	}
}

func TestControllerConfigurationAccess(t *testing.T) {
	db := store.MemStore()

	if _, err := Admin(db); !ErrNotInitialized.Is(err) {
		t.Fatalf("wanted not initialized error, got %+v", err)
	}
	if _, err := AssetRegistry(db); !ErrNotInitialized.Is(err) {
		t.Fatalf("wanted not initialized error, got %+v", err)
	}
}
