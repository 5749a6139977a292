package timelock

import (
	"context"
	"testing"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/gconf"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
)

func blockCtx(now vault.UnixTime) vault.Context {
	return vault.WithHeader(context.Background(), abci.Header{
		Time: time.Unix(int64(now), 0),
	})
}

func TestLockHandler(t *testing.T) {
	aliceCond := vaulttest.NewCondition()
	alice := aliceCond.Address()
	registryCond := vaulttest.NewCondition()
	adminCond := vaulttest.NewCondition()

	conf := Configuration{
		Admin:         adminCond.Address(),
		AssetRegistry: registryCond.Address(),
	}
	vintageConf := Configuration{
		Admin:           adminCond.Address(),
		AssetRegistry:   registryCond.Address(),
		ValidateVintage: true,
		VintagePolicy:   vaulttest.NewCondition().Address(),
	}

	cases := map[string]struct {
		conf      *Configuration
		signer    vault.Condition
		msg       *LockMsg
		minUnlock vault.UnixTime
		wantErr   *errors.Error
		wantOwner vault.Address
	}{
		"owner locks own token": {
			conf:      &conf,
			signer:    aliceCond,
			msg:       &LockMsg{TokenId: 7, UnlockTimestamp: 1000},
			wantOwner: alice,
		},
		"registry relays a lock": {
			conf:      &conf,
			signer:    registryCond,
			msg:       &LockMsg{TokenId: 7, UnlockTimestamp: 1000},
			wantOwner: alice,
		},
		"no signer": {
			conf:    &conf,
			msg:     &LockMsg{TokenId: 7, UnlockTimestamp: 1000},
			wantErr: errors.ErrUnauthorized,
		},
		"no configuration": {
			signer:  aliceCond,
			msg:     &LockMsg{TokenId: 7, UnlockTimestamp: 1000},
			wantErr: ErrNotInitialized,
		},
		"unlock before the vintage minimum": {
			conf:      &vintageConf,
			signer:    aliceCond,
			msg:       &LockMsg{TokenId: 7, UnlockTimestamp: 1500},
			minUnlock: 2000,
			wantErr:   ErrVintageMismatch,
		},
		"unlock at the vintage minimum": {
			conf:      &vintageConf,
			signer:    aliceCond,
			msg:       &LockMsg{TokenId: 7, UnlockTimestamp: 2000},
			minUnlock: 2000,
			wantOwner: alice,
		},
		"token id is required": {
			conf:    &conf,
			signer:  aliceCond,
			msg:     &LockMsg{UnlockTimestamp: 1000},
			wantErr: errors.ErrEmpty,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if tc.conf != nil {
				if err := gconf.Save(db, "timelock", tc.conf); err != nil {
					t.Fatalf("cannot save configuration: %+v", err)
				}
			}
			reg := newRegistryFake()
			reg.owners[7] = alice
			reg.vintages[7] = tc.minUnlock
			ctrl := NewController(reg)

			auth := &vaulttest.Auth{Signer: tc.signer}
			h := lockHandler{auth: auth, mover: reg, policy: reg, ctrl: ctrl}

			ctx := blockCtx(400)
			tx := &vaulttest.Tx{Msg: tc.msg}

			if _, err := h.Check(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			_, err := h.Deliver(ctx, db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			rec, lerr := ctrl.LockStatus(db, 7)
			if lerr != nil {
				t.Fatalf("cannot get lock status: %+v", lerr)
			}
			if tc.wantErr != nil {
				if rec != nil {
					t.Fatalf("failed lock left a record: %+v", rec)
				}
				return
			}
			if rec == nil {
				t.Fatal("lock record not found")
			}
			if !rec.Owner.Equals(tc.wantOwner) {
				t.Fatalf("unexpected record owner: %s", rec.Owner)
			}
			if rec.DepositedAt != 400 {
				t.Fatalf("unexpected deposit time: %d", rec.DepositedAt)
			}
		})
	}
}

func TestLockHandlerVintageCheckMissing(t *testing.T) {
	db := store.MemStore()

	// A vintage flag without a policy address never passes the
	// configuration validation, so write the raw state directly.
	conf := Configuration{
		Admin:           vaulttest.NewCondition().Address(),
		AssetRegistry:   vaulttest.NewCondition().Address(),
		ValidateVintage: true,
	}
	raw, err := conf.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal configuration: %+v", err)
	}
	if err := db.Set([]byte("_c:timelock"), raw); err != nil {
		t.Fatalf("cannot write configuration: %+v", err)
	}

	aliceCond := vaulttest.NewCondition()
	reg := newRegistryFake()
	reg.owners[7] = aliceCond.Address()
	ctrl := NewController(reg)

	h := lockHandler{
		auth:   &vaulttest.Auth{Signer: aliceCond},
		mover:  reg,
		policy: reg,
		ctrl:   ctrl,
	}
	tx := &vaulttest.Tx{Msg: &LockMsg{TokenId: 7, UnlockTimestamp: 1000}}
	if _, err := h.Deliver(blockCtx(400), db, tx); !ErrVintageCheckMissing.Is(err) {
		t.Fatalf("wanted a vintage check missing error, got %+v", err)
	}
	rec, err := ctrl.LockStatus(db, 7)
	if err != nil {
		t.Fatalf("cannot get lock status: %+v", err)
	}
	if rec != nil {
		t.Fatalf("failed lock left a record: %+v", rec)
	}
}

func TestLockHandlerAlreadyLocked(t *testing.T) {
	db := store.MemStore()
	aliceCond := vaulttest.NewCondition()
	if err := gconf.Save(db, "timelock", &Configuration{
		Admin:         vaulttest.NewCondition().Address(),
		AssetRegistry: vaulttest.NewCondition().Address(),
	}); err != nil {
		t.Fatalf("cannot save configuration: %+v", err)
	}
	reg := newRegistryFake()
	reg.owners[7] = aliceCond.Address()
	ctrl := NewController(reg)

	h := lockHandler{
		auth:   &vaulttest.Auth{Signer: aliceCond},
		mover:  reg,
		policy: reg,
		ctrl:   ctrl,
	}
	tx := &vaulttest.Tx{Msg: &LockMsg{TokenId: 7, UnlockTimestamp: 1000}}
	if _, err := h.Deliver(blockCtx(400), db, tx); err != nil {
		t.Fatalf("cannot lock: %+v", err)
	}
	if _, err := h.Deliver(blockCtx(401), db, tx); !ErrAlreadyLocked.Is(err) {
		t.Fatalf("wanted an already locked error, got %+v", err)
	}
	// The original record must not be touched.
	rec, err := ctrl.LockStatus(db, 7)
	if err != nil {
		t.Fatalf("cannot get lock status: %+v", err)
	}
	if rec == nil || rec.DepositedAt != 400 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestReleaseHandler(t *testing.T) {
	cases := map[string]struct {
		lockUntil vault.UnixTime
		noLock    bool
		now       vault.UnixTime
		wantTags  bool
	}{
		"eligible lock is released": {
			lockUntil: 1000,
			now:       1000,
			wantTags:  true,
		},
		"too early": {
			lockUntil: 1000,
			now:       999,
		},
		"no lock": {
			noLock: true,
			now:    1000,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			aliceCond := vaulttest.NewCondition()
			reg := newRegistryFake()
			reg.owners[7] = aliceCond.Address()
			ctrl := NewController(reg)
			if !tc.noLock {
				if err := ctrl.Lock(db, 7, aliceCond.Address(), tc.lockUntil, 100); err != nil {
					t.Fatalf("cannot lock: %+v", err)
				}
			}

			// Anyone can release, the transaction does not have to
			// be signed.
			h := releaseHandler{ctrl: ctrl}
			tx := &vaulttest.Tx{Msg: &ReleaseMsg{TokenId: 7}}
			res, err := h.Deliver(blockCtx(tc.now), db, tx)
			if err != nil {
				t.Fatalf("cannot deliver: %+v", err)
			}
			if tc.wantTags {
				if len(res.Tags) == 0 {
					t.Fatal("a release must be tagged")
				}
				if !reg.owners[7].Equals(aliceCond.Address()) {
					t.Fatalf("custody not returned: %s", reg.owners[7])
				}
			} else if len(res.Tags) != 0 {
				t.Fatalf("a no-op release must not be tagged: %v", res.Tags)
			}
		})
	}
}

func TestBatchReleaseHandler(t *testing.T) {
	db := store.MemStore()
	aliceCond := vaulttest.NewCondition()
	reg := newRegistryFake()
	ctrl := NewController(reg)

	for id, unlock := range map[uint64]vault.UnixTime{
		1: 500,
		2: 1000,
		3: 2000,
	} {
		reg.owners[id] = aliceCond.Address()
		if err := ctrl.Lock(db, id, aliceCond.Address(), unlock, 100); err != nil {
			t.Fatalf("cannot lock token %d: %+v", id, err)
		}
	}

	h := batchReleaseHandler{ctrl: ctrl}

	// Token 4 was never locked. Its presence must not affect the others.
	tx := &vaulttest.Tx{Msg: &BatchReleaseMsg{TokenIds: []uint64{1, 2, 3, 4}}}
	res, err := h.Deliver(blockCtx(1000), db, tx)
	if err != nil {
		t.Fatalf("cannot deliver: %+v", err)
	}
	// Two tags per released token.
	if len(res.Tags) != 4 {
		t.Fatalf("want two releases tagged, got %v", res.Tags)
	}
	for id, wantLocked := range map[uint64]bool{1: false, 2: false, 3: true} {
		rec, err := ctrl.LockStatus(db, id)
		if err != nil {
			t.Fatalf("cannot get lock status: %+v", err)
		}
		if gotLocked := rec != nil; gotLocked != wantLocked {
			t.Fatalf("token %d: locked %v", id, gotLocked)
		}
	}
}

func TestForceReleaseHandler(t *testing.T) {
	adminCond := vaulttest.NewCondition()

	cases := map[string]struct {
		signer  vault.Condition
		lock    bool
		wantErr *errors.Error
	}{
		"admin ignores the unlock time": {
			signer: adminCond,
			lock:   true,
		},
		"not the admin": {
			signer:  vaulttest.NewCondition(),
			lock:    true,
			wantErr: errors.ErrUnauthorized,
		},
		"no lock": {
			signer:  adminCond,
			wantErr: ErrNotLocked,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := gconf.Save(db, "timelock", &Configuration{
				Admin:         adminCond.Address(),
				AssetRegistry: vaulttest.NewCondition().Address(),
			}); err != nil {
				t.Fatalf("cannot save configuration: %+v", err)
			}
			aliceCond := vaulttest.NewCondition()
			reg := newRegistryFake()
			reg.owners[7] = aliceCond.Address()
			ctrl := NewController(reg)
			if tc.lock {
				if err := ctrl.Lock(db, 7, aliceCond.Address(), 99999, 100); err != nil {
					t.Fatalf("cannot lock: %+v", err)
				}
			}

			h := forceReleaseHandler{auth: &vaulttest.Auth{Signer: tc.signer}, ctrl: ctrl}
			tx := &vaulttest.Tx{Msg: &ForceReleaseMsg{TokenId: 7}}
			if _, err := h.Deliver(blockCtx(200), db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.wantErr == nil {
				if !reg.owners[7].Equals(aliceCond.Address()) {
					t.Fatalf("custody not returned: %s", reg.owners[7])
				}
				rec, err := ctrl.LockStatus(db, 7)
				if err != nil {
					t.Fatalf("cannot get lock status: %+v", err)
				}
				if rec != nil {
					t.Fatalf("record not removed: %+v", rec)
				}
			}
		})
	}
}
