package assets

import (
	"testing"

	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
)

func TestControllerIssue(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	alice := vaulttest.NewCondition().Address()

	if err := ctrl.Issue(db, 1, alice, 1500000000); err != nil {
		t.Fatalf("cannot issue token: %+v", err)
	}
	if err := ctrl.Issue(db, 1, alice, 1500000000); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("wanted duplicate error, got %+v", err)
	}

	owner, err := ctrl.TokenOwner(db, 1)
	if err != nil {
		t.Fatalf("cannot get token owner: %+v", err)
	}
	if !owner.Equals(alice) {
		t.Fatalf("unexpected owner: %s", owner)
	}

	vintage, err := ctrl.MinUnlockTime(db, 1)
	if err != nil {
		t.Fatalf("cannot get vintage: %+v", err)
	}
	if vintage != 1500000000 {
		t.Fatalf("unexpected vintage: %d", vintage)
	}
}

func TestControllerUnknownToken(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	if _, err := ctrl.TokenOwner(db, 123); !errors.ErrNotFound.Is(err) {
		t.Fatalf("wanted not found error, got %+v", err)
	}
	if _, err := ctrl.MinUnlockTime(db, 123); !errors.ErrNotFound.Is(err) {
		t.Fatalf("wanted not found error, got %+v", err)
	}
	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()
	if err := ctrl.MoveToken(db, alice, bob, 123); !errors.ErrNotFound.Is(err) {
		t.Fatalf("wanted not found error, got %+v", err)
	}
}

func TestControllerMoveToken(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()
	charlie := vaulttest.NewCondition().Address()

	if err := ctrl.Issue(db, 1, alice, 0); err != nil {
		t.Fatalf("cannot issue token: %+v", err)
	}

	// Only the current holder can be the transfer source.
	if err := ctrl.MoveToken(db, bob, charlie, 1); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("wanted unauthorized error, got %+v", err)
	}

	if err := ctrl.MoveToken(db, alice, bob, 1); err != nil {
		t.Fatalf("cannot move token: %+v", err)
	}
	owner, err := ctrl.TokenOwner(db, 1)
	if err != nil {
		t.Fatalf("cannot get token owner: %+v", err)
	}
	if !owner.Equals(bob) {
		t.Fatalf("unexpected owner: %s", owner)
	}

	// After the move the old owner cannot move the token anymore.
	if err := ctrl.MoveToken(db, alice, charlie, 1); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("wanted unauthorized error, got %+v", err)
	}
}
