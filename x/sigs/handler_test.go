package sigs

import (
	"context"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/crypto"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
)

func TestBumpSequenceHandler(t *testing.T) {
	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()

	cases := map[string]struct {
		signer       vault.Condition
		initSeq      int64
		msg          BumpSequenceMsg
		wantCheckErr *errors.Error
		wantSeq      int64
	}{
		"bump by one": {
			signer:  pub.Condition(),
			initSeq: 4,
			msg:     BumpSequenceMsg{Increment: 1},
			wantSeq: 4,
		},
		"bump by many": {
			signer:  pub.Condition(),
			initSeq: 4,
			msg:     BumpSequenceMsg{Increment: 20},
			wantSeq: 23,
		},
		"invalid increment": {
			signer:       pub.Condition(),
			initSeq:      4,
			msg:          BumpSequenceMsg{Increment: 0},
			wantCheckErr: errors.ErrMsg,
		},
		"missing signer": {
			initSeq:      4,
			msg:          BumpSequenceMsg{Increment: 1},
			wantCheckErr: errors.ErrUnauthorized,
		},
		"unknown signer": {
			signer:       vaulttest.NewCondition(),
			initSeq:      4,
			msg:          BumpSequenceMsg{Increment: 1},
			wantCheckErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			bucket := NewBucket()
			user := NewUser(pub)
			AsUser(user).Sequence = tc.initSeq
			if err := bucket.Save(db, user); err != nil {
				t.Fatalf("cannot save user: %+v", err)
			}

			var auth vaulttest.Auth
			if tc.signer != nil {
				auth.Signer = tc.signer
			}
			h := bumpSequenceHandler{b: bucket, auth: &auth}

			ctx := context.Background()
			tx := &vaulttest.Tx{Msg: &tc.msg}

			if _, err := h.Check(ctx, db, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			if tc.wantCheckErr != nil {
				return
			}
			if _, err := h.Deliver(ctx, db, tx); err != nil {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			obj, err := bucket.Get(db, pub.Address())
			if err != nil {
				t.Fatalf("cannot get user: %+v", err)
			}
			if got := AsUser(obj).Sequence; got != tc.wantSeq {
				t.Fatalf("want sequence %d, got %d", tc.wantSeq, got)
			}
		})
	}
}
