package gconf

import (
	"context"
	"encoding/json"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestUpdateConfigurationHandler(t *testing.T) {
	cond := vaulttest.NewCondition()

	cases := map[string]struct {
		// If Init is provided, initialize the database before running
		// handler code. This should represent the configuration's
		// initial state. Use nil to not provide initial state.
		Init ValidMarshaler

		Msg            vault.Msg
		MsgConditions  []vault.Condition
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error

		// When not nil database state will be tested to contain the
		// exact version of the configuration.
		WantConfig *myconfig
	}{
		"success": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Q:     quota{Used: 10, Max: 409},
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   333,
					Str:   "boing!",
					Q:     quota{Used: 4, Max: 4},
				},
			},
			MsgConditions: []vault.Condition{cond},
			WantConfig: &myconfig{
				Owner: cond.Address(),
				Num:   333,
				Str:   "boing!",
				Q:     quota{Used: 4, Max: 4},
			},
		},
		"message must be signed by the configuration owner": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Q:     quota{Used: 10, Max: 409},
			},
			MsgConditions: []vault.Condition{
				// A random condition - for sure not the same as the Owner.
				vaulttest.NewCondition(),
			},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"zero values are not updating the configuration": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Q:     quota{Used: 10, Max: 409},
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   0,
					Str:   "",
					Q:     quota{Used: 0, Max: 4},
				},
			},
			MsgConditions: []vault.Condition{cond},
			WantConfig: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Q:     quota{Used: 0, Max: 4},
			},
		},
		"invalid configuration is not accepted": {
			Init: &myconfig{
				Owner: cond.Address(),
				Num:   5125,
				Str:   "foobar",
				Q:     quota{Used: 10, Max: 409},
			},
			Msg: &myconfigMsg{
				Patch: &myconfig{
					Owner: cond.Address(),
					Num:   123,
					Str:   "foo",
					Q:     quota{Used: 4, Max: -1}, // Negative max.
				},
			},
			MsgConditions:  []vault.Condition{cond},
			WantCheckErr:   errors.ErrState,
			WantDeliverErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			if tc.Init != nil {
				if err := Save(db, "mypkg", tc.Init); err != nil {
					t.Fatalf("cannot save initial configuration: %s", err)
				}
			}

			var c myconfig
			auth := &vaulttest.CtxAuth{Key: "auth"}
			handler := NewUpdateConfigurationHandler("mypkg", &c, auth, nil)

			ctx := vault.WithHeight(context.Background(), 999)
			ctx = vault.WithChainID(ctx, "mychain-123")
			ctx = auth.SetConditions(ctx, tc.MsgConditions...)

			tx := &vaulttest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := handler.Check(ctx, cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatal(err)
			}
			cache.Discard()

			if _, err := handler.Deliver(ctx, db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatal(err)
			}

			if tc.WantConfig != nil {
				var got myconfig
				if err := Load(db, "mypkg", &got); err != nil {
					t.Fatalf("cannot load configuration from the database: %s", err)
				}
				assert.Equal(t, tc.WantConfig, &got)
			}
		})
	}
}

type quota struct {
	Used int64
	Max  int64
}

type myconfig struct {
	Owner vault.Address
	Num   int64
	Str   string
	Q     quota
}

func (c *myconfig) GetOwner() vault.Address    { return c.Owner }
func (c *myconfig) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *myconfig) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &c) }

func (c *myconfig) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if c.Q.Max < 0 {
		return errors.Wrap(errors.ErrState, "quota")
	}
	return nil
}

type myconfigMsg struct {
	Patch *myconfig
}

var _ vault.Msg = (*myconfigMsg)(nil)

func (msg *myconfigMsg) Marshal() ([]byte, error)   { return json.Marshal(msg) }
func (msg *myconfigMsg) Unmarshal(raw []byte) error { return json.Unmarshal(raw, &msg) }
func (msg *myconfigMsg) Path() string               { return "myconfig" }
func (msg *myconfigMsg) Validate() error            { return msg.Patch.Validate() }
