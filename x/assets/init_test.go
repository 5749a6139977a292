package assets

import (
	"encoding/json"
	"fmt"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
)

func TestGenesisInitializer(t *testing.T) {
	db := store.MemStore()

	admin := vaulttest.NewCondition().Address()
	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()

	const genesis = `
	{
		"conf": {
			"assets": {
				"owner": "%s",
				"issuer": "%s"
			}
		},
		"tokens": [
			{"token_id": 1, "owner": "%s", "vintage_unlock": 1500000000},
			{"token_id": 2, "owner": "%s"}
		]
	}
	`

	var opts vault.Options
	raw := fmt.Sprintf(genesis, admin, admin, alice, bob)
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	var ini Initializer
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot initialize: %+v", err)
	}

	ctrl := NewController()
	owner, err := ctrl.TokenOwner(db, 1)
	if err != nil {
		t.Fatalf("cannot get token owner: %+v", err)
	}
	if !owner.Equals(alice) {
		t.Fatalf("unexpected owner: %s", owner)
	}
	vintage, err := ctrl.MinUnlockTime(db, 2)
	if err != nil {
		t.Fatalf("cannot get vintage: %+v", err)
	}
	if vintage != 0 {
		t.Fatalf("unexpected vintage: %d", vintage)
	}
}
