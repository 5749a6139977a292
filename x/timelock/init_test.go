package timelock

import (
	"encoding/json"
	"fmt"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
)

func TestGenesisInitializer(t *testing.T) {
	db := store.MemStore()

	admin := vaulttest.NewCondition().Address()
	registry := vaulttest.NewCondition().Address()
	policy := vaulttest.NewCondition().Address()

	const genesis = `
	{
		"conf": {
			"timelock": {
				"admin": "%s",
				"asset_registry": "%s",
				"validate_vintage": true,
				"vintage_policy": "%s"
			}
		}
	}
	`

	var opts vault.Options
	raw := fmt.Sprintf(genesis, admin, registry, policy)
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	var ini Initializer
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot initialize: %+v", err)
	}

	got, err := Admin(db)
	if err != nil {
		t.Fatalf("cannot get admin: %+v", err)
	}
	if !got.Equals(admin) {
		t.Fatalf("unexpected admin: %s", got)
	}
	got, err = AssetRegistry(db)
	if err != nil {
		t.Fatalf("cannot get asset registry: %+v", err)
	}
	if !got.Equals(registry) {
		t.Fatalf("unexpected asset registry: %s", got)
	}

	// The configuration can be written only once.
	if err := ini.FromGenesis(opts, db); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("wanted an already initialized error, got %+v", err)
	}
}

func TestGenesisInitializerVintageFlagRequiresPolicy(t *testing.T) {
	db := store.MemStore()

	admin := vaulttest.NewCondition().Address()
	registry := vaulttest.NewCondition().Address()

	const genesis = `
	{
		"conf": {
			"timelock": {
				"admin": "%s",
				"asset_registry": "%s",
				"validate_vintage": true
			}
		}
	}
	`

	var opts vault.Options
	raw := fmt.Sprintf(genesis, admin, registry)
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	var ini Initializer
	if err := ini.FromGenesis(opts, db); !errors.ErrEmpty.Is(err) {
		t.Fatalf("wanted a validation error, got %+v", err)
	}
	// Nothing must be written.
	if _, err := Admin(db); !ErrNotInitialized.Is(err) {
		t.Fatalf("wanted a not initialized error, got %+v", err)
	}
}
