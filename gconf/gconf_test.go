package gconf

import (
	"encoding/json"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	src := &myconfig{
		Owner: vaulttest.NewCondition().Address(),
		Num:   852151421,
		Str:   "foobar",
		Q:     quota{Used: 3, Max: 10},
	}
	if err := Save(db, "mypkg", src); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}

	var got myconfig
	if err := Load(db, "mypkg", &got); err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	assert.Equal(t, src, &got)

	// Configurations are stored per package.
	if err := Load(db, "otherpkg", &got); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()

	src := &myconfig{
		Owner: vaulttest.NewCondition().Address(),
		Q:     quota{Used: 1, Max: -1},
	}
	if err := Save(db, "mypkg", src); !errors.ErrState.Is(err) {
		t.Fatalf("want a validation error, got %+v", err)
	}
}

func TestInitConfig(t *testing.T) {
	owner := vaulttest.NewCondition().Address()

	genesis := map[string]interface{}{
		"conf": map[string]interface{}{
			"mypkg": &myconfig{
				Owner: owner,
				Num:   42,
				Str:   "genesis",
			},
		},
	}
	raw, err := json.Marshal(genesis)
	if err != nil {
		t.Fatalf("cannot serialize genesis: %s", err)
	}
	var opts vault.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		t.Fatalf("cannot deserialize genesis: %s", err)
	}

	db := store.MemStore()
	var conf myconfig
	if err := InitConfig(db, opts, "mypkg", &conf); err != nil {
		t.Fatalf("cannot initialize configuration: %s", err)
	}

	var got myconfig
	if err := Load(db, "mypkg", &got); err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	assert.Equal(t, int64(42), got.Num)
	assert.Equal(t, "genesis", got.Str)

	// Missing genesis declaration must not pass the initialization.
	if err := InitConfig(db, opts, "unknownpkg", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}
