package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/tendermint/tendermint/libs/log"
)

func TestInitCmd(t *testing.T) {
	home, err := ioutil.TempDir("", "vaultd")
	if err != nil {
		t.Fatalf("cannot create home directory: %s", err)
	}
	defer os.RemoveAll(home)

	gen := func(args []string) (json.RawMessage, error) {
		return json.RawMessage(`{"conf": {}}`), nil
	}

	logger := log.NewNopLogger()
	if err := InitCmd(gen, logger, home, nil); err != nil {
		t.Fatalf("cannot initialize: %+v", err)
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	raw, err := ioutil.ReadFile(genFile)
	if err != nil {
		t.Fatalf("cannot read genesis file: %s", err)
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}
	if doc["app_state"] == nil {
		t.Fatal("genesis file is missing the application state")
	}
	if doc["chain_id"] == nil {
		t.Fatal("genesis file is missing the chain id")
	}

	// Running again must not destroy existing files.
	if err := InitCmd(gen, logger, home, nil); err != nil {
		t.Fatalf("cannot initialize a second time: %+v", err)
	}
}
