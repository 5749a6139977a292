package vaultd

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/app"
	"github.com/carbonvault/vault/crypto"
	"github.com/carbonvault/vault/x/assets"
	"github.com/carbonvault/vault/x/timelock"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one admin account and
// one asset registry account, to use for dev mode.
//
// The first argument is an optional admin address, the second an optional
// asset registry address. Missing keys are generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var admin string
	if len(args) > 0 {
		admin = args[0]
	} else {
		bz, keys, err := GenerateAdminKey()
		if err != nil {
			return nil, err
		}
		admin = hex.EncodeToString(bz)
		fmt.Println(keys)
	}

	var registry string
	if len(args) > 1 {
		registry = args[1]
	} else {
		bz, keys, err := GenerateAdminKey()
		if err != nil {
			return nil, err
		}
		registry = hex.EncodeToString(bz)
		fmt.Println(keys)
	}

	opts := fmt.Sprintf(`
          {
            "conf": {
              "assets": {
                "owner": "%s",
                "issuer": "%s"
              },
              "timelock": {
                "admin": "%s",
                "asset_registry": "%s",
                "validate_vintage": false
              }
            },
            "tokens": []
          }
	`, admin, admin, admin, registry)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "vault.db")
	}

	stack := Stack()
	application, err := Application("vaultd", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	return DecorateApp(application, logger), nil
}

// DecorateApp adds initializers and Logger to an Application
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(Initializer())
	application.WithLogger(logger)
	return application
}

// Initializer returns the combined genesis initializer of all extensions
// this application is built from.
func Initializer() vault.Initializer {
	return app.ChainInitializers(
		&assets.Initializer{},
		&timelock.Initializer{},
	)
}

// InlineApp represents application for use in retry and inline testing
func InlineApp(kv vault.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	stack := Stack()
	ctx := context.Background()
	store := app.NewStoreApp("vaultd", kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, TxDecoder, stack, debug)
	return DecorateApp(base, logger)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateAdminKey returns the address of a public key, along with a json
// representation of the keys. Import the keys in a client to use them.
func GenerateAdminKey() (vault.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
