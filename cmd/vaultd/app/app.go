/*
Package vaultd links together all the various components
to construct the vaultd app.
*/
package vaultd

import (
	"context"
	"path/filepath"
	"strings"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/app"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/store/iavl"
	"github.com/carbonvault/vault/x"
	"github.com/carbonvault/vault/x/assets"
	"github.com/carbonvault/vault/x/sigs"
	"github.com/carbonvault/vault/x/timelock"
	"github.com/carbonvault/vault/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewActionTagger(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a default router, dispatching to the
// asset registry and the custody escrow
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	assets.RegisterRoutes(r, authFn)
	ctrl := assets.NewController()
	timelock.RegisterRoutes(r, authFn, ctrl, ctrl)
	sigs.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/tokens", "/locks", "/locks/until" and "/auth"
func QueryRouter() vault.QueryRouter {
	r := vault.NewQueryRouter()

	r.RegisterAll(
		assets.RegisterQuery,
		timelock.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() vault.Handler {
	authFn := Authenticator()
	return Chain(authFn).
		WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h vault.Handler,
	tx vault.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (vault.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", path)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
