package vaultd_test

import (
	"encoding/binary"
	"fmt"
	"testing"
	"time"

	vault "github.com/carbonvault/vault"
	vaultApp "github.com/carbonvault/vault/app"
	vaultd "github.com/carbonvault/vault/cmd/vaultd/app"
	"github.com/carbonvault/vault/crypto"
	"github.com/carbonvault/vault/vaulttest/assert"
	"github.com/carbonvault/vault/x/assets"
	"github.com/carbonvault/vault/x/sigs"
	"github.com/carbonvault/vault/x/timelock"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

func TestApp(t *testing.T) {
	const chainID = "test-vault-1"

	adminKey := crypto.GenPrivKeyEd25519()
	admin := adminKey.PublicKey().Address()
	ownerKey := crypto.GenPrivKeyEd25519()
	owner := ownerKey.PublicKey().Address()
	registryKey := crypto.GenPrivKeyEd25519()
	registry := registryKey.PublicKey().Address()

	genesis := fmt.Sprintf(`
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
		"tokens": [
			{"token_id": 1, "owner": "%s", "vintage_unlock": 0}
		]
	}
	`, admin, admin, admin, registry, owner)

	myApp, err := vaultd.GenerateApp("", log.NewNopLogger(), true)
	assert.Nil(t, err)
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(genesis),
		ChainId:       chainID,
	})
	commitGenesis(t, myApp)

	// the genesis token belongs to its owner
	assert.Equal(t, owner, queryTokenOwner(t, myApp, 1))

	// the owner locks the token until 5000
	lock := &vaultd.Tx{
		Sum: &vaultd.Tx_LockMsg{LockMsg: &timelock.LockMsg{
			TokenId:         1,
			UnlockTimestamp: 5000,
		}},
	}
	dres := signAndCommit(t, myApp, lock, signer{ownerKey, 0}, chainID, 2, 1000)
	assertTag(t, dres.Tags, "action", "timelock/lock")
	assertTag(t, dres.Tags, "timelock-action", "locked")

	rec := queryLock(t, myApp, "/locks", tokenKey(1))
	if rec == nil {
		t.Fatal("lock record not found")
	}
	assert.Equal(t, owner, rec.Owner)
	assert.Equal(t, vault.UnixTime(5000), rec.UnlockTimestamp)
	assert.Equal(t, vault.UnixTime(1000), rec.DepositedAt)

	// the token moved into custody
	custody := timelock.CustodyCondition(1).Address()
	assert.Equal(t, custody, queryTokenOwner(t, myApp, 1))

	// a premature release is accepted but does nothing
	release := &vaultd.Tx{
		Sum: &vaultd.Tx_ReleaseMsg{ReleaseMsg: &timelock.ReleaseMsg{TokenId: 1}},
	}
	signAndCommit(t, myApp, release, signer{ownerKey, 1}, chainID, 3, 3000)
	assert.Equal(t, custody, queryTokenOwner(t, myApp, 1))

	// once the unlock time is reached anyone can release
	release = &vaultd.Tx{
		Sum: &vaultd.Tx_ReleaseMsg{ReleaseMsg: &timelock.ReleaseMsg{TokenId: 1}},
	}
	dres = signAndCommit(t, myApp, release, signer{ownerKey, 2}, chainID, 4, 5000)
	assertTag(t, dres.Tags, "timelock-action", "released")
	assert.Equal(t, owner, queryTokenOwner(t, myApp, 1))
	if rec := queryLock(t, myApp, "/locks", tokenKey(1)); rec != nil {
		t.Fatalf("lock record was not removed: %+v", rec)
	}

	// lock again far into the future
	lock = &vaultd.Tx{
		Sum: &vaultd.Tx_LockMsg{LockMsg: &timelock.LockMsg{
			TokenId:         1,
			UnlockTimestamp: 99999,
		}},
	}
	signAndCommit(t, myApp, lock, signer{ownerKey, 3}, chainID, 5, 6000)

	// the lock is listed among those that outlast the given time
	tsData := make([]byte, 8)
	binary.BigEndian.PutUint64(tsData, 7000)
	rec = queryLock(t, myApp, "/locks/until", tsData)
	if rec == nil {
		t.Fatal("lock record not found in range query")
	}
	assert.Equal(t, uint64(1), rec.TokenId)

	// the admin does not have to wait
	force := &vaultd.Tx{
		Sum: &vaultd.Tx_ForceReleaseMsg{ForceReleaseMsg: &timelock.ForceReleaseMsg{TokenId: 1}},
	}
	dres = signAndCommit(t, myApp, force, signer{adminKey, 0}, chainID, 6, 7000)
	assertTag(t, dres.Tags, "timelock-action", "force_released")
	assert.Equal(t, owner, queryTokenOwner(t, myApp, 1))
}

func TestAppRelayLock(t *testing.T) {
	const chainID = "test-vault-relay"

	adminKey := crypto.GenPrivKeyEd25519()
	admin := adminKey.PublicKey().Address()
	ownerKey := crypto.GenPrivKeyEd25519()
	owner := ownerKey.PublicKey().Address()
	registryKey := crypto.GenPrivKeyEd25519()
	registry := registryKey.PublicKey().Address()

	genesis := fmt.Sprintf(`
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
		"tokens": [
			{"token_id": 8, "owner": "%s", "vintage_unlock": 0}
		]
	}
	`, admin, admin, admin, registry, owner)

	myApp, err := vaultd.GenerateApp("", log.NewNopLogger(), true)
	assert.Nil(t, err)
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(genesis),
		ChainId:       chainID,
	})
	commitGenesis(t, myApp)

	// a lock signed by the asset registry is a relay and the custody is
	// taken from the current token owner
	lock := &vaultd.Tx{
		Sum: &vaultd.Tx_LockMsg{LockMsg: &timelock.LockMsg{
			TokenId:         8,
			UnlockTimestamp: 5000,
		}},
	}
	signAndCommit(t, myApp, lock, signer{registryKey, 0}, chainID, 2, 1000)

	rec := queryLock(t, myApp, "/locks", tokenKey(8))
	if rec == nil {
		t.Fatal("lock record not found")
	}
	assert.Equal(t, owner, rec.Owner)
	assert.Equal(t, timelock.CustodyCondition(8).Address(), queryTokenOwner(t, myApp, 8))
}

type signer struct {
	pk    *crypto.PrivateKey
	nonce int64
}

func tokenKey(tokenID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tokenID)
	return key
}

// commitGenesis closes an empty first block, so that the genesis writes
// become visible to queries and CheckTx.
func commitGenesis(t *testing.T, app abci.Application) {
	t.Helper()

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	app.EndBlock(abci.RequestEndBlock{})
	cres := app.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
}

// signAndCommit signs tx and submits it within its own block at the given
// block time. It fails the test in case of errors during the process.
func signAndCommit(
	t *testing.T,
	app abci.Application,
	tx *vaultd.Tx,
	s signer,
	chainID string,
	height int64,
	blockTime int64,
) abci.ResponseDeliverTx {
	t.Helper()

	sig, err := sigs.SignTx(s.pk, tx, chainID, s.nonce)
	assert.Nil(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	txBytes, err := tx.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, true, len(txBytes) != 0)

	header := abci.Header{
		Height: height,
		Time:   time.Unix(blockTime, 0),
	}
	app.BeginBlock(abci.RequestBeginBlock{Header: header})

	chres := app.CheckTx(txBytes)
	if chres.Code != 0 {
		t.Fatalf("check failed: %s", chres.Log)
	}

	dres := app.DeliverTx(txBytes)
	if dres.Code != 0 {
		t.Fatalf("deliver failed: %s", dres.Log)
	}

	app.EndBlock(abci.RequestEndBlock{})
	cres := app.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	return dres
}

func queryTokenOwner(t *testing.T, baseApp abci.Application, tokenID uint64) vault.Address {
	t.Helper()
	res := baseApp.Query(abci.RequestQuery{Path: "/tokens", Data: tokenKey(tokenID)})
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var token assets.Token
	assert.Nil(t, vaultApp.UnmarshalOneResult(res.Value, &token))
	return token.Owner
}

// queryLock returns the first lock record matching the query or nil when
// there is no match.
func queryLock(t *testing.T, baseApp abci.Application, path string, data []byte) *timelock.LockRecord {
	t.Helper()
	res := baseApp.Query(abci.RequestQuery{Path: path, Data: data})
	assert.Equal(t, uint32(0), res.Code)
	if len(res.Value) == 0 {
		return nil
	}

	var rec timelock.LockRecord
	assert.Nil(t, vaultApp.UnmarshalOneResult(res.Value, &rec))
	if rec.Owner == nil {
		return nil
	}
	return &rec
}

func assertTag(t *testing.T, tags []common.KVPair, key, value string) {
	t.Helper()
	for _, tag := range tags {
		if string(tag.Key) == key && string(tag.Value) == value {
			return
		}
	}
	t.Fatalf("tag %s=%s not found", key, value)
}
