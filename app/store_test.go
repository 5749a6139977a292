package app

import (
	"context"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest"
	"github.com/carbonvault/vault/vaulttest/assert"
	abci "github.com/tendermint/tendermint/abci/types"
)

func TestChainID(t *testing.T) {
	kv := store.MemStore()

	// no chain id stored yet
	assert.Equal(t, "", mustLoadChainID(kv))

	// too short is rejected
	if err := saveChainID(kv, "bad"); err == nil {
		t.Fatal("expected invalid chain id to be rejected")
	}

	assert.Nil(t, saveChainID(kv, "my-chain-22"))
	assert.Equal(t, "my-chain-22", mustLoadChainID(kv))

	// cannot be modified once set
	if err := saveChainID(kv, "my-chain-33"); err == nil {
		t.Fatal("expected chain id overwrite to be rejected")
	}
	assert.Equal(t, "my-chain-22", mustLoadChainID(kv))
}

type genesisRecorder struct {
	opts vault.Options
}

func (g *genesisRecorder) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	g.opts = opts
	return kv.Set([]byte("init"), []byte("done"))
}

func TestStoreApp(t *testing.T) {
	db, cleanup := vaulttest.CommitKVStore(t)
	defer cleanup()

	var init genesisRecorder
	s := NewStoreApp("vaultd-test", db, vault.NewQueryRouter(), context.Background()).
		WithInit(&init)

	assert.Equal(t, "", s.GetChainID())

	s.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain-1",
		AppStateBytes: []byte(`{"something": {"key": "value"}}`),
	})
	assert.Equal(t, "test-chain-1", s.GetChainID())
	if init.opts == nil {
		t.Fatal("initializer was not called")
	}

	// initializer writes must be visible via the deliver store
	v, err := s.DeliverStore().Get([]byte("init"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("done"), v)

	// commit persists and bumps the height
	s.Commit()
	info := s.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)

	// a second InitChain is a configuration error
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{
			ChainId:       "test-chain-2",
			AppStateBytes: []byte(`{}`),
		})
	})
}
