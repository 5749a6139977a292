package app

import (
	"context"
	"testing"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/vaulttest"
	"github.com/carbonvault/vault/vaulttest/assert"
	"github.com/carbonvault/vault/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &vaulttest.Decorator{}
	c2 := &vaulttest.Decorator{}
	c3 := &vaulttest.Decorator{}
	h := &vaulttest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		panicAtHeightDecorator(6),
		c3,
	).WithHandler(h)

	bg := context.Background()

	// make some calls, make sure it is fine
	_, err := stack.Check(bg, nil, nil)
	assert.Nil(t, err)
	ctx := vault.WithHeight(bg, 4)
	_, err = stack.Deliver(ctx, nil, nil)
	assert.Nil(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// now, let's trigger a panic
	ctx = vault.WithHeight(bg, 8)
	if _, err := stack.Check(ctx, nil, nil); err == nil {
		t.Fatal("expected recovered panic to surface as an error")
	}
	if _, err := stack.Deliver(ctx, nil, nil); err == nil {
		t.Fatal("expected recovered panic to surface as an error")
	}

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	// the panic stops the chain before reaching c3
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainNilDecorator(t *testing.T) {
	h := &vaulttest.Handler{}

	stack := ChainDecorators(
		nil,
		&vaulttest.Decorator{},
		(*nilDecorator)(nil),
	).WithHandler(h)

	if _, err := stack.Check(context.Background(), nil, nil); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	assert.Equal(t, 1, h.CallCount())
}

// panicAtHeightDecorator panics during processing of any block at or
// above the given height.
type panicAtHeightDecorator int64

var _ vault.Decorator = panicAtHeightDecorator(0)

func (d panicAtHeightDecorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	if val, _ := vault.GetHeight(ctx); val >= int64(d) {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (d panicAtHeightDecorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	if val, _ := vault.GetHeight(ctx); val >= int64(d) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}

type nilDecorator struct{}

func (d *nilDecorator) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	return next.Check(ctx, store, tx)
}

func (d *nilDecorator) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	return next.Deliver(ctx, store, tx)
}
