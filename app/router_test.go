package app

import (
	"errors"
	"testing"

	vaulterrors "github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/vaulttest"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	var handler vaulttest.Handler
	r.Handle(&vaulttest.Msg{RoutePath: "test/good"}, &handler)

	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/good"}}

	if _, err := r.Check(nil, nil, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := r.Deliver(nil, nil, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	assert.Equal(t, 1, handler.CheckCallCount())
	assert.Equal(t, 1, handler.DeliverCallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/secret"}}

	if _, err := r.Check(nil, nil, tx); !vaulterrors.ErrNotFound.Is(err) {
		t.Fatalf("want not found error, got %+v", err)
	}
	if _, err := r.Deliver(nil, nil, tx); !vaulterrors.ErrNotFound.Is(err) {
		t.Fatalf("want not found error, got %+v", err)
	}
}

func TestRouterHandlerError(t *testing.T) {
	r := NewRouter()

	handler := vaulttest.Handler{
		CheckErr:   errors.New("cannot check"),
		DeliverErr: errors.New("cannot deliver"),
	}
	r.Handle(&vaulttest.Msg{RoutePath: "test/bad"}, &handler)

	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/bad"}}

	if _, err := r.Check(nil, nil, tx); err == nil || err.Error() != "cannot check" {
		t.Fatalf("want the handler error, got %+v", err)
	}
	if _, err := r.Deliver(nil, nil, tx); err == nil || err.Error() != "cannot deliver" {
		t.Fatalf("want the handler error, got %+v", err)
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()

	var handler vaulttest.Handler
	r.Handle(&vaulttest.Msg{RoutePath: "test/good"}, &handler)

	// double registration is a programming error
	assert.Panics(t, func() {
		r.Handle(&vaulttest.Msg{RoutePath: "test/good"}, &handler)
	})
	// as is an invalid path
	assert.Panics(t, func() {
		r.Handle(&vaulttest.Msg{RoutePath: "l:7"}, &handler)
	})
}
