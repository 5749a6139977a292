package app

import (
	"fmt"
	"regexp"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
)

// isPath ensures we register handlers only for paths the transaction
// decoder can produce.
var isPath = regexp.MustCompile(`^[0-9A-Za-z_/\-]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the registered handler.
type Router struct {
	handlers map[string]vault.Handler
}

var _ vault.Registry = (*Router)(nil)
var _ vault.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]vault.Handler),
	}
}

// Handle implements Registry interface. It registers a handler for messages
// of the same type as given message. Path of the message must be unique,
// registering two handlers for the same message path is a programming error
// and panics.
func (r *Router) Handle(m vault.Msg, h vault.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("handler for message path %q is already registered", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this message path. If no path
// is found, it returns a noSuchPathHandler that will produce an error for
// any message processed.
func (r *Router) handler(m vault.Msg) vault.Handler {
	if h, ok := r.handlers[m.Path()]; ok {
		return h
	}
	return noSuchPathHandler(m.Path())
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound error regardless of the
// message processed.
type noSuchPathHandler string

var _ vault.Handler = noSuchPathHandler("")

func (h noSuchPathHandler) Check(vault.Context, vault.KVStore, vault.Tx) (*vault.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}

func (h noSuchPathHandler) Deliver(vault.Context, vault.KVStore, vault.Tx) (*vault.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}
