package assets

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/gconf"
	"github.com/carbonvault/vault/x"
)

const (
	issueTokenCost    = 100
	transferTokenCost = 100
)

// RegisterRoutes registers handlers for all message types of this package.
func RegisterRoutes(r vault.Registry, auth x.Authenticator) {
	ctrl := NewController()
	r.Handle(&IssueMsg{}, &issueHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, &transferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler("assets", &Configuration{}, auth, nil))
}

type issueHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vault.Handler = (*issueHandler)(nil)

func (h *issueHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: issueTokenCost}, nil
}

func (h *issueHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Issue(db, msg.TokenId, msg.Owner, msg.VintageUnlock); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

func (h *issueHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*IssueMsg, error) {
	var msg IssueMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Issuer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "tokens can be issued only by %s", conf.Issuer)
	}
	return &msg, nil
}

type transferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vault.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: transferTokenCost}, nil
}

func (h *transferHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	owner, err := h.ctrl.TokenOwner(db, msg.TokenId)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "token %d is held by %s", msg.TokenId, owner)
	}
	if err := h.ctrl.MoveToken(db, owner, msg.Destination, msg.TokenId); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

func (h *transferHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}
