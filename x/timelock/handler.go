package timelock

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/x"
)

const (
	lockCost    = 200
	releaseCost = 100

	tagAction  = "timelock-action"
	tagTokenID = "token-id"
)

// RegisterQuery registers the lock bucket for queries.
func RegisterQuery(qr vault.QueryRouter) {
	NewBucket().Register("locks", qr)
	qr.Register("/locks/until", lockedUntilHandler{bucket: NewBucket()})
}

// RegisterRoutes registers handlers for all message types of this package.
// The asset registry and the vintage policy are injected so that custody and
// maturity rules stay outside of the escrow.
func RegisterRoutes(r vault.Registry, auth x.Authenticator, mover TokenMover, policy VintagePolicy) {
	ctrl := NewController(mover)
	r.Handle(&LockMsg{}, &lockHandler{auth: auth, mover: mover, policy: policy, ctrl: ctrl})
	r.Handle(&ReleaseMsg{}, &releaseHandler{ctrl: ctrl})
	r.Handle(&BatchReleaseMsg{}, &batchReleaseHandler{ctrl: ctrl})
	r.Handle(&ForceReleaseMsg{}, &forceReleaseHandler{auth: auth, ctrl: ctrl})
}

func blockNow(ctx vault.Context) (vault.UnixTime, error) {
	t, err := vault.BlockTime(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block time")
	}
	return vault.AsUnixTime(t), nil
}

func actionTags(action string, tokenID uint64) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagAction), Value: []byte(action)},
		{Key: []byte(tagTokenID), Value: []byte(strconv.FormatUint(tokenID, 10))},
	}
}

type lockHandler struct {
	auth   x.Authenticator
	mover  TokenMover
	policy VintagePolicy
	ctrl   Controller
}

var _ vault.Handler = (*lockHandler)(nil)

func (h *lockHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: lockCost}, nil
}

func (h *lockHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Lock(db, msg.TokenId, owner, msg.UnlockTimestamp, now); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Tags: actionTags("locked", msg.TokenId)}, nil
}

// validate authorizes the lock and resolves the owner the custody is taken
// from. A transaction signed by the configured asset registry is a relay and
// the owner is read from the registry. Any other transaction locks on behalf
// of its main signer.
func (h *lockHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*LockMsg, vault.Address, error) {
	var msg LockMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}

	var owner vault.Address
	if h.auth.HasAddress(ctx, conf.AssetRegistry) {
		owner, err = h.mover.TokenOwner(db, msg.TokenId)
		if err != nil {
			return nil, nil, errors.Wrap(err, "relay lock")
		}
	} else {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
		}
		owner = signer.Address()
	}

	if conf.ValidateVintage {
		if len(conf.VintagePolicy) == 0 {
			return nil, nil, errors.Wrap(ErrVintageCheckMissing, "no vintage policy configured")
		}
		min, err := h.policy.MinUnlockTime(db, msg.TokenId)
		if err != nil {
			return nil, nil, errors.Wrap(err, "vintage policy")
		}
		if msg.UnlockTimestamp < min {
			return nil, nil, errors.Wrapf(ErrVintageMismatch, "unlock %d before minimum %d", msg.UnlockTimestamp, min)
		}
	}

	return &msg, owner, nil
}

// releaseHandler needs no authentication, anyone can trigger a release of
// an expired lock.
type releaseHandler struct {
	ctrl Controller
}

var _ vault.Handler = (*releaseHandler)(nil)

func (h *releaseHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg ReleaseMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &vault.CheckResult{GasAllocated: releaseCost}, nil
}

func (h *releaseHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg ReleaseMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	released, err := h.ctrl.Release(db, msg.TokenId, now)
	if err != nil {
		return nil, err
	}
	res := &vault.DeliverResult{}
	if released {
		res.Tags = actionTags("released", msg.TokenId)
	}
	return res, nil
}

type batchReleaseHandler struct {
	ctrl Controller
}

var _ vault.Handler = (*batchReleaseHandler)(nil)

func (h *batchReleaseHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg BatchReleaseMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &vault.CheckResult{GasAllocated: int64(len(msg.TokenIds)) * releaseCost}, nil
}

func (h *batchReleaseHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg BatchReleaseMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	res := &vault.DeliverResult{}
	for _, tokenID := range msg.TokenIds {
		released, err := h.ctrl.Release(db, tokenID, now)
		if err != nil {
			return nil, err
		}
		if released {
			res.Tags = append(res.Tags, actionTags("released", tokenID)...)
		}
	}
	return res, nil
}

type forceReleaseHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vault.Handler = (*forceReleaseHandler)(nil)

func (h *forceReleaseHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: releaseCost}, nil
}

func (h *forceReleaseHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.ForceRelease(db, msg.TokenId); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Tags: actionTags("force_released", msg.TokenId)}, nil
}

// validate requires the signature of the configured admin specifically.
func (h *forceReleaseHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*ForceReleaseMsg, error) {
	var msg ForceReleaseMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "locks can be force released only by %s", conf.Admin)
	}
	return &msg, nil
}
