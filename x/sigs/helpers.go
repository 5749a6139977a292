package sigs

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/vaulttest"
)

//----- mock objects for testing...

type StdTx struct {
	vault.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ vault.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &vaulttest.Msg{RoutePath: "testdata/payload", Serialized: payload}
	return &StdTx{Tx: &vaulttest.Tx{Msg: msg}}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	// marshal self w/o sigs
	s := tx.Signatures
	tx.Signatures = nil
	defer func() { tx.Signatures = s }()

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
