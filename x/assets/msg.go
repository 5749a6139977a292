package assets

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
)

const (
	pathIssueMsg               = "assets/issue"
	pathTransferMsg            = "assets/transfer"
	pathUpdateConfigurationMsg = "assets/updateConfiguration"
)

var _ vault.Msg = (*IssueMsg)(nil)
var _ vault.Msg = (*TransferMsg)(nil)
var _ vault.Msg = (*UpdateConfigurationMsg)(nil)

func (IssueMsg) Path() string {
	return pathIssueMsg
}

func (m *IssueMsg) Validate() error {
	var errs error
	if m.TokenId == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.Wrap(errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "VintageUnlock", m.VintageUnlock.Validate())
	return errs
}

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	if m.TokenId == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.Wrap(errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch is required")
	}
	return m.Patch.Validate()
}
