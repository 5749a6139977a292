package timelock

import (
	"testing"

	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestLockMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg      *LockMsg
		wantErrs map[string]*errors.Error
	}{
		"valid": {
			msg: &LockMsg{TokenId: 1, UnlockTimestamp: 1000},
			wantErrs: map[string]*errors.Error{
				"TokenId":         nil,
				"UnlockTimestamp": nil,
			},
		},
		"missing token id": {
			msg: &LockMsg{UnlockTimestamp: 1000},
			wantErrs: map[string]*errors.Error{
				"TokenId": errors.ErrEmpty,
			},
		},
		"negative unlock time": {
			msg: &LockMsg{TokenId: 1, UnlockTimestamp: -5},
			wantErrs: map[string]*errors.Error{
				"UnlockTimestamp": errors.ErrState,
			},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestBatchReleaseMsgValidate(t *testing.T) {
	tooMany := make([]uint64, batchMaxSize+1)
	for i := range tooMany {
		tooMany[i] = uint64(i + 1)
	}

	cases := map[string]struct {
		msg     *BatchReleaseMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &BatchReleaseMsg{TokenIds: []uint64{1, 2, 3}},
		},
		"empty": {
			msg:     &BatchReleaseMsg{},
			wantErr: errors.ErrEmpty,
		},
		"zero token id": {
			msg:     &BatchReleaseMsg{TokenIds: []uint64{1, 0, 3}},
			wantErr: errors.ErrEmpty,
		},
		"above the batch limit": {
			msg:     &BatchReleaseMsg{TokenIds: tooMany},
			wantErr: errors.ErrMsg,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
