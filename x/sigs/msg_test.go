package sigs

import (
	"testing"

	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestBumpSequenceMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     BumpSequenceMsg
		wantErr *errors.Error
	}{
		"valid minimal increment": {
			msg: BumpSequenceMsg{Increment: 1},
		},
		"valid maximal increment": {
			msg: BumpSequenceMsg{Increment: 1000},
		},
		"zero increment": {
			msg:     BumpSequenceMsg{Increment: 0},
			wantErr: errors.ErrMsg,
		},
		"increment too big": {
			msg:     BumpSequenceMsg{Increment: 1001},
			wantErr: errors.ErrMsg,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestBumpSequenceMsgPath(t *testing.T) {
	assert.Equal(t, "sigs/bumpSequence", BumpSequenceMsg{}.Path())
}
