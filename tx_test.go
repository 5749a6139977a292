package vault

import (
	"testing"

	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/vaulttest/assert"
)

type demoMsg struct {
	Num  int
	Text string
}

func (demoMsg) Path() string               { return "path" }
func (demoMsg) Validate() error            { return nil }
func (demoMsg) Marshal() ([]byte, error)   { return []byte("foo"), nil }
func (*demoMsg) Unmarshal(bz []byte) error { return nil }

var _ Msg = (*demoMsg)(nil)

type container struct {
	Data *demoMsg
}

type bigContainer struct {
	Data   *demoMsg
	Random string
}

type badContents struct {
	Data *container
}

func TestExtractMsgFromSum(t *testing.T) {
	msg := &demoMsg{
		Num:  17,
		Text: "hello world",
	}

	cases := map[string]struct {
		input   interface{}
		wantErr *errors.Error
	}{
		"success": {
			input: &container{msg},
		},
		"nil input is not allowed": {
			input:   nil,
			wantErr: errors.ErrInput,
		},
		"invalid input content, number": {
			input:   7,
			wantErr: errors.ErrInput,
		},
		"empty container": {
			input:   &container{},
			wantErr: errors.ErrState,
		},
		"container must be a pointer": {
			input:   container{msg},
			wantErr: errors.ErrInput,
		},
		"wrong number of fields": {
			input:   &bigContainer{msg, "foo"},
			wantErr: errors.ErrInput,
		},
		"container content is not a message": {
			input:   &badContents{&container{}},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := ExtractMsgFromSum(tc.input)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				if res == nil {
					t.Fatal("nil result")
				}
			} else {
				assert.Nil(t, res)
			}
		})
	}
}
