package x

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memo is a minimal Persistent and Validater implementation used to
// exercise the Must helpers.
type memo struct {
	Text string
}

func (m *memo) Marshal() ([]byte, error) {
	if len(m.Text) > 16 {
		return nil, errors.New("memo too long")
	}
	return []byte(m.Text), nil
}

func (m *memo) Unmarshal(bz []byte) error {
	if len(bz) > 16 {
		return errors.New("memo too long")
	}
	m.Text = string(bz)
	return nil
}

func (m *memo) Validate() error {
	if m.Text == "" {
		return errors.New("empty memo")
	}
	return nil
}

func TestPersistent(t *testing.T) {
	good := &memo{Text: "valid"}
	bad := &memo{Text: "this text is much too long to serialize"}

	should, err := good.Marshal()
	require.NoError(t, err)

	// marshal
	bz := MustMarshal(good)
	assert.Equal(t, should, bz)
	assert.Panics(t, func() { MustMarshal(bad) })

	// unmarshal
	got := new(memo)
	MustUnmarshal(got, bz)
	assert.Equal(t, good, got)
	garbage := make([]byte, 20)
	assert.Panics(t, func() { MustUnmarshal(got, garbage) })

	// validate
	empty := &memo{}
	assert.Panics(t, func() { MustValidate(empty) })
	assert.NotPanics(t, func() { MustValidate(good) })
	assert.Panics(t, func() { MustMarshalValid(empty) })
	rebz := MustMarshalValid(good)
	assert.Equal(t, should, rebz)
}
