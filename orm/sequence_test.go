package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/carbonvault/vault/store"
	"github.com/carbonvault/vault/vaulttest/assert"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		init       int64
		increments int64
	}{
		0: {"accs", "main", 0, 22},
		1: {"accs", "backup", 0, 11},
		2: {"accs", "main", 22, 18},
		3: {"tokens", "main", 0, 77},
		4: {"accs", "backup", 11, 248},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			_, orig, err := s.Latest(db)
			assert.Nil(t, err)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				assert.Nil(t, err)
			}
			// expect the final value to be this
			expect := tc.init + tc.increments
			assert.Equal(t, expect, val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			latest, last, err := s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, expect, latest)
			assert.Equal(t, 1, bytes.Compare(last, orig))
		})
	}
}
