package vaulttest

import (
	"testing"

	vault "github.com/carbonvault/vault"
)

// ParseAddress takes an address in a human readable format and returns its
// binary representation. This function is a test helper built on top of the
// vault.ParseAddress functionality.
func ParseAddress(t testing.TB, encodedAddress string) vault.Address {
	t.Helper()

	addr, err := vault.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
