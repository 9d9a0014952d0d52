package network

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// UniversalAddress is the 32-byte address encoding shared by every chain the bridge talks to.
// Shorter chain addresses are left-padded with zeros.
type UniversalAddress [32]byte

func NewUniversalAddress(bz []byte) (UniversalAddress, error) {
	var addr UniversalAddress
	if len(bz) == 0 {
		return addr, errors.New("empty address")
	}
	if len(bz) > len(addr) {
		return addr, errors.Errorf("address too long: %d bytes", len(bz))
	}
	copy(addr[len(addr)-len(bz):], bz)
	return addr, nil
}

func (a UniversalAddress) Bytes() []byte {
	return a[:]
}

// Trimmed returns the last n bytes, i.e. the chain-native form of a padded address.
func (a UniversalAddress) Trimmed(n int) []byte {
	if n <= 0 || n > len(a) {
		return a[:]
	}
	return a[len(a)-n:]
}

func (a UniversalAddress) IsZero() bool {
	return a == UniversalAddress{}
}

func (a UniversalAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ChainAddress is an address bound to the chain it lives on.
type ChainAddress struct {
	Chain   string
	Address UniversalAddress
	// Native is the address in the chain's own string format.
	Native string
}

func ParseChainAddress(chain Chain, address string) (ChainAddress, error) {
	universal, err := chain.ParseAddress(address)
	if err != nil {
		return ChainAddress{}, errors.Wrapf(err, "failed to parse address %q for chain %s", address, chain.GetName())
	}

	return ChainAddress{
		Chain:   chain.GetName(),
		Address: universal,
		Native:  address,
	}, nil
}
