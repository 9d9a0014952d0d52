package network

import (
	"fmt"
	"strings"
)

// NativeTokenAddress is the sentinel address marking the native currency of a chain.
const NativeTokenAddress = "native"

type TokenID struct {
	Chain   string
	Address string
}

func NewTokenID(chain string, address string) TokenID {
	if address == "" || strings.EqualFold(address, NativeTokenAddress) {
		return NativeTokenID(chain)
	}
	return TokenID{Chain: chain, Address: address}
}

func NativeTokenID(chain string) TokenID {
	return TokenID{Chain: chain, Address: NativeTokenAddress}
}

func (t TokenID) IsNative() bool {
	return t.Address == NativeTokenAddress
}

func (t TokenID) String() string {
	return fmt.Sprintf("%s:%s", t.Chain, t.Address)
}

type Token struct {
	ID       TokenID
	Symbol   string
	Decimals int32
	// Denom is the asset identifier used by the routing API.
	Denom string
	// FastTransfer marks tokens served by the fast transfer bridge (stablecoins).
	FastTransfer bool
}

// FindToken resolves a token id against a list of tokens, matching address case-insensitively.
func FindToken(tokens []Token, id TokenID) (Token, bool) {
	for _, token := range tokens {
		if token.ID.Chain != id.Chain {
			continue
		}
		if strings.EqualFold(token.ID.Address, id.Address) || (id.Address != NativeTokenAddress && strings.EqualFold(token.Denom, id.Address)) {
			return token, true
		}
	}
	return Token{}, false
}

// FindTokenByDenom resolves a routing API denom on a chain.
func FindTokenByDenom(tokens []Token, denom string) (Token, bool) {
	for _, token := range tokens {
		if strings.EqualFold(token.Denom, denom) {
			return token, true
		}
	}
	return Token{}, false
}
