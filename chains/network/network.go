package network

//go:generate mockgen -destination=mock/network.go -package=mock github.com/gjermundgaraba/libbridge/chains/network Chain,Wallet

import (
	"context"
	"math/big"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ChainType string

const (
	ChainTypeEthereum ChainType = "ethereum"
	ChainTypeCosmos   ChainType = "cosmos"
	ChainTypeSolana   ChainType = "solana"
)

// Network is the registry of every chain the process knows about, keyed by chain name.
// It is built once from config and is safe to share between quoting sessions.
type Network struct {
	logger *zap.Logger
	chains map[string]Chain
}

type Chain interface {
	// GetName returns the protocol-level chain name, e.g. "ethereum" or "osmosis".
	GetName() string
	// GetChainID returns the chain id used by the routing API, e.g. "1" or "osmosis-1".
	GetChainID() string
	GetChainType() ChainType

	// ParseAddress parses a chain-native address string into the universal encoding.
	ParseAddress(address string) (UniversalAddress, error)

	NativeToken() Token
	GetToken(id TokenID) (Token, error)
	Tokens() []Token

	AddWallet(walletID string, privateKey string) error
	GetWallet(walletID string) (Wallet, error)
	GetWallets() []Wallet
	GenerateWallet(walletID string) (Wallet, error)

	GetBalance(ctx context.Context, address string, token Token) (*big.Int, error)
}

// Wallet is a connected account that can only send transactions, never export detached signatures.
type Wallet interface {
	ID() string
	Address() string
	ChainID() string
	PrivateKeyHex() string

	// SendTransaction signs and broadcasts tx, and returns once the chain has acknowledged it.
	SendTransaction(ctx context.Context, tx Tx) (string, error)
	EstimateFees(ctx context.Context) (FeeData, error)
}

// Tx is an unsigned transaction for a specific chain.
type Tx interface {
	ChainID() string
	Description() string
}

// FeeData is a chain fee estimate in the smallest unit of Denom.
// Prices are decimals since cosmos chains price gas in fractions of a base unit.
type FeeData struct {
	GasPrice  decimal.Decimal
	GasTipCap decimal.Decimal
	Denom     string
}

func BuildNetwork(logger *zap.Logger, chains []Chain) (*Network, error) {
	network := &Network{
		logger: logger,
		chains: make(map[string]Chain),
	}

	for _, chain := range chains {
		if _, ok := network.chains[chain.GetName()]; ok {
			return nil, errors.Errorf("duplicate chain name: %s", chain.GetName())
		}
		network.chains[chain.GetName()] = chain
	}

	logger.Debug("Built network", zap.Strings("chains", network.ChainNames()))

	return network, nil
}

func (n *Network) GetChain(name string) (Chain, error) {
	chain, ok := n.chains[name]
	if !ok || chain == nil {
		return nil, errors.Errorf("chain not found: %s", name)
	}

	return chain, nil
}

// GetChainByID looks a chain up by its routing API chain id.
func (n *Network) GetChainByID(chainID string) (Chain, error) {
	for _, chain := range n.chains {
		if chain.GetChainID() == chainID {
			return chain, nil
		}
	}

	return nil, errors.Errorf("chain not found for chain id: %s", chainID)
}

func (n *Network) ChainNames() []string {
	names := make([]string, 0, len(n.chains))
	for name := range n.chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
