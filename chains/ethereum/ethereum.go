package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ network.Chain = &Ethereum{}

type Ethereum struct {
	Name    string
	ChainID string
	Wallets map[string]Wallet

	nativeToken   network.Token
	tokens        []network.Token
	actualChainID *big.Int
	ethRPC        string
	extraGwei     int64
	logger        *zap.Logger
}

func NewEthereum(ctx context.Context, logger *zap.Logger, name string, chainID string, ethRPC string, nativeToken network.Token, tokens []network.Token) (*Ethereum, error) {
	ethClient, err := ethclient.Dial(ethRPC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial ethereum client")
	}
	defer ethClient.Close()

	ethChainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ethereum chain ID")
	}

	return &Ethereum{
		Name:    name,
		ChainID: chainID,
		Wallets: make(map[string]Wallet),

		nativeToken:   nativeToken,
		tokens:        tokens,
		actualChainID: ethChainID,
		ethRPC:        ethRPC,
		logger:        logger,
	}, nil
}

func (e *Ethereum) SetExtraGwei(extraGwei int64) {
	e.extraGwei = extraGwei
}

// GetName implements network.Chain.
func (e *Ethereum) GetName() string {
	return e.Name
}

// GetChainID implements network.Chain.
func (e *Ethereum) GetChainID() string {
	return e.ChainID
}

// GetChainType implements network.Chain.
func (e *Ethereum) GetChainType() network.ChainType {
	return network.ChainTypeEthereum
}

// ParseAddress implements network.Chain.
func (e *Ethereum) ParseAddress(address string) (network.UniversalAddress, error) {
	return ParseAddress(address)
}

// ParseAddress converts a hex account address into the universal encoding.
func ParseAddress(address string) (network.UniversalAddress, error) {
	if !ethcommon.IsHexAddress(address) {
		return network.UniversalAddress{}, errors.Errorf("invalid ethereum address: %q", address)
	}

	return network.NewUniversalAddress(ethcommon.HexToAddress(address).Bytes())
}

// NativeToken implements network.Chain.
func (e *Ethereum) NativeToken() network.Token {
	return e.nativeToken
}

// GetToken implements network.Chain.
func (e *Ethereum) GetToken(id network.TokenID) (network.Token, error) {
	if id.IsNative() {
		return e.nativeToken, nil
	}

	token, ok := network.FindToken(e.tokens, id)
	if !ok {
		return network.Token{}, errors.Errorf("token %s not found on chain %s", id, e.Name)
	}

	return token, nil
}

// Tokens implements network.Chain.
func (e *Ethereum) Tokens() []network.Token {
	return append([]network.Token{e.nativeToken}, e.tokens...)
}

// GetBalance implements network.Chain.
func (e *Ethereum) GetBalance(ctx context.Context, address string, token network.Token) (*big.Int, error) {
	client, err := ethclient.Dial(e.ethRPC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial ethereum client")
	}
	defer client.Close()

	ethAddress := ethcommon.HexToAddress(address)

	if token.ID.IsNative() {
		balance, err := client.BalanceAt(ctx, ethAddress, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query native balance for address %s", address)
		}
		return balance, nil
	}

	erc20Address := ethcommon.HexToAddress(token.ID.Address)
	callData, err := erc20ABI.Pack("balanceOf", ethAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack balanceOf call")
	}

	out, err := client.CallContract(ctx, ethereum.CallMsg{To: &erc20Address, Data: callData}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query ERC20 balance for token %s and address %s", token.Symbol, address)
	}

	values, err := erc20ABI.Unpack("balanceOf", out)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unpack ERC20 balance for token %s", token.Symbol)
	}
	if len(values) != 1 {
		return nil, errors.Errorf("unexpected balanceOf result length %d", len(values))
	}

	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("unexpected balanceOf return type %T", values[0])
	}

	return balance, nil
}
