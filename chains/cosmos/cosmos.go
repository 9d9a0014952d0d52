package cosmos

import (
	"context"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultGasPrice is used when a chain has no gas price configured.
const DefaultGasPrice = "0.025"

var _ network.Chain = &Cosmos{}

type Cosmos struct {
	Name         string
	ChainID      string
	Wallets      map[string]Wallet
	Bech32Prefix string
	GasDenom     string

	gasPrice    sdkmath.LegacyDec
	nativeToken network.Token
	tokens      []network.Token
	grpcAddr    string
	codec       codec.Codec
	logger      *zap.Logger
}

func NewCosmos(
	logger *zap.Logger,
	name string,
	chainID string,
	bech32Prefix string,
	gasDenom string,
	gasPrice string,
	grpc string,
	nativeToken network.Token,
	tokens []network.Token,
) (*Cosmos, error) {
	if bech32Prefix == "" {
		return nil, errors.Errorf("bech32 prefix is required for chain %s", name)
	}
	if gasPrice == "" {
		gasPrice = DefaultGasPrice
	}
	price, err := sdkmath.LegacyNewDecFromStr(gasPrice)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid gas price %q", gasPrice)
	}

	return &Cosmos{
		Name:         name,
		ChainID:      chainID,
		Wallets:      make(map[string]Wallet),
		Bech32Prefix: bech32Prefix,
		GasDenom:     gasDenom,

		gasPrice:    price,
		nativeToken: nativeToken,
		tokens:      tokens,
		grpcAddr:    grpc,
		codec:       SetupCodec(),
		logger:      logger,
	}, nil
}

// GetName implements network.Chain.
func (c *Cosmos) GetName() string {
	return c.Name
}

// GetChainID implements network.Chain.
func (c *Cosmos) GetChainID() string {
	return c.ChainID
}

// GetChainType implements network.Chain.
func (c *Cosmos) GetChainType() network.ChainType {
	return network.ChainTypeCosmos
}

// ParseAddress implements network.Chain.
func (c *Cosmos) ParseAddress(address string) (network.UniversalAddress, error) {
	hrp, bz, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return network.UniversalAddress{}, errors.Wrapf(err, "invalid bech32 address %q", address)
	}
	if hrp != c.Bech32Prefix {
		return network.UniversalAddress{}, errors.Errorf("address %s has prefix %s, expected %s", address, hrp, c.Bech32Prefix)
	}

	return network.NewUniversalAddress(bz)
}

// NativeToken implements network.Chain.
func (c *Cosmos) NativeToken() network.Token {
	return c.nativeToken
}

// GetToken implements network.Chain.
func (c *Cosmos) GetToken(id network.TokenID) (network.Token, error) {
	if id.Chain != c.Name {
		return network.Token{}, errors.Errorf("token %s does not belong to chain %s", id, c.Name)
	}
	if id.IsNative() || id.Address == c.nativeToken.Denom {
		return c.nativeToken, nil
	}

	token, ok := network.FindToken(c.tokens, id)
	if !ok {
		return network.Token{}, errors.Errorf("token %s not configured on chain %s", id.Address, c.Name)
	}

	return token, nil
}

// Tokens implements network.Chain.
func (c *Cosmos) Tokens() []network.Token {
	return append([]network.Token{c.nativeToken}, c.tokens...)
}

func (c *Cosmos) QueryTx(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	grpcConn, err := utils.GetGRPC(c.grpcAddr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get grpc connection")
	}
	txClient := txtypes.NewServiceClient(grpcConn)
	txResponse, err := txClient.GetTx(ctx, &txtypes.GetTxRequest{Hash: txHash})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query transaction %s", txHash)
	}
	return txResponse, nil
}

// GetBalance implements network.Chain.
func (c *Cosmos) GetBalance(ctx context.Context, address string, token network.Token) (*big.Int, error) {
	if _, err := c.ParseAddress(address); err != nil {
		return nil, err
	}

	grpcConn, err := utils.GetGRPC(c.grpcAddr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get grpc connection")
	}

	denom := token.Denom
	if denom == "" {
		denom = token.ID.Address
	}

	bankClient := banktypes.NewQueryClient(grpcConn)
	resp, err := bankClient.Balance(ctx, &banktypes.QueryBalanceRequest{
		Address: address,
		Denom:   denom,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query balance for address %s and denom %s", address, denom)
	}
	if resp.Balance == nil {
		return new(big.Int), nil
	}

	return resp.Balance.Amount.BigInt(), nil
}
