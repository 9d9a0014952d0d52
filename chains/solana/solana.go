package solana

import (
	"context"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ network.Chain = &Solana{}

type Solana struct {
	Name    string
	ChainID string
	Wallets map[string]Wallet

	nativeToken network.Token
	tokens      []network.Token
	client      *rpc.Client
	commitment  rpc.CommitmentType
	logger      *zap.Logger
}

func NewSolana(logger *zap.Logger, name string, chainID string, rpcAddr string, nativeToken network.Token, tokens []network.Token) (*Solana, error) {
	if rpcAddr == "" {
		return nil, errors.Errorf("rpc address is required for chain %s", name)
	}

	return &Solana{
		Name:    name,
		ChainID: chainID,
		Wallets: make(map[string]Wallet),

		nativeToken: nativeToken,
		tokens:      tokens,
		client:      rpc.New(rpcAddr),
		commitment:  rpc.CommitmentConfirmed,
		logger:      logger,
	}, nil
}

// GetName implements network.Chain.
func (s *Solana) GetName() string {
	return s.Name
}

// GetChainID implements network.Chain.
func (s *Solana) GetChainID() string {
	return s.ChainID
}

// GetChainType implements network.Chain.
func (s *Solana) GetChainType() network.ChainType {
	return network.ChainTypeSolana
}

// ParseAddress implements network.Chain.
func (s *Solana) ParseAddress(address string) (network.UniversalAddress, error) {
	return ParseAddress(address)
}

// ParseAddress decodes a base58 public key. Solana keys are already 32 bytes, so no padding happens.
func ParseAddress(address string) (network.UniversalAddress, error) {
	pubKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return network.UniversalAddress{}, errors.Wrapf(err, "invalid solana address %q", address)
	}
	return network.NewUniversalAddress(pubKey.Bytes())
}

// NativeToken implements network.Chain.
func (s *Solana) NativeToken() network.Token {
	return s.nativeToken
}

// GetToken implements network.Chain.
func (s *Solana) GetToken(id network.TokenID) (network.Token, error) {
	if id.Chain != s.Name {
		return network.Token{}, errors.Errorf("token %s does not belong to chain %s", id, s.Name)
	}
	if id.IsNative() {
		return s.nativeToken, nil
	}

	token, ok := network.FindToken(s.tokens, id)
	if !ok {
		return network.Token{}, errors.Errorf("token %s not configured on chain %s", id.Address, s.Name)
	}
	return token, nil
}

// Tokens implements network.Chain.
func (s *Solana) Tokens() []network.Token {
	return append([]network.Token{s.nativeToken}, s.tokens...)
}

// GetBalance implements network.Chain.
// Native balances are in lamports. SPL balances are read from the owner's associated token account.
func (s *Solana) GetBalance(ctx context.Context, address string, token network.Token) (*big.Int, error) {
	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid solana address %q", address)
	}

	if token.ID.IsNative() {
		balance, err := s.client.GetBalance(ctx, owner, s.commitment)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get balance for %s", address)
		}
		return new(big.Int).SetUint64(balance.Value), nil
	}

	mint, err := solana.PublicKeyFromBase58(token.ID.Address)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid mint address %q", token.ID.Address)
	}
	tokenAccount, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive associated token address")
	}

	accountBalance, err := s.client.GetTokenAccountBalance(ctx, tokenAccount, s.commitment)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return new(big.Int), nil
		}
		return nil, errors.Wrapf(err, "failed to get token balance for %s", address)
	}

	amount, ok := new(big.Int).SetString(accountBalance.Value.Amount, 10)
	if !ok {
		return nil, errors.Errorf("invalid token balance %q", accountBalance.Value.Amount)
	}
	return amount, nil
}
