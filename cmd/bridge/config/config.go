package config

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"time"

	skipapi "github.com/gjermundgaraba/libbridge/apis/skip-api"
	"github.com/gjermundgaraba/libbridge/chains/cosmos"
	"github.com/gjermundgaraba/libbridge/chains/ethereum"
	"github.com/gjermundgaraba/libbridge/chains/network"
	"github.com/gjermundgaraba/libbridge/chains/solana"
	"github.com/gjermundgaraba/libbridge/protocol/skipgo"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultTrackerURL    = "https://explorer.skip.build/?tx_hash="
	DefaultQuoteValidity = "60s"

	maxDecimals = 36
)

// Config represents the application configuration
type Config struct {
	SkipAPIURL string `toml:"skip-api-url"`
	// TrackerURL is prefixed to the transfer tx hash to build the tracking link.
	TrackerURL               string         `toml:"tracker-url"`
	QuoteValidity            string         `toml:"quote-validity"`
	SlippageTolerancePercent string         `toml:"slippage-tolerance-percent"`
	Chains                   []ChainConfig  `toml:"chains"`
	Wallets                  []WalletConfig `toml:"wallets,omitempty"`
}

// ChainConfig represents the configuration for a single chain
type ChainConfig struct {
	ChainType string        `toml:"chain-type"`
	Name      string        `toml:"name"`
	ChainID   string        `toml:"chain-id"`
	RPCAddr   string        `toml:"rpc-addr"`
	GRPCAddr  string        `toml:"grpc-addr"`
	WalletIDs []string      `toml:"wallet-ids,omitempty"`
	Tokens    []TokenConfig `toml:"tokens,omitempty"`

	NativeSymbol   string `toml:"native-symbol"`
	NativeDecimals int64  `toml:"native-decimals"`
	// NativeDenom is the routing API denom of the native currency. Defaults to the gas denom on cosmos chains and "<name>-native" elsewhere.
	NativeDenom string `toml:"native-denom"`
	// SmartRelay marks chains a relayer delivers to, which enables the automatic route kinds.
	SmartRelay bool `toml:"smart-relay"`

	// Cosmos specific fields
	Bech32Prefix string `toml:"bech32-prefix"`
	GasDenom     string `toml:"gas-denom"`
	GasPrice     string `toml:"gas-price"`

	// Ethereum specific fields
	ExtraGwei int64 `toml:"extra-gwei"`
}

type TokenConfig struct {
	Symbol       string `toml:"symbol"`
	Address      string `toml:"address"`
	Denom        string `toml:"denom"`
	Decimals     int64  `toml:"decimals"`
	FastTransfer bool   `toml:"fast-transfer"`
	// MinRelayAmount is the smallest human readable amount accepted by the automatic routes.
	MinRelayAmount string `toml:"min-relay-amount"`
}

// WalletConfig represents the configuration for a wallet
type WalletConfig struct {
	WalletID   string `toml:"wallet-id"`
	PrivateKey string `toml:"private-key"`
}

// LoadConfig reads and parses the config file, applies defaults and validates it
func LoadConfig(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer file.Close()

	var config Config
	if err := toml.NewDecoder(file).Decode(&config); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.SkipAPIURL == "" {
		c.SkipAPIURL = skipapi.DefaultBaseURL
	}
	if c.TrackerURL == "" {
		c.TrackerURL = DefaultTrackerURL
	}
	if c.QuoteValidity == "" {
		c.QuoteValidity = DefaultQuoteValidity
	}
	if c.SlippageTolerancePercent == "" {
		c.SlippageTolerancePercent = skipgo.DefaultSlippageTolerancePercent
	}
}

func (c *Config) Validate() error {
	if _, err := c.QuoteValidityDuration(); err != nil {
		return err
	}

	wallets := make(map[string]bool)
	for _, wallet := range c.Wallets {
		if wallet.WalletID == "" {
			return errors.New("wallet without wallet-id")
		}
		if wallets[wallet.WalletID] {
			return errors.Errorf("duplicate wallet id: %s", wallet.WalletID)
		}
		wallets[wallet.WalletID] = true
	}

	names := make(map[string]bool)
	for _, chain := range c.Chains {
		if chain.Name == "" {
			return errors.Errorf("chain %s has no name", chain.ChainID)
		}
		if names[chain.Name] {
			return errors.Errorf("duplicate chain name: %s", chain.Name)
		}
		names[chain.Name] = true

		if chain.ChainID == "" {
			return errors.Errorf("chain %s has no chain-id", chain.Name)
		}

		switch network.ChainType(chain.ChainType) {
		case network.ChainTypeEthereum, network.ChainTypeSolana:
			if chain.RPCAddr == "" {
				return errors.Errorf("chain %s requires rpc-addr", chain.Name)
			}
		case network.ChainTypeCosmos:
			if chain.GRPCAddr == "" || chain.Bech32Prefix == "" || chain.GasDenom == "" {
				return errors.Errorf("chain %s requires grpc-addr, bech32-prefix and gas-denom", chain.Name)
			}
		default:
			return errors.Errorf("unsupported chain type %q for chain %s", chain.ChainType, chain.Name)
		}

		if err := validateDecimals(chain.NativeDecimals); err != nil {
			return errors.Wrapf(err, "chain %s native token", chain.Name)
		}
		for _, token := range chain.Tokens {
			if token.Symbol == "" || token.Address == "" {
				return errors.Errorf("token on chain %s requires symbol and address", chain.Name)
			}
			if err := validateDecimals(token.Decimals); err != nil {
				return errors.Wrapf(err, "token %s on chain %s", token.Symbol, chain.Name)
			}
			if token.MinRelayAmount != "" {
				if _, err := route.ParseAmount(token.MinRelayAmount, int32(token.Decimals)); err != nil {
					return errors.Wrapf(err, "invalid min-relay-amount for token %s on chain %s", token.Symbol, chain.Name)
				}
			}
		}

		for _, walletID := range chain.WalletIDs {
			if !wallets[walletID] {
				return errors.Errorf("wallet config not found for wallet ID: %s for chain %s", walletID, chain.Name)
			}
		}
	}

	return nil
}

func validateDecimals(decimals int64) error {
	if decimals < 0 || decimals > maxDecimals {
		return errors.Errorf("decimals must be between 0 and %d, got %d", maxDecimals, decimals)
	}
	return nil
}

func (c *Config) QuoteValidityDuration() (time.Duration, error) {
	validity, err := time.ParseDuration(c.QuoteValidity)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid quote-validity %q", c.QuoteValidity)
	}
	if validity <= 0 {
		return 0, errors.Errorf("quote-validity must be positive, got %s", c.QuoteValidity)
	}
	return validity, nil
}

// SaveConfig writes the config to file using go-toml directly
func (c *Config) SaveConfig(configPath string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Write to a new temporary file for atomic write
	tempFile, err := os.CreateTemp("", "config-*.toml")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		return errors.Wrap(err, "failed to write to temp file")
	}
	if err := tempFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tempFile.Name(), configPath); err != nil {
		// If rename fails (e.g., across filesystems), try copy
		if err := os.WriteFile(configPath, data, 0600); err != nil {
			return errors.Wrap(err, "failed to write config file")
		}
	}

	return nil
}

// AddWallet registers a wallet for chainName, replacing the key if the wallet id already exists.
func (c *Config) AddWallet(chainName string, walletID string, privateKey string) error {
	chainIdx := -1
	for i, chain := range c.Chains {
		if chain.Name == chainName {
			chainIdx = i
			break
		}
	}
	if chainIdx < 0 {
		return errors.Errorf("chain not found: %s", chainName)
	}

	walletExists := false
	for i, wallet := range c.Wallets {
		if wallet.WalletID == walletID {
			c.Wallets[i].PrivateKey = privateKey
			walletExists = true
			break
		}
	}
	if !walletExists {
		c.Wallets = append(c.Wallets, WalletConfig{WalletID: walletID, PrivateKey: privateKey})
	}

	for _, id := range c.Chains[chainIdx].WalletIDs {
		if id == walletID {
			return nil
		}
	}
	c.Chains[chainIdx].WalletIDs = append(c.Chains[chainIdx].WalletIDs, walletID)

	return nil
}

func (cc ChainConfig) nativeToken() network.Token {
	denom := cc.NativeDenom
	if denom == "" {
		if network.ChainType(cc.ChainType) == network.ChainTypeCosmos {
			denom = cc.GasDenom
		} else {
			denom = fmt.Sprintf("%s-native", cc.Name)
		}
	}

	return network.Token{
		ID:       network.NativeTokenID(cc.Name),
		Symbol:   cc.NativeSymbol,
		Decimals: int32(cc.NativeDecimals),
		Denom:    denom,
	}
}

func (cc ChainConfig) tokens() []network.Token {
	tokens := make([]network.Token, 0, len(cc.Tokens))
	for _, tc := range cc.Tokens {
		denom := tc.Denom
		if denom == "" {
			denom = tc.Address
		}
		tokens = append(tokens, network.Token{
			ID:           network.NewTokenID(cc.Name, tc.Address),
			Symbol:       tc.Symbol,
			Decimals:     int32(tc.Decimals),
			Denom:        denom,
			FastTransfer: tc.FastTransfer,
		})
	}
	return tokens
}

func (c *Config) ToNetwork(ctx context.Context, logger *zap.Logger) (*network.Network, error) {
	walletConfigs := make(map[string]WalletConfig)
	for _, walletConfig := range c.Wallets {
		walletConfigs[walletConfig.WalletID] = walletConfig
	}

	var chains []network.Chain
	for _, chainConfig := range c.Chains {
		var chain network.Chain
		switch network.ChainType(chainConfig.ChainType) {
		case network.ChainTypeCosmos:
			cosmosChain, err := cosmos.NewCosmos(logger, chainConfig.Name, chainConfig.ChainID, chainConfig.Bech32Prefix, chainConfig.GasDenom, chainConfig.GasPrice, chainConfig.GRPCAddr, chainConfig.nativeToken(), chainConfig.tokens())
			if err != nil {
				return nil, errors.Wrap(err, "failed to create Cosmos chain")
			}
			chain = cosmosChain
		case network.ChainTypeEthereum:
			ethChain, err := ethereum.NewEthereum(ctx, logger, chainConfig.Name, chainConfig.ChainID, chainConfig.RPCAddr, chainConfig.nativeToken(), chainConfig.tokens())
			if err != nil {
				return nil, errors.Wrap(err, "failed to create Ethereum chain")
			}
			ethChain.SetExtraGwei(chainConfig.ExtraGwei)
			chain = ethChain
		case network.ChainTypeSolana:
			solChain, err := solana.NewSolana(logger, chainConfig.Name, chainConfig.ChainID, chainConfig.RPCAddr, chainConfig.nativeToken(), chainConfig.tokens())
			if err != nil {
				return nil, errors.Wrap(err, "failed to create Solana chain")
			}
			chain = solChain
		default:
			return nil, errors.Errorf("unsupported chain type: %s", chainConfig.ChainType)
		}

		for _, walletID := range chainConfig.WalletIDs {
			walletConfig, ok := walletConfigs[walletID]
			if !ok {
				return nil, errors.Errorf("wallet config not found for wallet ID: %s for chain %s", walletID, chainConfig.Name)
			}
			if err := chain.AddWallet(walletID, walletConfig.PrivateKey); err != nil {
				return nil, errors.Wrapf(err, "failed to add wallet %s to chain %s", walletID, chainConfig.Name)
			}
		}

		chains = append(chains, chain)
	}

	return network.BuildNetwork(logger, chains)
}

// ProtocolOptions derives the routing backend options from the chain and token settings.
func (c *Config) ProtocolOptions() (skipgo.Options, error) {
	validity, err := c.QuoteValidityDuration()
	if err != nil {
		return skipgo.Options{}, err
	}

	opts := skipgo.Options{
		QuoteValidity:            validity,
		SlippageTolerancePercent: c.SlippageTolerancePercent,
		MinAutomaticAmounts:      make(map[network.TokenID]*big.Int),
	}

	for _, chain := range c.Chains {
		if chain.SmartRelay {
			opts.SmartRelayChains = append(opts.SmartRelayChains, chain.Name)
		}
		for _, token := range chain.Tokens {
			if token.MinRelayAmount == "" {
				continue
			}
			amount, err := route.ParseAmount(token.MinRelayAmount, int32(token.Decimals))
			if err != nil {
				return skipgo.Options{}, errors.Wrapf(err, "invalid min-relay-amount for token %s", token.Symbol)
			}
			opts.MinAutomaticAmounts[network.NewTokenID(chain.Name, token.Address)] = amount
		}
	}

	return opts, nil
}
