package skipapi

import (
	"encoding/json"
	"time"
)

type RouteRequest struct {
	SourceAssetDenom     string           `json:"source_asset_denom"`
	SourceAssetChainID   string           `json:"source_asset_chain_id"`
	DestAssetDenom       string           `json:"dest_asset_denom"`
	DestAssetChainID     string           `json:"dest_asset_chain_id"`
	AllowUnsafe          bool             `json:"allow_unsafe"`
	ExperimentalFeatures []string         `json:"experimental_features,omitempty"`
	AllowMultiTx         bool             `json:"allow_multi_tx"`
	SmartRelay           bool             `json:"smart_relay"`
	SmartSwapOptions     SmartSwapOptions `json:"smart_swap_options"`
	GoFast               bool             `json:"go_fast"`
	AmountIn             string           `json:"amount_in"`
}

type SmartSwapOptions struct {
	SplitRoutes bool `json:"split_routes"`
	EvmSwaps    bool `json:"evm_swaps"`
}

type RouteResponse struct {
	AmountIn                      string         `json:"amount_in"`
	AmountOut                     string         `json:"amount_out"`
	ChainIds                      []string       `json:"chain_ids"`
	DestAssetChainID              string         `json:"dest_asset_chain_id"`
	DestAssetDenom                string         `json:"dest_asset_denom"`
	DoesSwap                      bool           `json:"does_swap"`
	EstimatedAmountOut            string         `json:"estimated_amount_out"`
	EstimatedFees                 []EstimatedFee `json:"estimated_fees"`
	EstimatedRouteDurationSeconds int64          `json:"estimated_route_duration_seconds"`
	Operations                    []Operation    `json:"operations"`
	RequiredChainAddresses        []string       `json:"required_chain_addresses"`
	SourceAssetChainID            string         `json:"source_asset_chain_id"`
	SourceAssetDenom              string         `json:"source_asset_denom"`
	TxsRequired                   int            `json:"txs_required"`
}

const FeeTypeSmartRelay = "SMART_RELAY"

type EstimatedFee struct {
	FeeType     string `json:"fee_type"`
	BridgeID    string `json:"bridge_id"`
	Amount      string `json:"amount"`
	USDAmount   string `json:"usd_amount"`
	OriginAsset Asset  `json:"origin_asset"`
	ChainID     string `json:"chain_id"`
	TxIndex     int    `json:"tx_index"`
}

// Operation is one hop of a route. Only the fields the client inspects are decoded,
// the raw JSON is kept so the operation can be passed back to the msgs endpoint unchanged.
type Operation struct {
	TxIndex        int             `json:"tx_index"`
	AmountIn       string          `json:"amount_in"`
	AmountOut      string          `json:"amount_out"`
	Transfer       *Transfer       `json:"transfer,omitempty"`
	CCTPTransfer   *CCTPTransfer   `json:"cctp_transfer,omitempty"`
	GoFastTransfer *GoFastTransfer `json:"go_fast_transfer,omitempty"`
	EurekaTransfer *EurekaTransfer `json:"eureka_transfer,omitempty"`

	raw json.RawMessage
}

type operationAlias Operation

func (o *Operation) UnmarshalJSON(bz []byte) error {
	var alias operationAlias
	if err := json.Unmarshal(bz, &alias); err != nil {
		return err
	}
	*o = Operation(alias)
	o.raw = append(json.RawMessage(nil), bz...)
	return nil
}

func (o Operation) MarshalJSON() ([]byte, error) {
	if len(o.raw) > 0 {
		return o.raw, nil
	}
	return json.Marshal(operationAlias(o))
}

// SmartRelayFeeQuote returns the relayer fee quote attached to the operation, if any.
func (o Operation) SmartRelayFeeQuote() *SmartRelayFeeQuote {
	switch {
	case o.CCTPTransfer != nil && o.CCTPTransfer.SmartRelay:
		return o.CCTPTransfer.SmartRelayFeeQuote
	case o.EurekaTransfer != nil && o.EurekaTransfer.SmartRelay:
		return o.EurekaTransfer.SmartRelayFeeQuote
	case o.Transfer != nil && o.Transfer.SmartRelay:
		return o.Transfer.SmartRelayFeeQuote
	default:
		return nil
	}
}

type Transfer struct {
	FromChainID        string              `json:"from_chain_id"`
	ToChainID          string              `json:"to_chain_id"`
	Channel            string              `json:"channel"`
	DenomIn            string              `json:"denom_in"`
	DenomOut           string              `json:"denom_out"`
	BridgeID           string              `json:"bridge_id"`
	SmartRelay         bool                `json:"smart_relay"`
	SmartRelayFeeQuote *SmartRelayFeeQuote `json:"smart_relay_fee_quote,omitempty"`
}

type CCTPTransfer struct {
	FromChainID        string              `json:"from_chain_id"`
	ToChainID          string              `json:"to_chain_id"`
	BurnToken          string              `json:"burn_token"`
	DenomIn            string              `json:"denom_in"`
	DenomOut           string              `json:"denom_out"`
	BridgeID           string              `json:"bridge_id"`
	SmartRelay         bool                `json:"smart_relay"`
	SmartRelayFeeQuote *SmartRelayFeeQuote `json:"smart_relay_fee_quote,omitempty"`
}

type GoFastTransfer struct {
	FromChainID string     `json:"from_chain_id"`
	ToChainID   string     `json:"to_chain_id"`
	DenomIn     string     `json:"denom_in"`
	DenomOut    string     `json:"denom_out"`
	BridgeID    string     `json:"bridge_id"`
	Fee         *GoFastFee `json:"fee,omitempty"`
}

type GoFastFee struct {
	FeeAsset                  Asset  `json:"fee_asset"`
	BpsFee                    string `json:"bps_fee"`
	BpsFeeAmount              string `json:"bps_fee_amount"`
	SourceChainFeeAmount      string `json:"source_chain_fee_amount"`
	DestinationChainFeeAmount string `json:"destination_chain_fee_amount"`
}

type EurekaTransfer struct {
	DestinationPort                string              `json:"destination_port"`
	SourceClient                   string              `json:"source_client"`
	FromChainID                    string              `json:"from_chain_id"`
	ToChainID                      string              `json:"to_chain_id"`
	PfmEnabled                     bool                `json:"pfm_enabled"`
	SupportsMemo                   bool                `json:"supports_memo"`
	EntryContractAddress           string              `json:"entry_contract_address"`
	CallbackAdapterContractAddress string              `json:"callback_adapter_contract_address"`
	DenomIn                        string              `json:"denom_in"`
	DenomOut                       string              `json:"denom_out"`
	BridgeID                       string              `json:"bridge_id"`
	SmartRelay                     bool                `json:"smart_relay"`
	SmartRelayFeeQuote             *SmartRelayFeeQuote `json:"smart_relay_fee_quote,omitempty"`
}

type SmartRelayFeeQuote struct {
	FeeAmount         string    `json:"fee_amount"`
	RelayerAddress    string    `json:"relayer_address"`
	Expiration        time.Time `json:"expiration"`
	FeePaymentAddress string    `json:"fee_payment_address"`
	FeeDenom          string    `json:"fee_denom"`
}

type MsgsRequest struct {
	SourceAssetDenom         string      `json:"source_asset_denom"`
	SourceAssetChainID       string      `json:"source_asset_chain_id"`
	DestAssetDenom           string      `json:"dest_asset_denom"`
	DestAssetChainID         string      `json:"dest_asset_chain_id"`
	AmountIn                 string      `json:"amount_in"`
	AmountOut                string      `json:"amount_out"`
	AddressList              []string    `json:"address_list"`
	Operations               []Operation `json:"operations"`
	EstimatedAmountOut       string      `json:"estimated_amount_out,omitempty"`
	SlippageTolerancePercent string      `json:"slippage_tolerance_percent,omitempty"`
	TimeoutSeconds           string      `json:"timeout_seconds,omitempty"`
}

type MsgsResponse struct {
	EstimatedFees []EstimatedFee `json:"estimated_fees"`
	Txs           []Tx           `json:"txs"`
}

type Tx struct {
	CosmosTx          *CosmosTx `json:"cosmos_tx,omitempty"`
	EvmTx             *EvmTx    `json:"evm_tx,omitempty"`
	SvmTx             *SvmTx    `json:"svm_tx,omitempty"`
	OperationsIndices []int     `json:"operations_indices"`
}

type CosmosTx struct {
	ChainID       string        `json:"chain_id"`
	Msgs          []CosmosTxMsg `json:"msgs"`
	Path          []string      `json:"path"`
	SignerAddress string        `json:"signer_address"`
}

type CosmosTxMsg struct {
	Msg        string `json:"msg"`
	MsgTypeURL string `json:"msg_type_url"`
}

type EvmTx struct {
	ChainID                string                  `json:"chain_id"`
	To                     string                  `json:"to"`
	Value                  string                  `json:"value"`
	Data                   string                  `json:"data"`
	RequiredErc20Approvals []RequiredErc20Approval `json:"required_erc20_approvals"`
	SignerAddress          string                  `json:"signer_address"`
}

type RequiredErc20Approval struct {
	TokenContract string `json:"token_contract"`
	Spender       string `json:"spender"`
	Amount        string `json:"amount"`
}

type SvmTx struct {
	ChainID       string `json:"chain_id"`
	Tx            string `json:"tx"`
	SignerAddress string `json:"signer_address"`
}

type AssetsFromSourceRequest struct {
	SourceAssetDenom   string `json:"source_asset_denom"`
	SourceAssetChainID string `json:"source_asset_chain_id"`
	AllowMultiTx       bool   `json:"allow_multi_tx"`
}

type AssetsFromSourceResponse struct {
	DestAssets map[string]AssetList `json:"dest_assets"`
}

type AssetList struct {
	Assets []Asset `json:"assets"`
}

type Asset struct {
	Denom         string `json:"denom"`
	ChainID       string `json:"chain_id"`
	OriginDenom   string `json:"origin_denom"`
	OriginChainID string `json:"origin_chain_id"`
	Symbol        string `json:"symbol"`
	Decimals      int32  `json:"decimals"`
	Name          string `json:"name"`
}
