package cosmos

import (
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/gogoproto/proto"
	transfertypes "github.com/cosmos/ibc-go/v10/modules/apps/transfer/types"
	ibcchanneltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	ibcchanneltypesv2 "github.com/cosmos/ibc-go/v10/modules/core/04-channel/v2/types"
	"github.com/pkg/errors"
)

// SetupCodec registers every message type a routing API may ask a cosmos wallet to sign:
// bank sends, ICS-20 transfers (v1 and v2) and CosmWasm contract calls.
func SetupCodec() codec.Codec {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterInterfaces(interfaceRegistry)
	transfertypes.RegisterInterfaces(interfaceRegistry)
	ibcchanneltypes.RegisterInterfaces(interfaceRegistry)
	ibcchanneltypesv2.RegisterInterfaces(interfaceRegistry)
	wasmtypes.RegisterInterfaces(interfaceRegistry)
	cdc := codec.NewProtoCodec(interfaceRegistry)

	return cdc
}

// DecodeMsg turns a JSON encoded message and its type url into an sdk.Msg.
func DecodeMsg(cdc codec.Codec, typeURL string, msgJSON string) (sdk.Msg, error) {
	resolved, err := cdc.InterfaceRegistry().Resolve(typeURL)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown message type %s", typeURL)
	}

	if err := cdc.UnmarshalJSON([]byte(msgJSON), resolved); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", typeURL)
	}

	msg, ok := resolved.(sdk.Msg)
	if !ok {
		return nil, errors.Errorf("%s is not a message", proto.MessageName(resolved))
	}

	return msg, nil
}
