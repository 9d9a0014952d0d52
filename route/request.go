package route

import (
	"github.com/gjermundgaraba/libbridge/chains/network"
)

// RouteRequest is the raw user input that seeds a quoting session.
type RouteRequest struct {
	SourceChain      string
	DestinationChain string
	// Token is the source token address, or network.NativeTokenAddress for the native currency.
	Token string
	// DestinationToken optionally pins the destination token. The first reachable token is used when empty.
	DestinationToken string
	Sender           string
	Receiver         string
}

// TransferRequest describes what is being moved. It is built once per quoting session by the Resolver,
// after sender and receiver have been parsed into the universal address encoding, and is never mutated.
type TransferRequest struct {
	sourceChain      network.Chain
	destinationChain network.Chain
	sourceToken      network.Token
	destinationToken network.Token
	sender           network.ChainAddress
	receiver         network.ChainAddress
}

func NewTransferRequest(
	sourceChain network.Chain,
	destinationChain network.Chain,
	sourceToken network.Token,
	destinationToken network.Token,
	sender network.ChainAddress,
	receiver network.ChainAddress,
) *TransferRequest {
	return &TransferRequest{
		sourceChain:      sourceChain,
		destinationChain: destinationChain,
		sourceToken:      sourceToken,
		destinationToken: destinationToken,
		sender:           sender,
		receiver:         receiver,
	}
}

func (r *TransferRequest) SourceChain() network.Chain {
	return r.sourceChain
}

func (r *TransferRequest) DestinationChain() network.Chain {
	return r.destinationChain
}

func (r *TransferRequest) SourceToken() network.Token {
	return r.sourceToken
}

func (r *TransferRequest) DestinationToken() network.Token {
	return r.destinationToken
}

func (r *TransferRequest) Sender() network.ChainAddress {
	return r.sender
}

func (r *TransferRequest) Receiver() network.ChainAddress {
	return r.receiver
}
