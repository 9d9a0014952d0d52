package cosmos

import (
	"strconv"

	abci "github.com/cometbft/cometbft/abci/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	"github.com/pkg/errors"
)

// SentPacket is the part of an ICS-20 send_packet event needed to follow a transfer across chains.
type SentPacket struct {
	Sequence           uint64
	SourcePort         string
	SourceChannel      string
	DestinationPort    string
	DestinationChannel string
	TimeoutHeight      clienttypes.Height
	TimeoutTimestamp   uint64
}

// ParseSentPackets returns the packets sent by a transaction. A tx without send_packet events yields no packets.
func ParseSentPackets(events []abci.Event) ([]SentPacket, error) {
	var packets []SentPacket
	for _, ev := range events {
		if ev.Type != channeltypes.EventTypeSendPacket {
			continue
		}

		var packet SentPacket
		for _, attr := range ev.Attributes {
			switch attr.Key {
			case channeltypes.AttributeKeySequence:
				seq, err := strconv.ParseUint(attr.Value, 10, 64)
				if err != nil {
					return nil, errors.Wrap(err, "failed to parse sequence")
				}
				packet.Sequence = seq
			case channeltypes.AttributeKeySrcPort:
				packet.SourcePort = attr.Value
			case channeltypes.AttributeKeySrcChannel:
				packet.SourceChannel = attr.Value
			case channeltypes.AttributeKeyDstPort:
				packet.DestinationPort = attr.Value
			case channeltypes.AttributeKeyDstChannel:
				packet.DestinationChannel = attr.Value
			case channeltypes.AttributeKeyTimeoutHeight:
				height, err := clienttypes.ParseHeight(attr.Value)
				if err != nil {
					return nil, errors.Wrap(err, "failed to parse height")
				}
				packet.TimeoutHeight = height
			case channeltypes.AttributeKeyTimeoutTimestamp:
				timestamp, err := strconv.ParseUint(attr.Value, 10, 64)
				if err != nil {
					return nil, errors.Wrap(err, "failed to parse timestamp")
				}
				packet.TimeoutTimestamp = timestamp
			}
		}

		packets = append(packets, packet)
	}

	return packets, nil
}
