package nbstat

import (
	"errors"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/haikoschol/nbtstat/internal/wire"
)

const nameServicePort = 137

// LayerTypeNodeStatus lets gopacket decode node status traffic on UDP port
// 137 out of captured frames.
var LayerTypeNodeStatus = gopacket.RegisterLayerType(
	2137,
	gopacket.LayerTypeMetadata{
		Name:    "NBTNodeStatus",
		Decoder: gopacket.DecodeFunc(decodeNodeStatus),
	},
)

func init() {
	layers.RegisterUDPPortLayerType(nameServicePort, LayerTypeNodeStatus)
}

var errNothingToSerialize = errors.New("node status layer has no request to serialize")

// Layer carries a decoded request or response, depending on the direction
// of the datagram. Only requests are serialized.
type Layer struct {
	layers.BaseLayer
	Request  *Request
	Response *Response
}

func decodeNodeStatus(data []byte, p gopacket.PacketBuilder) error {
	l := &Layer{}
	err := l.DecodeFromBytes(data, p)
	if err != nil {
		return err
	}
	p.AddLayer(l)
	p.SetApplicationLayer(l)
	return nil
}

func (l *Layer) LayerType() gopacket.LayerType {
	return LayerTypeNodeStatus
}

func (l *Layer) CanDecode() gopacket.LayerClass {
	return LayerTypeNodeStatus
}

func (l *Layer) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypeZero
}

func (l *Layer) Payload() []byte {
	return nil
}

func (l *Layer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	l.BaseLayer = layers.BaseLayer{Contents: data}
	l.Request = nil
	l.Response = nil

	if len(data) < headerSize {
		df.SetTruncated()
		return ErrProtocol
	}

	if !HeaderFlags(wire.Decode16(data[2:])).Response() {
		req, err := DecodeRequest(data)
		if err != nil {
			return err
		}
		l.Request = req
		return nil
	}

	resp, err := DecodeResponse(data)
	if err != nil {
		return err
	}
	if resp.Header.Flags.Truncated() {
		df.SetTruncated()
	}
	l.Response = resp
	return nil
}

func (l *Layer) SerializeTo(b gopacket.SerializeBuffer, _ gopacket.SerializeOptions) error {
	if l.Request == nil {
		return errNothingToSerialize
	}

	encoded, err := l.Request.Bytes()
	if err != nil {
		return err
	}

	data, err := b.PrependBytes(len(encoded))
	if err != nil {
		return err
	}
	copy(data, encoded)
	return nil
}
