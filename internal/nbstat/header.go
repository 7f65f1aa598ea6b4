package nbstat

import (
	"fmt"
	"github.com/haikoschol/nbtstat/internal/wire"
)

const (
	headerSize = 12

	// nameFieldSize is a length byte, the encoded label and the terminating zero.
	nameFieldSize = 1 + wire.EncodedNameSize + 1

	TypeNB     uint16 = 0x0020
	TypeNBSTAT uint16 = 0x0021
	ClassIN    uint16 = 0x0001
)

type Header struct {
	TransactionID   uint16
	Flags           HeaderFlags
	QuestionCount   uint16
	AnswerCount     uint16
	AuthorityCount  uint16
	AdditionalCount uint16
}

func (h Header) String() string {
	return fmt.Sprintf(
		"id=0x%04X response=%t opcode=%d rcode=%d qd=%d an=%d ns=%d ar=%d",
		h.TransactionID,
		h.Flags.Response(),
		h.Flags.Opcode(),
		h.Flags.Rcode(),
		h.QuestionCount,
		h.AnswerCount,
		h.AuthorityCount,
		h.AdditionalCount,
	)
}

func (h Header) encode(buf []byte) {
	wire.Encode16(buf[0:], h.TransactionID)
	wire.Encode16(buf[2:], uint16(h.Flags))
	wire.Encode16(buf[4:], h.QuestionCount)
	wire.Encode16(buf[6:], h.AnswerCount)
	wire.Encode16(buf[8:], h.AuthorityCount)
	wire.Encode16(buf[10:], h.AdditionalCount)
}

func decodeHeader(c *wire.Cursor) (Header, error) {
	b, err := c.Next(headerSize)
	if err != nil {
		return Header{}, err
	}

	return Header{
		TransactionID:   wire.Decode16(b[0:]),
		Flags:           HeaderFlags(wire.Decode16(b[2:])),
		QuestionCount:   wire.Decode16(b[4:]),
		AnswerCount:     wire.Decode16(b[6:]),
		AuthorityCount:  wire.Decode16(b[8:]),
		AdditionalCount: wire.Decode16(b[10:]),
	}, nil
}
