package nbstat

import (
	"github.com/haikoschol/nbtstat/internal/wire"
)

type testEntry struct {
	name   string
	suffix byte
	flags  uint16
}

// buildResponse assembles a node status response datagram.
func buildResponse(id uint16, rrType uint16, entries []testEntry, unitID [6]byte) []byte {
	flags := NewHeaderFlags(HeaderFlagFields{Response: true, Opcode: OpcodeQuery, Authoritative: true})
	buf := make([]byte, headerSize)
	Header{TransactionID: id, Flags: flags, AnswerCount: 1}.encode(buf)

	encoded := wire.EncodeName(wire.WildcardName)
	buf = append(buf, wire.EncodedNameSize)
	buf = append(buf, encoded[:]...)
	buf = append(buf, 0)

	rdLength := 1 + entrySize*len(entries) + statisticsSize
	rr := make([]byte, 10)
	wire.Encode16(rr[0:], rrType)
	wire.Encode16(rr[2:], ClassIN)
	wire.Encode32(rr[4:], 0)
	wire.Encode16(rr[8:], uint16(rdLength))
	buf = append(buf, rr...)

	buf = append(buf, byte(len(entries)))
	for _, e := range entries {
		label := wire.PadName(e.name, e.suffix)
		buf = append(buf, label[:]...)
		buf = append(buf, byte(e.flags>>8), byte(e.flags))
	}

	stats := make([]byte, statisticsSize)
	copy(stats, unitID[:])
	return append(buf, stats...)
}
