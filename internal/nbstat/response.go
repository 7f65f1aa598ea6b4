package nbstat

import (
	"fmt"
	"github.com/haikoschol/nbtstat/internal/wire"
)

const (
	// MaxResponseSize is the largest datagram accepted as a response.
	MaxResponseSize = 576

	NameSize  = 15
	entrySize = NameSize + 1 + 2
)

type ResourceRecord struct {
	Type     uint16
	Class    uint16
	TTL      uint32
	RDLength uint16
}

// NameEntry is one registered name of the queried node. Name holds the raw
// bytes from the wire, padded with spaces.
type NameEntry struct {
	Name   [NameSize]byte
	Suffix byte
	Flags  NameFlags
}

func (e NameEntry) String() string {
	return fmt.Sprintf("%s<%02X> group=%t type=%s", e.Name[:], e.Suffix, e.Flags.Group(), e.Flags.OwnerType())
}

type Response struct {
	Header     Header
	Record     ResourceRecord
	Names      []NameEntry
	Statistics Statistics
}

// DecodeResponse validates and decodes a node status response. It never
// returns a partially decoded response.
func DecodeResponse(data []byte) (*Response, error) {
	if len(data) > MaxResponseSize {
		return nil, fmt.Errorf("%w: datagram of %d bytes exceeds %d", ErrProtocol, len(data), MaxResponseSize)
	}

	c := wire.NewCursor(data)

	header, err := decodeHeader(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	if !header.Flags.Response() {
		return nil, fmt.Errorf("%w: response bit not set", ErrProtocol)
	}

	record, err := decodeResourceRecord(c)
	if err != nil {
		return nil, err
	}

	count, err := c.Uint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	// once this holds, nothing below can run past the end of data
	expected := c.Pos() + entrySize*int(count) + statisticsSize
	if expected != len(data) {
		return nil, fmt.Errorf("%w: %d names need %d bytes, got %d", ErrProtocol, count, expected, len(data))
	}

	names := make([]NameEntry, count)
	for i := range names {
		names[i], err = decodeNameEntry(c)
		if err != nil {
			return nil, fmt.Errorf("%w: name entry %d: %w", ErrInternal, i, err)
		}
	}

	stats, err := decodeStatistics(c)
	if err != nil {
		return nil, fmt.Errorf("%w: statistics: %w", ErrInternal, err)
	}

	if c.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes left after decoding", ErrInternal, c.Len())
	}

	return &Response{
		Header:     header,
		Record:     record,
		Names:      names,
		Statistics: stats,
	}, nil
}

func decodeResourceRecord(c *wire.Cursor) (ResourceRecord, error) {
	// the name echoes the question and is not compared
	if err := c.Skip(nameFieldSize); err != nil {
		return ResourceRecord{}, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	b, err := c.Next(10)
	if err != nil {
		return ResourceRecord{}, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	rr := ResourceRecord{
		Type:     wire.Decode16(b[0:]),
		Class:    wire.Decode16(b[2:]),
		TTL:      wire.Decode32(b[4:]),
		RDLength: wire.Decode16(b[8:]),
	}
	if rr.Type != TypeNBSTAT {
		return ResourceRecord{}, fmt.Errorf("%w: unexpected record type 0x%04X", ErrProtocol, rr.Type)
	}
	return rr, nil
}

func decodeNameEntry(c *wire.Cursor) (NameEntry, error) {
	b, err := c.Next(entrySize)
	if err != nil {
		return NameEntry{}, err
	}

	var e NameEntry
	copy(e.Name[:], b[:NameSize])
	e.Suffix = wire.Decode8(b[NameSize:])
	e.Flags = NameFlags(wire.Decode16(b[NameSize+1:]))
	return e, nil
}
