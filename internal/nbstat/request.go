package nbstat

import (
	"fmt"
	"github.com/haikoschol/nbtstat/internal/wire"
	"io"
)

// RequestSize is the size of an encoded node status request.
const RequestSize = headerSize + nameFieldSize + 4

type Question struct {
	Name  wire.Label
	Type  uint16
	Class uint16
}

type Request struct {
	Header   Header
	Question Question
}

// NewRequest returns the node status query for the wildcard name.
func NewRequest(transactionID uint16) *Request {
	return &Request{
		Header: Header{
			TransactionID: transactionID,
			Flags:         NewHeaderFlags(HeaderFlagFields{Opcode: OpcodeQuery}),
			QuestionCount: 1,
		},
		Question: Question{
			Name:  wire.WildcardName,
			Type:  TypeNBSTAT,
			Class: ClassIN,
		},
	}
}

// Bytes returns the RequestSize byte datagram for r.
func (r *Request) Bytes() ([]byte, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}

	buf := make([]byte, RequestSize)
	r.Header.encode(buf)

	name := buf[headerSize : headerSize+nameFieldSize]
	wire.Encode8(name, wire.EncodedNameSize)
	encoded := wire.EncodeName(r.Question.Name)
	copy(name[1:], encoded[:])
	wire.Encode8(name[nameFieldSize-1:], 0)

	tail := buf[headerSize+nameFieldSize:]
	wire.Encode16(tail[0:], r.Question.Type)
	wire.Encode16(tail[2:], r.Question.Class)

	return buf, nil
}

func (r *Request) Write(w io.Writer) error {
	if w == nil {
		return ErrInvalidArgument
	}

	b, err := r.Bytes()
	if err != nil {
		return err
	}

	if written, err := w.Write(b); err != nil || written != len(b) {
		if err == nil {
			err = io.ErrShortWrite
		}
		return err
	}
	return nil
}

// DecodeRequest parses a node status request as produced by Bytes.
func DecodeRequest(data []byte) (*Request, error) {
	if len(data) != RequestSize {
		return nil, fmt.Errorf("%w: request of %d bytes, want %d", ErrProtocol, len(data), RequestSize)
	}

	c := wire.NewCursor(data)
	header, err := decodeHeader(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	if header.Flags.Response() {
		return nil, fmt.Errorf("%w: response bit set in request", ErrProtocol)
	}

	field, err := c.Next(nameFieldSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	if field[0] != wire.EncodedNameSize || field[nameFieldSize-1] != 0 {
		return nil, fmt.Errorf("%w: bad name framing", ErrProtocol)
	}

	name, err := wire.DecodeName(field[1 : nameFieldSize-1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	qtype, err := c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	qclass, err := c.Uint16()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	return &Request{
		Header: header,
		Question: Question{
			Name:  name,
			Type:  qtype,
			Class: qclass,
		},
	}, nil
}
