package nbstat

type Opcode uint8

const (
	OpcodeQuery        Opcode = 0x0
	OpcodeRegistration Opcode = 0x5
	OpcodeRelease      Opcode = 0x6
	OpcodeWACK         Opcode = 0x7
	OpcodeRefresh      Opcode = 0x8
)

// HeaderFlags is the second word of a name service header:
//
//	| R | OPCODE | AA | TC | RD | RA | 0 | 0 | B | RCODE |
//	 15   14-11   10   9    8    7    6   5   4    3-0
type HeaderFlags uint16

const (
	flagResponse      = 0x8000
	flagAuthoritative = 0x0400
	flagTruncated     = 0x0200
	flagRecursionDes  = 0x0100
	flagRecursionAv   = 0x0080
	flagReserved1     = 0x0040
	flagReserved2     = 0x0020
	flagBroadcast     = 0x0010
)

type HeaderFlagFields struct {
	Response           bool
	Opcode             Opcode
	Authoritative      bool
	Truncated          bool
	RecursionDesired   bool
	RecursionAvailable bool
	Reserved1          bool
	Reserved2          bool
	Broadcast          bool
	Rcode              uint8
}

func NewHeaderFlags(f HeaderFlagFields) HeaderFlags {
	var w uint16
	w |= boolBit(f.Response) << 15
	w |= (uint16(f.Opcode) << 11) & 0x7800
	w |= boolBit(f.Authoritative) << 10
	w |= boolBit(f.Truncated) << 9
	w |= boolBit(f.RecursionDesired) << 8
	w |= boolBit(f.RecursionAvailable) << 7
	w |= boolBit(f.Reserved1) << 6
	w |= boolBit(f.Reserved2) << 5
	w |= boolBit(f.Broadcast) << 4
	w |= uint16(f.Rcode) & 0x000F
	return HeaderFlags(w)
}

func (f HeaderFlags) Response() bool           { return f&flagResponse != 0 }
func (f HeaderFlags) Opcode() Opcode           { return Opcode((f >> 11) & 0xF) }
func (f HeaderFlags) Authoritative() bool      { return f&flagAuthoritative != 0 }
func (f HeaderFlags) Truncated() bool          { return f&flagTruncated != 0 }
func (f HeaderFlags) RecursionDesired() bool   { return f&flagRecursionDes != 0 }
func (f HeaderFlags) RecursionAvailable() bool { return f&flagRecursionAv != 0 }
func (f HeaderFlags) Reserved1() bool          { return f&flagReserved1 != 0 }
func (f HeaderFlags) Reserved2() bool          { return f&flagReserved2 != 0 }
func (f HeaderFlags) Broadcast() bool          { return f&flagBroadcast != 0 }
func (f HeaderFlags) Rcode() uint8             { return uint8(f & 0xF) }

func (f HeaderFlags) Fields() HeaderFlagFields {
	return HeaderFlagFields{
		Response:           f.Response(),
		Opcode:             f.Opcode(),
		Authoritative:      f.Authoritative(),
		Truncated:          f.Truncated(),
		RecursionDesired:   f.RecursionDesired(),
		RecursionAvailable: f.RecursionAvailable(),
		Reserved1:          f.Reserved1(),
		Reserved2:          f.Reserved2(),
		Broadcast:          f.Broadcast(),
		Rcode:              f.Rcode(),
	}
}

type NodeType uint8

const (
	BNode NodeType = iota
	PNode
	MNode
	ReservedNode
)

func (t NodeType) String() string {
	switch t {
	case BNode:
		return "B"
	case PNode:
		return "P"
	case MNode:
		return "M"
	default:
		return "reserved"
	}
}

// NameFlags is the NAME_FLAGS word of a node status entry (RFC 1002 4.2.18):
//
//	| G | ONT | DRG | CNF | ACT | PRM | reserved |
//	 15  14-13  12    11    10    9      8-0
//
// The reserved bits must be zero on the wire. They are kept as received and
// never checked, real stacks do not always honor that.
type NameFlags uint16

func (f NameFlags) Group() bool         { return f&0x8000 != 0 }
func (f NameFlags) OwnerType() NodeType { return NodeType((f >> 13) & 0x3) }
func (f NameFlags) Deregistering() bool { return f&0x1000 != 0 }
func (f NameFlags) Conflict() bool      { return f&0x0800 != 0 }
func (f NameFlags) Active() bool        { return f&0x0400 != 0 }
func (f NameFlags) Permanent() bool     { return f&0x0200 != 0 }
func (f NameFlags) Reserved() uint16    { return uint16(f & 0x01FF) }

func boolBit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
