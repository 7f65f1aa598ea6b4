package nbstat

import (
	"github.com/haikoschol/nbtstat/internal/wire"
	"net"
)

const (
	statisticsSize = 46
	unitIDSize     = 6
)

// Statistics is the trailer of a node status response. Only UnitID carries
// meaning on current systems (the adapter MAC address), the counters are
// usually zero.
type Statistics struct {
	UnitID                   [unitIDSize]byte
	Jumpers                  uint8
	TestResult               uint8
	VersionNumber            uint16
	PeriodOfStatistics       uint16
	CRCCount                 uint16
	AlignmentErrors          uint16
	Collisions               uint16
	SendAborts               uint16
	GoodSends                uint32
	GoodReceives             uint32
	Retransmits              uint16
	NoResourceConditions     uint16
	FreeCommandBlocks        uint16
	TotalCommandBlocks       uint16
	MaxTotalCommandBlocks    uint16
	PendingSessions          uint16
	MaxPendingSessions       uint16
	MaxTotalSessionsPossible uint16
	SessionDataPacketSize    uint16
}

func (s *Statistics) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, unitIDSize)
	copy(hw, s.UnitID[:])
	return hw
}

func decodeStatistics(c *wire.Cursor) (Statistics, error) {
	b, err := c.Next(statisticsSize)
	if err != nil {
		return Statistics{}, err
	}

	var s Statistics
	copy(s.UnitID[:], b[:unitIDSize])
	s.Jumpers = wire.Decode8(b[6:])
	s.TestResult = wire.Decode8(b[7:])
	s.VersionNumber = wire.Decode16(b[8:])
	s.PeriodOfStatistics = wire.Decode16(b[10:])
	s.CRCCount = wire.Decode16(b[12:])
	s.AlignmentErrors = wire.Decode16(b[14:])
	s.Collisions = wire.Decode16(b[16:])
	s.SendAborts = wire.Decode16(b[18:])
	s.GoodSends = wire.Decode32(b[20:])
	s.GoodReceives = wire.Decode32(b[24:])
	s.Retransmits = wire.Decode16(b[28:])
	s.NoResourceConditions = wire.Decode16(b[30:])
	s.FreeCommandBlocks = wire.Decode16(b[32:])
	s.TotalCommandBlocks = wire.Decode16(b[34:])
	s.MaxTotalCommandBlocks = wire.Decode16(b[36:])
	s.PendingSessions = wire.Decode16(b[38:])
	s.MaxPendingSessions = wire.Decode16(b[40:])
	s.MaxTotalSessionsPossible = wire.Decode16(b[42:])
	s.SessionDataPacketSize = wire.Decode16(b[44:])
	return s, nil
}
