package wire

import (
	"encoding/binary"
)

// Decode8, Decode16 and Decode32 read network byte order integers from the
// start of buf. The caller guarantees that buf is long enough.
func Decode8(buf []byte) uint8 {
	return buf[0]
}

func Decode16(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}

func Decode32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}

func Encode8(buf []byte, v uint8) {
	buf[0] = v
}

func Encode16(buf []byte, v uint16) {
	binary.BigEndian.PutUint16(buf, v)
}

func Encode32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}
