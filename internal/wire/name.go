package wire

import (
	"errors"
)

const (
	// LabelSize is the size of an unencoded NetBIOS name including the suffix byte.
	LabelSize = 16
	// EncodedNameSize is the size of a half-ASCII encoded label.
	EncodedNameSize = 2 * LabelSize
)

type Label [LabelSize]byte

var (
	// WildcardName asks a node for every name it has registered.
	WildcardName = Label{'*'}

	ErrInvalidName = errors.New("invalid encoded netbios name")
)

// PadName builds a label from name, right padded with spaces. The last byte
// holds suffix. Names longer than 15 bytes are cut.
func PadName(name string, suffix byte) Label {
	var l Label
	for i := 0; i < LabelSize-1; i++ {
		if i < len(name) {
			l[i] = name[i]
		} else {
			l[i] = ' '
		}
	}
	l[LabelSize-1] = suffix
	return l
}

// EncodeName expands every nibble of label into a letter between 'A' and 'P'.
func EncodeName(label Label) [EncodedNameSize]byte {
	var out [EncodedNameSize]byte
	for i, b := range label {
		out[2*i] = 'A' + ((b >> 4) & 0x0F)
		out[2*i+1] = 'A' + (b & 0x0F)
	}
	return out
}

func DecodeName(encoded []byte) (Label, error) {
	var l Label
	if len(encoded) != EncodedNameSize {
		return l, ErrInvalidName
	}

	for i := 0; i < LabelSize; i++ {
		hi, lo := encoded[2*i], encoded[2*i+1]
		if hi < 'A' || hi > 'P' || lo < 'A' || lo > 'P' {
			return Label{}, ErrInvalidName
		}
		l[i] = (hi-'A')<<4 | (lo - 'A')
	}
	return l, nil
}
