package nbstat

import (
	"errors"
	"fmt"
)

type Code int

const (
	CodeOK              Code = 0x000
	CodeNoMemory        Code = 0x101
	CodeInvalidArgument Code = 0x102
	CodeSocketInit      Code = 0x103
	CodeSocket          Code = 0x104
	CodeProtocol        Code = 0x105
	CodeTruncated       Code = 0x106
	CodeTimeout         Code = 0x107
	CodeInternal        Code = 0x200
)

var descriptions = map[Code]string{
	CodeOK:              "operation completed successfully",
	CodeNoMemory:        "memory allocation failure",
	CodeInvalidArgument: "an invalid argument was passed to a library function",
	CodeSocketInit:      "could not initialize the sockets layer",
	CodeSocket:          "the system could not allocate a socket descriptor",
	CodeProtocol:        "protocol violation in response",
	CodeTruncated:       "truncation flag was set in response",
	CodeTimeout:         "request expired",
	CodeInternal:        "debugging error",
}

// Describe returns the message for code, or "Unknown error".
func Describe(code Code) string {
	if s, ok := descriptions[code]; ok {
		return s
	}
	return "Unknown error"
}

func (c Code) String() string {
	return fmt.Sprintf("0x%04X", int(c))
}

// Error is the error kind behind every failure of a node status query.
// Context is added by wrapping, so errors.Is and errors.As both work.
type Error struct {
	Code Code
}

func (e *Error) Error() string {
	return Describe(e.Code)
}

var (
	ErrInvalidArgument = &Error{CodeInvalidArgument}
	ErrSocketInit      = &Error{CodeSocketInit}
	ErrSocket          = &Error{CodeSocket}
	ErrProtocol        = &Error{CodeProtocol}
	ErrTimeout         = &Error{CodeTimeout}
	ErrInternal        = &Error{CodeInternal}
)

// CodeOf extracts the code from err. Errors that carry no code report
// CodeInternal, nil reports CodeOK.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
