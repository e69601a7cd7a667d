package errors

import (
	goerrors "errors"
	"fmt"
)

var ErrWorkerPanic = fmt.Errorf("worker panic")

// ErrIO is a transport failure, fatal for the loop that hit it.
var ErrIO = fmt.Errorf("i/o error")

// ErrProtocol is an unrecognized protocol marker on the wire, fatal as well.
var ErrProtocol = fmt.Errorf("unknown protocol")

var (
	ErrMalformedMessage = fmt.Errorf("malformed message")
	ErrUnknownUser      = fmt.Errorf("unknown user")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrInvalidState     = fmt.Errorf("invalid state")
	ErrInvalidMulticast = fmt.Errorf("not a multicast address")
	ErrInputClosed      = fmt.Errorf("input closed")
	ErrDatagramTooLarge = fmt.Errorf("message does not fit in a datagram")
)

// IsFatal reports whether err must end the current session.
func IsFatal(err error) bool {
	return goerrors.Is(err, ErrIO) || goerrors.Is(err, ErrProtocol)
}
