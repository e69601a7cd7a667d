//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"net"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName returns the worker's own name when it has one,
// otherwise the type name found by reflection.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(interface{ Name() string }); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// GroupChannel is the multicast group a peer talks to.
// Conn exposes the socket the group receive loop reads from,
// it is only valid between Join and Close.
type GroupChannel interface {
	Join() error
	Send(payload []byte) error
	Conn() net.PacketConn
	Close() error
}

type ErrorReporter interface {
	// ReportError shows a non fatal failure to the user.
	ReportError(err error)
}

// DatagramHandler processes one datagram read by a receive loop.
type DatagramHandler interface {
	ErrorReporter
	HandleDatagram(payload []byte, from net.Addr) error
	Online() bool
}

// LineHandler processes one line typed by the user.
type LineHandler interface {
	ErrorReporter
	HandleLine(line string) error
	Online() bool
}

// LogSwitch turns diagnostic logging on and off at runtime.
type LogSwitch interface {
	IsOn() bool
	Toggle() bool
}
