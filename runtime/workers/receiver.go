package workers

import (
	"context"
	"fmt"
	"group-chat/codec"
	"group-chat/contract"
	"group-chat/errors"
	"log/slog"
	"net"
)

// ReceiverWorker reads datagrams from one socket and hands them to the handler.
// It stops when the handler goes offline; closing the socket is what unblocks
// a pending read.
type ReceiverWorker struct {
	name    string
	conn    net.PacketConn
	handler contract.DatagramHandler
	log     *slog.Logger
}

func NewReceiverWorker(name string, conn net.PacketConn, handler contract.DatagramHandler, log *slog.Logger) *ReceiverWorker {
	return &ReceiverWorker{name: name, conn: conn, handler: handler, log: log}
}

func (w *ReceiverWorker) Name() string {
	return w.name
}

// Run returns nil once the handler is offline, and an error wrapping
// ErrIO or ErrProtocol when the session cannot go on.
func (w *ReceiverWorker) Run(ctx context.Context) error {
	w.log.Debug("Receiver started", "name", w.name, "address", w.conn.LocalAddr())
	buffer := make([]byte, codec.MaxDatagramSize)

	for ctx.Err() == nil && w.handler.Online() {
		n, from, err := w.conn.ReadFrom(buffer)
		if err != nil {
			if !w.handler.Online() {
				return nil
			}
			return fmt.Errorf("%w: %s: %v", errors.ErrIO, w.name, err)
		}

		if err := w.handler.HandleDatagram(buffer[:n], from); err != nil {
			if errors.IsFatal(err) {
				return err
			}
			w.log.Debug("Datagram dropped", "name", w.name, "from", from, "error", err)
			w.handler.ReportError(err)
		}
	}
	return nil
}
