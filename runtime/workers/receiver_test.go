package workers

import (
	"context"
	"fmt"
	"group-chat/errors"
	"group-chat/mocks"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listenLoopback(t *testing.T) net.PacketConn {
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func runAsync(w interface{ Run(context.Context) error }) <-chan error {
	result := make(chan error, 1)
	go func() { result <- w.Run(context.Background()) }()
	return result
}

func TestReceiverWorker_Keeps_Going_On_Per_Message_Errors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := listenLoopback(t)
	sender := listenLoopback(t)
	handler := mocks.NewMockDatagramHandler(ctrl)

	malformed := fmt.Errorf("%w: expected 10 fields", errors.ErrMalformedMessage)
	protocol := fmt.Errorf("%w: %q", errors.ErrProtocol, "TCP")

	handler.EXPECT().Online().Return(true).AnyTimes()
	gomock.InOrder(
		handler.EXPECT().HandleDatagram([]byte("garbage"), gomock.Any()).Return(malformed),
		handler.EXPECT().ReportError(malformed),
		handler.EXPECT().HandleDatagram([]byte("fine"), gomock.Any()).Return(nil),
		handler.EXPECT().HandleDatagram([]byte("fatal"), gomock.Any()).Return(protocol),
	)

	result := runAsync(NewReceiverWorker("unicast", conn, handler, slog.Default()))
	for _, payload := range []string{"garbage", "fine", "fatal"} {
		_, err := sender.WriteTo([]byte(payload), conn.LocalAddr())
		req.NoError(err)
	}

	select {
	case err := <-result:
		req.ErrorIs(err, errors.ErrProtocol)
	case <-time.After(2 * time.Second):
		req.Fail("receiver should stop on a protocol error")
	}
}

func TestReceiverWorker_Closed_Socket_While_Offline_Is_A_Clean_Stop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := listenLoopback(t)
	handler := mocks.NewMockDatagramHandler(ctrl)

	var online atomic.Bool
	online.Store(true)
	handler.EXPECT().Online().DoAndReturn(online.Load).AnyTimes()

	result := runAsync(NewReceiverWorker("group", conn, handler, slog.Default()))
	time.Sleep(50 * time.Millisecond)

	// When the peer goes offline and closes its socket
	online.Store(false)
	req.NoError(conn.Close())

	select {
	case err := <-result:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("receiver should stop once offline")
	}
}

func TestReceiverWorker_Closed_Socket_While_Online_Is_An_IO_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conn := listenLoopback(t)
	handler := mocks.NewMockDatagramHandler(ctrl)
	handler.EXPECT().Online().Return(true).AnyTimes()

	result := runAsync(NewReceiverWorker("group", conn, handler, slog.Default()))
	time.Sleep(50 * time.Millisecond)
	req.NoError(conn.Close())

	select {
	case err := <-result:
		req.ErrorIs(err, errors.ErrIO)
		req.True(errors.IsFatal(err))
	case <-time.After(2 * time.Second):
		req.Fail("receiver should report the broken socket")
	}
}

func TestReceiverWorker_Name(t *testing.T) {
	require.Equal(t, "unicast", NewReceiverWorker("unicast", nil, nil, slog.Default()).Name())
}
