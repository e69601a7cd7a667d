package transport

import (
	"group-chat/errors"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testGroup = "239.255.19.65"

// joinOrSkip joins the group, skipping the test on hosts without a multicast route.
func joinOrSkip(t *testing.T, g *Group) {
	if err := g.Join(); err != nil {
		t.Skipf("multicast not available here: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
}

func freePort(t *testing.T) int {
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).Port
}

func TestNewGroupChannel_Rejects_Bad_Addresses(t *testing.T) {
	req := require.New(t)
	for _, address := range []string{"127.0.0.1", "192.168.1.10", "not-an-ip", "ff02::1", ""} {
		_, err := NewGroupChannel(slog.Default(), address, 19065)
		req.ErrorIs(err, errors.ErrInvalidMulticast, address)
	}
	_, err := NewGroupChannel(slog.Default(), "230.19.6.5", 0)
	req.ErrorIs(err, errors.ErrInvalidArgument)
	_, err = NewGroupChannel(slog.Default(), "230.19.6.5", 70000)
	req.ErrorIs(err, errors.ErrInvalidArgument)
}

func TestGroup_Close_Without_Join(t *testing.T) {
	req := require.New(t)
	g, err := NewGroupChannel(slog.Default(), "230.19.6.5", 19065)
	req.NoError(err)
	req.Nil(g.Conn())
	req.ErrorIs(g.Send([]byte("hello")), errors.ErrInvalidState)

	req.NoError(g.Close())
	req.NoError(g.Close())
	req.ErrorIs(g.Join(), errors.ErrInvalidState)
}

func TestGroup_Send_Loops_Back_To_Every_Member(t *testing.T) {
	req := require.New(t)
	port := freePort(t)

	// Given two members of the same group on this host
	first, err := NewGroupChannel(slog.Default(), testGroup, port, WithLoopback(true), WithTTL(0))
	req.NoError(err)
	joinOrSkip(t, first)
	second, err := NewGroupChannel(slog.Default(), testGroup, port)
	req.NoError(err)
	joinOrSkip(t, second)

	// When the first one sends to the group
	req.NoError(first.Send([]byte("ping")))

	// Then both receive it
	for _, g := range []*Group{first, second} {
		buffer := make([]byte, 64)
		req.NoError(g.Conn().SetReadDeadline(time.Now().Add(2 * time.Second)))
		n, _, err := g.Conn().ReadFrom(buffer)
		if err != nil {
			t.Skipf("multicast loopback not delivered here: %v", err)
		}
		req.Equal("ping", string(buffer[:n]))
	}
}

func TestGroup_Close_Is_Idempotent_After_Join(t *testing.T) {
	req := require.New(t)
	g, err := NewGroupChannel(slog.Default(), testGroup, freePort(t))
	req.NoError(err)
	joinOrSkip(t, g)

	req.NoError(g.Close())
	req.Nil(g.Conn())
	req.NoError(g.Close())
	req.ErrorIs(g.Send([]byte("late")), errors.ErrInvalidState)
}

func TestListenUnicast(t *testing.T) {
	req := require.New(t)
	conn, err := ListenUnicast("127.0.0.1:0")
	req.NoError(err)
	defer conn.Close()
	req.NotZero(conn.LocalAddr().(*net.UDPAddr).Port)

	_, err = ListenUnicast("256.0.0.1:0")
	req.ErrorIs(err, errors.ErrIO)
}
