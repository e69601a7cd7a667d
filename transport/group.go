// Package transport opens the UDP sockets a peer talks on: the multicast
// group shared by every member and the unicast endpoint of the peer itself.
package transport

import (
	"context"
	"fmt"
	"group-chat/errors"
	"log/slog"
	"net"
	"net/netip"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/net/ipv4"
)

const DefaultTTL = 1

// Group is a UDP multicast group channel.
// The socket is bound to the group port with address reuse, so that several
// peers running on the same host all receive the group traffic.
type Group struct {
	mu       sync.Mutex
	log      *slog.Logger
	group    *net.UDPAddr
	iface    *net.Interface
	ttl      int
	loopback bool
	conn     net.PacketConn
	pc       *ipv4.PacketConn
	closed   bool
}

type GroupOption func(*Group)

// WithTTL sets the multicast hop limit of outgoing datagrams.
func WithTTL(ttl int) GroupOption {
	return func(g *Group) { g.ttl = ttl }
}

// WithLoopback controls whether datagrams sent to the group come back to this host.
func WithLoopback(loopback bool) GroupOption {
	return func(g *Group) { g.loopback = loopback }
}

// WithInterface joins the group on a given interface instead of the system default.
func WithInterface(iface *net.Interface) GroupOption {
	return func(g *Group) { g.iface = iface }
}

// NewGroupChannel validates the group address. No socket is opened before Join.
func NewGroupChannel(log *slog.Logger, address string, port int, opts ...GroupOption) (*Group, error) {
	ip, err := netip.ParseAddr(address)
	if err != nil || !ip.Is4() || !ip.IsMulticast() {
		return nil, fmt.Errorf("%w: %q is not an IPv4 multicast address", errors.ErrInvalidMulticast, address)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: group port %d out of range", errors.ErrInvalidArgument, port)
	}
	g := &Group{
		log:      log,
		group:    net.UDPAddrFromAddrPort(netip.AddrPortFrom(ip, uint16(port))),
		ttl:      DefaultTTL,
		loopback: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Group) Address() string {
	return g.group.String()
}

// Join binds the group port and subscribes to the group.
func (g *Group) Join() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.conn != nil {
		return fmt.Errorf("%w: group %s already joined or closed", errors.ErrInvalidState, g.group)
	}

	lc := net.ListenConfig{Control: reuseAddress}
	conn, err := lc.ListenPacket(context.Background(), "udp4", fmt.Sprintf("0.0.0.0:%d", g.group.Port))
	if err != nil {
		return fmt.Errorf("%w: binding group port %d: %v", errors.ErrIO, g.group.Port, err)
	}

	pc := ipv4.NewPacketConn(conn)
	if err := pc.JoinGroup(g.iface, &net.UDPAddr{IP: g.group.IP}); err != nil {
		return fmt.Errorf("%w: joining %s: %v", errors.ErrIO, g.group, multierr.Append(err, conn.Close()))
	}
	if err := multierr.Combine(pc.SetMulticastTTL(g.ttl), pc.SetMulticastLoopback(g.loopback)); err != nil {
		g.log.Warn("Multicast socket options not applied", "group", g.group, "error", err)
	}

	g.conn, g.pc = conn, pc
	g.log.Debug("Group joined", "group", g.group, "ttl", g.ttl, "loopback", g.loopback)
	return nil
}

// Send writes one datagram to the group.
func (g *Group) Send(payload []byte) error {
	conn := g.Conn()
	if conn == nil {
		return fmt.Errorf("%w: group %s not joined", errors.ErrInvalidState, g.group)
	}
	if _, err := conn.WriteTo(payload, g.group); err != nil {
		return fmt.Errorf("%w: sending to group %s: %v", errors.ErrIO, g.group, err)
	}
	return nil
}

// Conn is nil before Join and after Close.
func (g *Group) Conn() net.PacketConn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn
}

// Close leaves the group and releases the socket. Calling it again is a no-op.
func (g *Group) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	if g.conn == nil {
		return nil
	}

	err := multierr.Combine(
		g.pc.LeaveGroup(g.iface, &net.UDPAddr{IP: g.group.IP}),
		g.conn.Close(),
	)
	g.conn, g.pc = nil, nil
	if err != nil {
		return fmt.Errorf("%w: leaving group %s: %v", errors.ErrIO, g.group, err)
	}
	g.log.Debug("Group left", "group", g.group)
	return nil
}
