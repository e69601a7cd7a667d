package transport

import (
	"fmt"
	"group-chat/errors"
	"net"
)

// ListenUnicast opens the endpoint other peers send direct messages and acks to.
// An address with port 0 gets an ephemeral port.
func ListenUnicast(address string) (net.PacketConn, error) {
	conn, err := net.ListenPacket("udp4", address)
	if err != nil {
		return nil, fmt.Errorf("%w: opening unicast endpoint %q: %v", errors.ErrIO, address, err)
	}
	return conn, nil
}
