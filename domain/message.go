// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable once built, except AckCount on the sender's own copy.
package domain

import "fmt"

// FieldSeparator separates the fields of an encoded message.
const FieldSeparator = "|"

// Reserved bodies announcing group membership changes.
const (
	JoinGroupBody  = "join-group"
	LeaveGroupBody = "left-group"
)

// Protocol is the transport a message travelled on.
type Protocol int

const (
	UDPUnicast Protocol = iota + 1
	UDPMulticast
)

func (p Protocol) String() string {
	switch p {
	case UDPUnicast:
		return "UDP-unicast"
	case UDPMulticast:
		return "UDP-multicast"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

// ParseProtocol maps a wire marker back to a Protocol.
func ParseProtocol(marker string) (Protocol, bool) {
	switch marker {
	case UDPUnicast.String():
		return UDPUnicast, true
	case UDPMulticast.String():
		return UDPMulticast, true
	default:
		return 0, false
	}
}

// Kind classifies an inbound message for dispatch.
type Kind int

const (
	KindText Kind = iota
	KindAck
	KindJoin
	KindLeave
)

func (k Kind) String() string {
	switch k {
	case KindAck:
		return "ack"
	case KindJoin:
		return "join"
	case KindLeave:
		return "leave"
	default:
		return "text"
	}
}

// Message represents a chat datagram.
// AckTarget is the number of acknowledgments that make it delivered:
// 1 for unicast text, the other group members for multicast, 0 for an ack.
type Message struct {
	ID         int
	Sender     Identity
	SenderPort int
	AckTarget  int
	AckCount   int
	IsGroup    bool
	IsAck      bool
	Protocol   Protocol
	Body       string
}

func (m Message) Kind() Kind {
	switch {
	case m.IsAck:
		return KindAck
	case m.Body == LeaveGroupBody:
		return KindLeave
	case m.Body == JoinGroupBody:
		return KindJoin
	default:
		return KindText
	}
}

// Delivered is true once every expected acknowledgment arrived.
func (m Message) Delivered() bool {
	return m.AckCount == m.AckTarget
}
