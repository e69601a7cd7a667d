package repositories

import (
	"fmt"
	"group-chat/domain"
	"group-chat/errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Ledger records the messages a peer sent and received and keeps track
// of the acknowledgments collected by the sent ones.
// Every method holds the ledger-wide lock for its whole duration.
type Ledger struct {
	mu       sync.Mutex
	log      *slog.Logger
	owner    uuid.UUID
	lastID   int
	sent     []*domain.Message
	received []domain.Message
}

func NewLedger(log *slog.Logger, owner domain.Identity) *Ledger {
	return &Ledger{log: log, owner: owner.ID}
}

// NewID returns the next message ID, starting at 1.
func (l *Ledger) NewID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastID++
	return l.lastID
}

// RecordOutgoing stores a copy of a message sent by the local peer.
func (l *Ledger) RecordOutgoing(message domain.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sent = append(l.sent, &message)
	l.log.Debug("Outgoing message recorded", "id", message.ID, "body", message.Body)
}

// RecordIncoming stores a received message unless the local peer sent it.
func (l *Ledger) RecordIncoming(message domain.Message) error {
	if message.Sender.ID == uuid.Nil {
		return fmt.Errorf("%w: message %d has no sender", errors.ErrUnknownUser, message.ID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if message.Sender.ID == l.owner {
		l.log.Debug("Own message not recorded [loop-back]", "body", message.Body)
		return nil
	}
	l.received = append(l.received, message)
	l.log.Debug("Incoming message recorded",
		"body", message.Body, "from", message.Sender.Username, "sender_id", message.Sender.ID)
	return nil
}

// ReconcileAck credits the sent message whose ID is carried by the ack body.
// Messages that already collected every expected ack are left alone, and an
// ack matching nothing is ignored. Repeated acks from the same peer are not
// told apart: each one counts.
func (l *Ledger) ReconcileAck(ack domain.Message) error {
	id, err := strconv.Atoi(strings.TrimSpace(ack.Body))
	if err != nil {
		return fmt.Errorf("%w: ack body %q is not a message id", errors.ErrMalformedMessage, ack.Body)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	original, ok := lo.Find(l.sent, func(m *domain.Message) bool {
		return m.ID == id && m.AckCount < m.AckTarget
	})
	if !ok {
		l.log.Debug("Ack matches no pending message", "id", id, "from", ack.Sender.Username)
		return nil
	}
	original.AckCount++
	l.log.Debug("Ack matched", "id", id, "acks", original.AckCount, "target", original.AckTarget)
	return nil
}

// Sent returns a snapshot of the sent messages, oldest first.
func (l *Ledger) Sent() []domain.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	return lo.Map(l.sent, func(m *domain.Message, _ int) domain.Message {
		return *m
	})
}

// Received returns a snapshot of the received messages, oldest first.
func (l *Ledger) Received() []domain.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Message(nil), l.received...)
}

// Statistics summarizes delivery of every sent message.
type Statistics struct {
	Messages   []domain.Message
	Total      int
	Delivered  int
	Percentage int
}

// HasData is false when nothing was sent, in which case Percentage is meaningless.
func (s Statistics) HasData() bool {
	return s.Total > 0
}

func (l *Ledger) Statistics() Statistics {
	messages := l.Sent()
	stats := Statistics{
		Messages:  messages,
		Total:     len(messages),
		Delivered: lo.CountBy(messages, domain.Message.Delivered),
	}
	if stats.HasData() {
		stats.Percentage = int(math.Round(float64(stats.Delivered) / float64(stats.Total) * 100))
	}
	return stats
}

func (s Statistics) Render() string {
	var sb strings.Builder
	sb.WriteString("Delivery statistics\n")
	if !s.HasData() {
		sb.WriteString("No messages sent yet: no data")
		return sb.String()
	}
	for _, m := range s.Messages {
		fmt.Fprintf(&sb, "(id %d) %d of %d acks, body '%s'\n", m.ID, m.AckCount, m.AckTarget, m.Body)
	}
	fmt.Fprintf(&sb, "Messages sent: %d | Delivered: %d | Success: %d%%", s.Total, s.Delivered, s.Percentage)
	return sb.String()
}
