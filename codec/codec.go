// Package codec turns chat messages into datagram payloads and back.
//
// A payload is a single line of fields separated by "|", in this order:
//
//	id|sender-id|username|sender-port|ack-target|ack-count|group-flag|ack-flag|protocol|body
//
// The body is the last field, so it may itself contain the separator.
package codec

import (
	"bytes"
	"fmt"
	"group-chat/domain"
	"group-chat/errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// MaxDatagramSize is the receive buffer size every peer allocates.
const MaxDatagramSize = 1024

const fieldCount = 10

// Encode serializes m. It fails when the sender port is not a usable UDP port,
// when the body holds a NUL byte (taken for padding on receive) or when the
// result would not fit MaxDatagramSize.
func Encode(m domain.Message) ([]byte, error) {
	if !validPort(m.SenderPort) {
		return nil, fmt.Errorf("%w: sender port %d out of range", errors.ErrInvalidArgument, m.SenderPort)
	}
	if strings.ContainsRune(m.Body, 0) {
		return nil, fmt.Errorf("%w: body contains a NUL byte", errors.ErrInvalidArgument)
	}
	fields := []string{
		strconv.Itoa(m.ID),
		m.Sender.ID.String(),
		m.Sender.Username,
		strconv.Itoa(m.SenderPort),
		strconv.Itoa(m.AckTarget),
		strconv.Itoa(m.AckCount),
		strconv.FormatBool(m.IsGroup),
		strconv.FormatBool(m.IsAck),
		m.Protocol.String(),
		m.Body,
	}
	payload := []byte(strings.Join(fields, domain.FieldSeparator))
	if len(payload) > MaxDatagramSize {
		return nil, fmt.Errorf("%w: %w: %d bytes, limit is %d",
			errors.ErrInvalidArgument, errors.ErrDatagramTooLarge, len(payload), MaxDatagramSize)
	}
	return payload, nil
}

// Decode parses a payload produced by Encode.
// It returns ErrMalformedMessage when the layout is wrong and ErrProtocol
// when the protocol marker is not a known one.
func Decode(data []byte) (domain.Message, error) {
	data = bytes.TrimRight(data, "\x00")
	fields := strings.SplitN(string(data), domain.FieldSeparator, fieldCount)
	if len(fields) != fieldCount {
		return domain.Message{}, fmt.Errorf("%w: expected %d fields, got %d",
			errors.ErrMalformedMessage, fieldCount, len(fields))
	}

	p := parser{fields: fields}
	m := domain.Message{
		ID: p.atoi(0, "id"),
		Sender: domain.Identity{
			ID:       p.parseUUID(1, "sender-id"),
			Username: fields[2],
		},
		SenderPort: p.port(3, "sender-port"),
		AckTarget:  p.atoi(4, "ack-target"),
		AckCount:   p.atoi(5, "ack-count"),
		IsGroup:    p.parseBool(6, "group-flag"),
		IsAck:      p.parseBool(7, "ack-flag"),
		Body:       fields[9],
	}
	if p.err != nil {
		return domain.Message{}, p.err
	}

	protocol, ok := domain.ParseProtocol(fields[8])
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: %q", errors.ErrProtocol, fields[8])
	}
	m.Protocol = protocol
	return m, nil
}

// parser keeps the first conversion error so Decode reads field by field.
type parser struct {
	fields []string
	err    error
}

func (p *parser) fail(name string, cause error) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: field %s: %v", errors.ErrMalformedMessage, name, cause)
	}
}

func (p *parser) atoi(i int, name string) int {
	v, err := strconv.Atoi(p.fields[i])
	if err != nil {
		p.fail(name, err)
	}
	return v
}

func (p *parser) port(i int, name string) int {
	v := p.atoi(i, name)
	if p.err == nil && !validPort(v) {
		p.fail(name, fmt.Errorf("%d out of range", v))
	}
	return v
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}

func (p *parser) parseBool(i int, name string) bool {
	v, err := strconv.ParseBool(p.fields[i])
	if err != nil {
		p.fail(name, err)
	}
	return v
}

func (p *parser) parseUUID(i int, name string) uuid.UUID {
	v, err := uuid.Parse(p.fields[i])
	if err != nil {
		p.fail(name, err)
	}
	return v
}
