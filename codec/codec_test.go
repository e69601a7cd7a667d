package codec

import (
	"group-chat/domain"
	"group-chat/errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleMessage() domain.Message {
	return domain.Message{
		ID:         42,
		Sender:     domain.Identity{ID: uuid.New(), Username: "Alice"},
		SenderPort: 50123,
		AckTarget:  2,
		AckCount:   1,
		IsGroup:    true,
		IsAck:      false,
		Protocol:   domain.UDPMulticast,
		Body:       "hello everyone",
	}
}

func TestEncode_Decode_Round_Trip(t *testing.T) {
	req := require.New(t)
	messages := []domain.Message{
		sampleMessage(),
		{
			ID:         7,
			Sender:     domain.Identity{ID: uuid.New(), Username: "Bob"},
			SenderPort: 1,
			IsAck:      true,
			Protocol:   domain.UDPUnicast,
			Body:       "42",
		},
		{
			ID:         1,
			Sender:     domain.Identity{ID: uuid.New(), Username: "Clara"},
			SenderPort: 65535,
			AckTarget:  1,
			Protocol:   domain.UDPUnicast,
			Body:       "pipes | inside > the body",
		},
		{
			ID:         3,
			Sender:     domain.Identity{ID: uuid.New(), Username: "Dan"},
			SenderPort: 19065,
			Protocol:   domain.UDPMulticast,
			Body:       "",
		},
	}
	for _, m := range messages {
		payload, err := Encode(m)
		req.NoError(err)
		decoded, err := Decode(payload)
		req.NoError(err)
		req.Equal(m, decoded)
	}
}

func TestEncode_Field_Order(t *testing.T) {
	req := require.New(t)
	m := sampleMessage()
	payload, err := Encode(m)
	req.NoError(err)
	req.Equal("42|"+m.Sender.ID.String()+"|Alice|50123|2|1|true|false|UDP-multicast|hello everyone", string(payload))
}

func TestDecode_Ignores_Buffer_Padding(t *testing.T) {
	req := require.New(t)
	m := sampleMessage()
	payload, err := Encode(m)
	req.NoError(err)

	buffer := make([]byte, MaxDatagramSize)
	copy(buffer, payload)
	decoded, err := Decode(buffer)
	req.NoError(err)
	req.Equal(m, decoded)
}

func TestDecode_Wrong_Field_Count_Is_Malformed(t *testing.T) {
	req := require.New(t)
	for _, payload := range []string{"", "hello", "1|2|3", "1|" + uuid.NewString() + "|Alice|1|1|0|true"} {
		_, err := Decode([]byte(payload))
		req.ErrorIs(err, errors.ErrMalformedMessage, payload)
	}
}

func TestDecode_Bad_Field_Is_Malformed(t *testing.T) {
	req := require.New(t)
	id := uuid.NewString()
	payloads := []string{
		"x|" + id + "|Alice|1|1|0|true|false|UDP-unicast|body",
		"1|not-a-uuid|Alice|1|1|0|true|false|UDP-unicast|body",
		"1|" + id + "|Alice|port|1|0|true|false|UDP-unicast|body",
		"1|" + id + "|Alice|1|1|0|maybe|false|UDP-unicast|body",
	}
	for _, payload := range payloads {
		_, err := Decode([]byte(payload))
		req.ErrorIs(err, errors.ErrMalformedMessage, payload)
		req.NotErrorIs(err, errors.ErrProtocol)
	}
}

func TestDecode_Unknown_Protocol(t *testing.T) {
	req := require.New(t)
	payload := "1|" + uuid.NewString() + "|Alice|1|1|0|true|false|TCP|body"
	_, err := Decode([]byte(payload))
	req.ErrorIs(err, errors.ErrProtocol)
	req.True(errors.IsFatal(err))
}

func TestEncode_Rejects_Oversized_Messages(t *testing.T) {
	req := require.New(t)
	m := sampleMessage()
	m.Body = strings.Repeat("a", MaxDatagramSize)
	_, err := Encode(m)
	req.ErrorIs(err, errors.ErrInvalidArgument)
	req.ErrorIs(err, errors.ErrDatagramTooLarge)
}

func TestDecode_Sender_Port_Out_Of_Range_Is_Malformed(t *testing.T) {
	req := require.New(t)
	id := uuid.NewString()
	for _, port := range []string{"-5", "0", "65536", "102481"} {
		_, err := Decode([]byte("1|" + id + "|Bob|" + port + "|1|0|true|false|UDP-multicast|hi"))
		req.ErrorIs(err, errors.ErrMalformedMessage, port)
		req.False(errors.IsFatal(err), port)
	}
}

func TestEncode_Rejects_Unusable_Messages(t *testing.T) {
	req := require.New(t)
	for _, port := range []int{-5, 0, 65536} {
		m := sampleMessage()
		m.SenderPort = port
		_, err := Encode(m)
		req.ErrorIs(err, errors.ErrInvalidArgument, port)
	}

	// Given a body ending with a NUL byte, which receivers would take for padding
	m := sampleMessage()
	m.Body = "trailing\x00"
	_, err := Encode(m)
	req.ErrorIs(err, errors.ErrInvalidArgument)
}
