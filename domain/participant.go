// Package domain contains core concepts of the chat system.
// This file defines Participant identities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"group-chat/errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const maxUsernameLength = 64

// Identity uniquely identifies a participant across the group.
// It is created once at startup and never mutated.
type Identity struct {
	ID       uuid.UUID
	Username string
}

// NewIdentity generates a fresh identity for username.
// The username must survive the wire format, so the field separator
// and control characters are refused.
func NewIdentity(username string) (Identity, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return Identity{}, err
	}
	return Identity{ID: uuid.New(), Username: username}, nil
}

func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: username is blank", errors.ErrInvalidArgument)
	case len(username) > maxUsernameLength:
		return fmt.Errorf("%w: username longer than %d bytes", errors.ErrInvalidArgument, maxUsernameLength)
	case strings.Contains(username, FieldSeparator):
		return fmt.Errorf("%w: username cannot contain %q", errors.ErrInvalidArgument, FieldSeparator)
	}
	for _, r := range username {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: username contains control characters", errors.ErrInvalidArgument)
		}
	}
	return nil
}

func (i Identity) String() string {
	return fmt.Sprintf("%s (%s)", i.Username, i.ID)
}
