package domain

import (
	"fmt"
	"group-chat/errors"
	"strings"
)

const (
	CommandPrefix   = "$"
	DirectSeparator = ">"
)

// Command is a parsed line of user input.
// The set of commands is closed: only this package can add one.
type Command interface {
	command()
}

type ExitCommand struct{}

type ListPeersCommand struct{}

type StatsCommand struct{}

type HelpCommand struct{}

type ToggleLogCommand struct{}

type HistoryCommand struct{}

type WhoAmICommand struct{}

type RenameCommand struct {
	Alias    string
	NewAlias string
}

// DirectMessageCommand is a "text > target" line, target being an alias or an identity ID.
type DirectMessageCommand struct {
	Text   string
	Target string
}

type BroadcastCommand struct {
	Text string
}

func (ExitCommand) command()          {}
func (ListPeersCommand) command()     {}
func (StatsCommand) command()         {}
func (HelpCommand) command()          {}
func (ToggleLogCommand) command()     {}
func (HistoryCommand) command()       {}
func (WhoAmICommand) command()        {}
func (RenameCommand) command()        {}
func (DirectMessageCommand) command() {}
func (BroadcastCommand) command()     {}

// ParseCommand turns a raw input line into a Command.
// Lines starting with "$" are commands, lines holding ">" are direct
// messages, anything else is broadcast to the group.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: blank input", errors.ErrInvalidArgument)
	}
	if strings.HasPrefix(line, CommandPrefix) {
		return parseDollarCommand(line)
	}
	if strings.Contains(line, DirectSeparator) {
		parts := strings.Split(line, DirectSeparator)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: direct messages are written 'text > alias'", errors.ErrInvalidArgument)
		}
		text, target := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if text == "" || target == "" {
			return nil, fmt.Errorf("%w: direct messages are written 'text > alias'", errors.ErrInvalidArgument)
		}
		return DirectMessageCommand{Text: text, Target: target}, nil
	}
	return BroadcastCommand{Text: line}, nil
}

func parseDollarCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]
	switch name {
	case "$exit":
		return ExitCommand{}, nil
	case "$utenti", "$list":
		return ListPeersCommand{}, nil
	case "$stat":
		return StatsCommand{}, nil
	case "$help":
		return HelpCommand{}, nil
	case "$log":
		return ToggleLogCommand{}, nil
	case "$history":
		return HistoryCommand{}, nil
	case "$whoami":
		return WhoAmICommand{}, nil
	case "$rn":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: usage is $rn <alias> <newAlias>", errors.ErrInvalidArgument)
		}
		return RenameCommand{Alias: args[0], NewAlias: args[1]}, nil
	default:
		return nil, fmt.Errorf("%w: %s, type $help for the list of commands", errors.ErrUnknownCommand, name)
	}
}

// HelpText lists the console commands.
var HelpText = []string{
	"Type any text to write to the GROUP",
	"Type 'text > alias' (or 'text > user-id') to write privately to a user",
	"Type '$exit' to leave the group and quit",
	"Type '$help' to show this list",
	"Type '$utenti' (or '$list') to show the known users",
	"Type '$stat' to show delivery statistics of sent messages",
	"Type '$rn <alias> <newAlias>' to rename a user",
	"Type '$history' to show received messages",
	"Type '$whoami' to show your identity and endpoint",
	"Type '$log' to turn logging on or off",
}
