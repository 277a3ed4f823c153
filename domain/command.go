package domain

import (
	"file-roster/errors"
	"fmt"
	"strings"
	"unicode"
)

type Verb string

const (
	VerbCreate      Verb = "create"
	VerbJoin        Verb = "join"
	VerbLeave       Verb = "leave"
	VerbAttendances Verb = "attendances"
	VerbShow        Verb = "show"
	VerbTable       Verb = "table"
	VerbQuit        Verb = "quit"
	VerbExit        Verb = "exit"
)

type Command interface {
	Verb() Verb
}

type CreateCommand struct {
	Label *string
}

func (CreateCommand) Verb() Verb { return VerbCreate }

type JoinCommand struct {
	File     string
	Attendee string
}

func (JoinCommand) Verb() Verb { return VerbJoin }

type LeaveCommand struct {
	File     string
	Attendee string
}

func (LeaveCommand) Verb() Verb { return VerbLeave }

type AttendancesCommand struct {
	File string
}

func (AttendancesCommand) Verb() Verb { return VerbAttendances }

type ShowCommand struct{}

func (ShowCommand) Verb() Verb { return VerbShow }

type TableCommand struct{}

func (TableCommand) Verb() Verb { return VerbTable }

type QuitCommand struct{}

func (QuitCommand) Verb() Verb { return VerbQuit }

// ParseCommand reads one console line. A blank line yields a nil command.
//
// join and leave accept either "<verb> <file> <name...>" or "<verb> <name>":
// with a single argument it is the attendee, otherwise the first token
// names the file and the rest of the line is the attendee.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	verb := Verb(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), fields[0]))

	switch verb {
	case VerbCreate:
		if rest == "" {
			return CreateCommand{}, nil
		}
		return CreateCommand{Label: &rest}, nil
	case VerbJoin, VerbLeave:
		file, attendee, err := splitFileAndAttendee(verb, fields[1:], rest)
		if err != nil {
			return nil, err
		}
		if verb == VerbJoin {
			return JoinCommand{File: file, Attendee: attendee}, nil
		}
		return LeaveCommand{File: file, Attendee: attendee}, nil
	case VerbAttendances:
		return AttendancesCommand{File: rest}, nil
	case VerbShow:
		return ShowCommand{}, nil
	case VerbTable:
		return TableCommand{}, nil
	case VerbQuit, VerbExit:
		return QuitCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, fields[0])
	}
}

func splitFileAndAttendee(verb Verb, args []string, rest string) (string, string, error) {
	switch len(args) {
	case 0:
		return "", "", fmt.Errorf("%s: %w", verb, errors.ErrMissingAttendee)
	case 1:
		return "", args[0], nil
	default:
		attendee := strings.TrimSpace(strings.TrimPrefix(rest, args[0]))
		return args[0], attendee, nil
	}
}
