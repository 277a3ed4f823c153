// Package runtime drives a roster from a line oriented console.
// It dispatches commands without containing roster rules.
package runtime

import (
	"bufio"
	"context"
	stderrors "errors"
	"file-roster/contract"
	"file-roster/domain"
	"file-roster/errors"
	"file-roster/projection"
	"fmt"
	"io"
	"log/slog"
)

// maxLineSize caps what is kept of one input line. The tail of a longer
// line is discarded, and names are truncated further by the roster.
const maxLineSize = 1024 * 1024

type Session struct {
	log      *slog.Logger
	service  contract.IRosterService
	notifier contract.Notifier
	in       io.Reader
	out      io.Writer
}

func NewSession(log *slog.Logger, service contract.IRosterService, notifier contract.Notifier, in io.Reader, out io.Writer) *Session {
	return &Session{log: log, service: service, notifier: notifier, in: in, out: out}
}

// Run reads commands until EOF, a quit command, or ctx cancellation.
// The reader goroutine is released on every return, unless it is blocked
// inside a Read of in that never returns.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		reader := bufio.NewReader(s.in)
		for {
			line, err := readLine(reader)
			if err != nil {
				if err == io.EOF {
					err = nil
				}
				readErr <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Stopping session")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading commands: %w", err)
				}
				s.log.Debug("End of input")
				return nil
			}
			if quit := s.Handle(line); quit {
				s.log.Debug("Session closed by command")
				return nil
			}
		}
	}
}

// readLine returns the next line without its line ending, keeping at
// most maxLineSize bytes of it.
func readLine(r *bufio.Reader) (string, error) {
	var line []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}
		if room := maxLineSize - len(line); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			line = append(line, chunk...)
		}
		if !isPrefix {
			return string(line), nil
		}
	}
}

// Handle parses and executes a single line. It reports whether the
// session should stop. Failures are notified and never stop the session.
func (s *Session) Handle(line string) bool {
	cmd, err := domain.ParseCommand(line)
	if err != nil {
		s.log.Debug("Rejected command", "line", line, "error", err)
		s.notifier.Notify(err.Error())
		return false
	}
	if cmd == nil {
		return false
	}
	s.log.Debug("Dispatching command", "command", cmd.Verb())
	return s.Dispatch(cmd)
}

func (s *Session) Dispatch(cmd domain.Command) bool {
	switch c := cmd.(type) {
	case domain.CreateCommand:
		s.service.Create(c.Label)
	case domain.JoinCommand:
		s.report(c.Verb(), c.File, s.service.Join(c.Attendee))
	case domain.LeaveCommand:
		s.report(c.Verb(), c.File, s.service.Leave(c.Attendee))
	case domain.AttendancesCommand:
		line, err := s.service.Attendances()
		if err != nil {
			s.notifier.Notify(err.Error())
			return false
		}
		s.write(line)
	case domain.ShowCommand:
		s.write(s.service.Describe())
	case domain.TableCommand:
		projection.RenderTable(s.out, s.service.Roster())
	case domain.QuitCommand:
		return true
	default:
		s.log.Warn("Unhandled command", "command", cmd.Verb())
	}
	return false
}

// report surfaces failures the service did not already notify.
func (s *Session) report(verb domain.Verb, file string, err error) {
	if err == nil {
		return
	}
	s.log.Debug("Command failed", "command", verb, "file", file, "error", err)
	if stderrors.Is(err, errors.ErrMissingAttendee) {
		s.notifier.Notify(fmt.Sprintf("%s: %v", verb, errors.ErrMissingAttendee))
	}
}

func (s *Session) write(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		s.log.Error("Failed to write reply", "error", err)
	}
}
