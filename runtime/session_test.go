package runtime

import (
	"bufio"
	"bytes"
	"context"
	"file-roster/domain"
	"file-roster/errors"
	"file-roster/mocks"
	"file-roster/services"
	"file-roster/sink"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func newConsoleSession(input string) (*Session, *bytes.Buffer, *bytes.Buffer) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	var out, diagnostics bytes.Buffer
	notifier := sink.NewConsoleNotifier(&diagnostics, false)
	svc := services.NewRosterService(log, notifier, lo.ToPtr("review"))
	return NewSession(log, svc, notifier, strings.NewReader(input), &out), &out, &diagnostics
}

func TestSession_Join_Leave_Attendances(t *testing.T) {
	req := require.New(t)
	session, out, diagnostics := newConsoleSession(
		"join review Alice\njoin review Bob\nleave review Alice\nattendances review\n")

	req.NoError(session.Run(context.Background()))

	req.Equal("attendances Bob\n", out.String())
	req.Empty(diagnostics.String())
}

func TestSession_Show_After_Create(t *testing.T) {
	req := require.New(t)
	session, out, _ := newConsoleSession("create\njoin Alice\n\nshow\n")

	req.NoError(session.Run(context.Background()))

	req.Equal("File Name: Default File\nAttendees (1):\n1. Alice\n", out.String())
}

func TestSession_Reports_Failures_And_Keeps_Going(t *testing.T) {
	req := require.New(t)
	var input strings.Builder
	for i := 0; i < domain.Capacity+1; i++ {
		input.WriteString("join review Person")
		input.WriteByte(byte('A' + i))
		input.WriteByte('\n')
	}
	input.WriteString("leave review Nobody\n")
	input.WriteString("dance\n")
	input.WriteString("join\n")
	input.WriteString("attendances\n")
	session, out, diagnostics := newConsoleSession(input.String())

	req.NoError(session.Run(context.Background()))

	// Then every failure produced one diagnostic line
	lines := strings.Split(strings.TrimSuffix(diagnostics.String(), "\n"), "\n")
	req.Len(lines, 4)
	req.Equal(services.FullMessage, lines[0])
	req.Equal("Attendee 'Nobody' not found in the file.", lines[1])
	req.Contains(lines[2], errors.ErrUnknownCommand.Error())
	req.Contains(lines[3], errors.ErrMissingAttendee.Error())

	// And the session still answered the last command
	req.True(strings.HasPrefix(out.String(), "attendances PersonA PersonB"))
	req.NotContains(out.String(), "PersonK")
}

func TestSession_Table(t *testing.T) {
	req := require.New(t)
	session, out, _ := newConsoleSession("join Alice\ntable\n")

	req.NoError(session.Run(context.Background()))

	req.Contains(out.String(), "ATTENDEE")
	req.Contains(out.String(), "Alice")
}

func TestSession_Quit_Stops_Reading(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIRosterService(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	var out bytes.Buffer

	// Given the service only ever sees the command before quit
	svc.EXPECT().Join("Alice").Return(nil).Times(1)
	svc.EXPECT().Join("Bob").Times(0)
	notifier.EXPECT().Notify(gomock.Any()).Times(0)

	session := NewSession(slog.Default(), svc, notifier, strings.NewReader("join Alice\nquit\njoin Bob\n"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req.NoError(session.Run(ctx))
	req.Empty(out.String())
}

func TestSession_Attendances_Error_Is_Notified(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIRosterService(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	var out bytes.Buffer

	svc.EXPECT().Attendances().Return("", errors.ErrAllocation).Times(1)
	notifier.EXPECT().Notify(errors.ErrAllocation.Error()).Times(1)

	session := NewSession(slog.Default(), svc, notifier, strings.NewReader(""), &out)

	req.False(session.Handle("attendances review"))
	req.Empty(out.String())
}

func TestSession_Stops_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIRosterService(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	// Given an input that never delivers a line
	reader, writer := io.Pipe()
	defer writer.Close()
	session := NewSession(slog.Default(), svc, notifier, reader, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := session.Run(ctx)

	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestSession_Quit_Releases_Reader(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	req := require.New(t)

	// Given sessions that quit with unread lines left and a context never cancelled
	for i := 0; i < 20; i++ {
		session, out, _ := newConsoleSession("join Alice\nquit\njoin Bob\njoin Carol\n")

		req.NoError(session.Run(context.Background()))
		req.Empty(out.String())
	}
	// Then no reader goroutine outlives its session
}

func TestSession_Oversized_Line_Does_Not_Stop_Session(t *testing.T) {
	req := require.New(t)
	huge := strings.Repeat("x", 2*maxLineSize)
	session, out, diagnostics := newConsoleSession("join " + huge + "\njoin Bob\nattendances\n")

	req.NoError(session.Run(context.Background()))

	// Then the long name was truncated and the following commands still ran
	expected := domain.AttendancesPrefix + strings.Repeat("x", domain.AttendeeNameSize-1) + " Bob\n"
	req.Equal(expected, out.String())
	req.Empty(diagnostics.String())
}

func TestReadLine(t *testing.T) {
	req := require.New(t)
	reader := bufio.NewReader(strings.NewReader(strings.Repeat("y", maxLineSize+10) + "\r\nshort\nlast"))

	line, err := readLine(reader)
	req.NoError(err)
	req.Len(line, maxLineSize)

	line, err = readLine(reader)
	req.NoError(err)
	req.Equal("short", line)

	line, err = readLine(reader)
	req.NoError(err)
	req.Equal("last", line)

	_, err = readLine(reader)
	req.ErrorIs(err, io.EOF)
}
