package e2e

import (
	"bytes"
	"context"
	"file-roster/runtime"
	"file-roster/services"
	"file-roster/sink"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseConsoleSuite struct {
	suite.Suite
	Config Config
}

// Transcript holds what a console session wrote on each stream.
type Transcript struct {
	Out         string
	Diagnostics string
}

func (t Transcript) DiagnosticLines() []string {
	if t.Diagnostics == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(t.Diagnostics, "\n"), "\n")
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseConsoleSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// WithSession runs a fresh roster console over the given commands and hands
// the transcript to fn.
func (s *BaseConsoleSuite) WithSession(name string, commands []string, fn func(t Transcript)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	var out, diagnostics bytes.Buffer
	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	notifier := sink.NewConsoleNotifier(&diagnostics, false)
	service := services.NewRosterService(log, notifier, &s.Config.Label)
	input := strings.Join(commands, "\n") + "\n"
	session := runtime.NewSession(log, service, notifier, strings.NewReader(input), &out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	s.Require().NoError(session.Run(ctx))
	s.T().Logf("CONSOLE %d commands in %v", len(commands), time.Since(start))

	transcript := Transcript{Out: out.String(), Diagnostics: diagnostics.String()}
	if s.Config.DebugOutput {
		s.T().Logf("\nINPUT:\n%s\nOUTPUT:\n%s\nDIAGNOSTICS:\n%s", input, transcript.Out, transcript.Diagnostics)
	}
	fn(transcript)
}
