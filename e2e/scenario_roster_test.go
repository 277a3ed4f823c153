package e2e

import (
	"file-roster/domain"
	"file-roster/services"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testRosterSuite struct {
	BaseConsoleSuite
}

func TestRosterSuite(t *testing.T) {
	suite.Run(t, &testRosterSuite{})
}

func (s *testRosterSuite) TestFullRosterFlow() {
	var joins []string
	for i := 0; i < domain.Capacity; i++ {
		joins = append(joins, fmt.Sprintf("join %s Guest%d", s.Config.Label, i))
	}

	s.Run("Step 1: Default label on a roster created without one", func() {
		s.WithSession("Create without label and describe", []string{"create", "show"}, func(t Transcript) {
			s.Require().Equal("File Name: Default File\nAttendees (0):\n", t.Out)
			s.Require().Empty(t.DiagnosticLines())
		})
	})

	s.Run("Step 2: The eleventh join is refused", func() {
		commands := append(append([]string{}, joins...), "join "+s.Config.Label+" Late", "attendances "+s.Config.Label)
		s.WithSession("Fill the roster and overflow it", commands, func(t Transcript) {
			s.Require().Equal([]string{services.FullMessage}, t.DiagnosticLines())
			s.Require().Len(strings.Fields(strings.TrimPrefix(t.Out, domain.AttendancesPrefix)), domain.Capacity)
			s.Require().NotContains(t.Out, "Late")
		})
	})

	s.Run("Step 3: Leaving compacts the roster", func() {
		commands := []string{
			"join Alice",
			"join Bob",
			"leave Alice",
			"leave Alice",
			"show",
		}
		s.WithSession("Join twice, leave twice", commands, func(t Transcript) {
			s.Require().Equal([]string{"Attendee 'Alice' not found in the file."}, t.DiagnosticLines())
			s.Require().Contains(t.Out, "Attendees (1):\n1. Bob\n")
		})
	})

	s.Run("Step 4: Output ends at quit", func() {
		s.WithSession("Quit mid stream", []string{"join Alice", "quit", "show"}, func(t Transcript) {
			s.Require().Empty(t.Out)
		})
	})
}
