package projection

import (
	"bytes"
	"file-roster/domain"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	req := require.New(t)
	roster := domain.NewRoster(lo.ToPtr("Planning"))
	req.NoError(roster.Add("Alice"))
	req.NoError(roster.Add("Bob\nby"))

	rows := Rows(roster)

	req.Equal([][]string{{"1", "Alice"}, {"2", "Bob by"}}, rows)
}

func TestRenderTable(t *testing.T) {
	req := require.New(t)
	roster := domain.NewRoster(nil)
	req.NoError(roster.Add("Alice"))
	req.NoError(roster.Add("Bob"))
	var buf bytes.Buffer

	RenderTable(&buf, roster)

	out := buf.String()
	req.Contains(out, "ATTENDEE")
	req.Contains(out, "Alice")
	req.Contains(out, "Bob")
	req.Less(strings.Index(out, "Alice"), strings.Index(out, "Bob"))
}

func TestRenderTable_Empty_Roster(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	RenderTable(&buf, domain.NewRoster(nil))

	req.Contains(buf.String(), "ATTENDEE")
	req.NotContains(buf.String(), "1")
}
