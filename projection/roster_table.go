// Package projection builds read-only views of a roster.
// Does not mutate the roster or emit diagnostics.
package projection

import (
	"file-roster/domain"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// RenderTable writes the roster as a borderless two column table.
// Embedded newlines are flattened so each attendee stays on one row.
func RenderTable(w io.Writer, r *domain.Roster) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Attendee"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(Rows(r))
	table.Render()
}

func Rows(r *domain.Roster) [][]string {
	return lo.Map(r.Attendees(), func(name string, i int) []string {
		return []string{strconv.Itoa(i + 1), strings.ReplaceAll(name, "\n", " ")}
	})
}
