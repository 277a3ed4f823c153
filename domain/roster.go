// Package domain contains core concepts of the attendance system.
// This file defines the Roster of a file session and its invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"bytes"
	"file-roster/errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	// LabelSize and AttendeeNameSize count one slot for the terminator,
	// so the meaningful length is one less.
	LabelSize        = 20
	AttendeeNameSize = 1024
	Capacity         = 10

	DefaultLabel      = "Default File"
	AttendancesPrefix = "attendances "
	attendeeSeparator = " "
)

type RosterID = uuid.UUID

// Roster is a bounded, ordered list of attendees attached to one file.
// Slots at or beyond count are never exposed.
type Roster struct {
	ID           RosterID
	label        string
	attendees    [Capacity]string
	count        int
	defaultLabel bool
}

// NewRoster creates an empty roster. A nil label falls back to DefaultLabel.
func NewRoster(label *string) *Roster {
	r := &Roster{ID: uuid.New()}
	if label == nil {
		r.label = Truncate(DefaultLabel, LabelSize)
		r.defaultLabel = true
		return r
	}
	r.label = Truncate(*label, LabelSize)
	return r
}

func (r *Roster) Label() string {
	return r.label
}

func (r *Roster) Count() int {
	return r.count
}

func (r *Roster) IsFull() bool {
	return r.count >= Capacity
}

// UsedDefaultLabel reports whether the roster was created without a label.
func (r *Roster) UsedDefaultLabel() bool {
	return r.defaultLabel
}

// Attendees returns a copy of the occupied slots in insertion order.
func (r *Roster) Attendees() []string {
	out := make([]string, r.count)
	copy(out, r.attendees[:r.count])
	return out
}

func (r *Roster) Contains(name string) bool {
	return r.indexOf(name) >= 0
}

// Add appends the truncated name at the end of the roster.
func (r *Roster) Add(name string) error {
	if name == "" {
		return errors.ErrMissingAttendee
	}
	if r.IsFull() {
		return errors.ErrRosterFull
	}
	r.attendees[r.count] = Truncate(name, AttendeeNameSize)
	r.count++
	return nil
}

// Remove deletes the first attendee equal to name and shifts the
// following ones left, keeping their relative order.
func (r *Roster) Remove(name string) error {
	if name == "" {
		return errors.ErrMissingAttendee
	}
	index := r.indexOf(name)
	if index < 0 {
		return fmt.Errorf("%w: %q", errors.ErrAttendeeNotFound, name)
	}
	copy(r.attendees[index:r.count-1], r.attendees[index+1:r.count])
	r.attendees[r.count-1] = ""
	r.count--
	return nil
}

func (r *Roster) indexOf(name string) int {
	return lo.IndexOf(r.attendees[:r.count], name)
}

// Describe renders the roster as a numbered, multi-line listing.
func (r *Roster) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "File Name: %s\n", r.label)
	fmt.Fprintf(&sb, "Attendees (%d):\n", r.count)
	lines := lo.Map(r.attendees[:r.count], func(name string, i int) string {
		return fmt.Sprintf("%d. %s\n", i+1, name)
	})
	sb.WriteString(strings.Join(lines, ""))
	return sb.String()
}

// SerializeAttendees renders the roster on a single line:
// "attendances " followed by space separated names and a trailing newline.
// Newlines embedded in names are replaced by spaces.
// ErrAllocation only covers an overflow while growing the output buffer;
// a real out of memory condition is fatal to the process.
func (r *Roster) SerializeAttendees() (line string, err error) {
	var buf bytes.Buffer
	defer func() {
		if rec := recover(); rec != nil {
			if rec != bytes.ErrTooLarge {
				panic(rec)
			}
			line, err = "", errors.ErrAllocation
		}
	}()

	buf.Grow(serializedSize(r.attendees[:r.count]))
	buf.WriteString(AttendancesPrefix)
	for i, name := range r.attendees[:r.count] {
		if i > 0 {
			buf.WriteString(attendeeSeparator)
		}
		buf.WriteString(strings.ReplaceAll(name, "\n", " "))
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func serializedSize(names []string) int {
	size := len(AttendancesPrefix) + 1
	for _, name := range names {
		size += len(name) + len(attendeeSeparator)
	}
	return size
}

// Truncate keeps at most size-1 runes of s, the last slot being
// reserved for the terminator of fixed-size fields.
func Truncate(s string, size int) string {
	limit := size - 1
	if limit <= 0 {
		return ""
	}
	if len(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
