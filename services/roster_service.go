package services

import (
	stderrors "errors"
	"file-roster/contract"
	"file-roster/domain"
	"file-roster/errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	FullMessage         = "File is full. Can't add more attendees."
	DefaultLabelWarning = "Warning: file_name is NULL. Initializing with default name."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// AttendeeRequest rejects names made of whitespace only, which the
// roster itself would store.
type AttendeeRequest struct {
	Name string `validate:"notblank"`
}

// RosterService owns a single roster and reports failed operations
// to its notifier. It is not safe for concurrent use.
type RosterService struct {
	log      *slog.Logger
	notifier contract.Notifier
	roster   *domain.Roster
}

func NewRosterService(log *slog.Logger, notifier contract.Notifier, label *string) *RosterService {
	s := &RosterService{log: log, notifier: notifier}
	s.Create(label)
	return s
}

func NotFoundMessage(name string) string {
	return fmt.Sprintf("Attendee '%s' not found in the file.", name)
}

func (s *RosterService) Create(label *string) {
	s.roster = domain.NewRoster(label)
	if s.roster.UsedDefaultLabel() {
		s.log.Warn(DefaultLabelWarning, "roster_id", s.roster.ID)
	}
	s.log.Debug("Roster created", "roster_id", s.roster.ID, "label", s.roster.Label())
}

func (s *RosterService) Join(name string) error {
	if err := validate.Struct(AttendeeRequest{Name: name}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingAttendee, err)
	}
	if err := s.roster.Add(name); err != nil {
		if stderrors.Is(err, errors.ErrRosterFull) {
			s.notifier.Notify(FullMessage)
		}
		return err
	}
	s.log.Debug("Attendee joined", "roster_id", s.roster.ID, "attendee", name, "count", s.roster.Count())
	return nil
}

func (s *RosterService) Leave(name string) error {
	if err := validate.Struct(AttendeeRequest{Name: name}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingAttendee, err)
	}
	if err := s.roster.Remove(name); err != nil {
		if stderrors.Is(err, errors.ErrAttendeeNotFound) {
			s.notifier.Notify(NotFoundMessage(name))
		}
		return err
	}
	s.log.Debug("Attendee left", "roster_id", s.roster.ID, "attendee", name, "count", s.roster.Count())
	return nil
}

func (s *RosterService) Describe() string {
	return s.roster.Describe()
}

func (s *RosterService) Attendances() (string, error) {
	line, err := s.roster.SerializeAttendees()
	if err != nil {
		s.log.Error("Failed to serialize attendees", "roster_id", s.roster.ID, "error", err)
		return "", err
	}
	return line, nil
}

func (s *RosterService) Roster() *domain.Roster {
	return s.roster
}
