//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"file-roster/domain"
)

// Notifier receives the diagnostics of failed roster operations.
type Notifier interface {
	Notify(message string)
}

type IRosterService interface {
	Create(label *string)
	Join(name string) error
	Leave(name string) error
	Describe() string
	Attendances() (string, error)
	Roster() *domain.Roster
}
