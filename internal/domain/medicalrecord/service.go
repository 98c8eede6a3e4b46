package medicalrecord

import (
	"fmt"
	"time"

	"github.com/safetynet/alerts/internal/platform/datastore"
)

// ErrPersonNotFound is returned when a record is created for a name that no
// person carries.
var ErrPersonNotFound = fmt.Errorf("no matching person: %w", datastore.ErrNotFound)

// PersonDirectory is the slice of the person store the record service needs
// to enforce that a record is only created for a known person.
type PersonDirectory interface {
	ExistsByName(lastName, firstName string) bool
}

// Service exposes the medical-record store and derives age and minor status
// from birthdates.
//
// A record may only be created when a matching person exists; the rule is
// enforced at creation time only, so a later person deletion that fails to
// cascade leaves a dangling record rather than an error.
type Service struct {
	repo    Repository
	persons PersonDirectory
	now     func() time.Time
}

func NewService(repo Repository, persons PersonDirectory) *Service {
	return &Service{repo: repo, persons: persons, now: time.Now}
}

// SetClock overrides the clock used for age derivation. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) ListRecords() []Medicalrecord {
	return s.repo.FindAll()
}

func (s *Service) GetRecord(lastName, firstName string) (Medicalrecord, error) {
	return s.repo.FindByName(lastName, firstName)
}

func (s *Service) Exists(lastName, firstName string) bool {
	return s.repo.ExistsByName(lastName, firstName)
}

// CreateRecord stores a new record after checking that the matching person
// exists. datastore.ErrNotFound when the person is missing;
// datastore.ErrAlreadyExists when a record for the key is present. The
// record store is left untouched on failure.
func (s *Service) CreateRecord(m Medicalrecord) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !s.persons.ExistsByName(m.LastName, m.FirstName) {
		return ErrPersonNotFound
	}
	return s.repo.Save(m)
}

func (s *Service) UpdateRecord(lastName, firstName string, m Medicalrecord) error {
	return s.repo.Update(lastName, firstName, m)
}

// DeleteByName removes the record for the given name. Used both by the
// REST surface and by the person cascade delete.
func (s *Service) DeleteByName(lastName, firstName string) error {
	return s.repo.Delete(lastName, firstName)
}

// Age returns the whole-year age of the named person at the current clock
// reading, or datastore.ErrNotFound when no record exists.
func (s *Service) Age(lastName, firstName string) (int, error) {
	m, err := s.repo.FindByName(lastName, firstName)
	if err != nil {
		return 0, err
	}
	return m.Birthdate.YearsUntil(s.now()), nil
}

// IsMinor reports whether the named person's age is 18 or below. The
// boundary is inclusive: an 18-year-old counts as a minor.
func (s *Service) IsMinor(lastName, firstName string) (bool, error) {
	age, err := s.Age(lastName, firstName)
	if err != nil {
		return false, err
	}
	return age <= 18, nil
}
