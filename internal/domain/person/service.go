package person

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/safetynet/alerts/internal/platform/datastore"
)

// RecordStore is the slice of the medical-record store the person service
// needs for cascade deletion.
type RecordStore interface {
	DeleteByName(lastName, firstName string) error
}

// Service exposes the person directory and owns the person half of the
// cross-entity rule: deleting a person also deletes their medical record.
type Service struct {
	repo    Repository
	records RecordStore
	log     zerolog.Logger
}

func NewService(repo Repository, records RecordStore, log zerolog.Logger) *Service {
	return &Service{repo: repo, records: records, log: log}
}

func (s *Service) ListPersons() []Person {
	return s.repo.FindAll()
}

func (s *Service) GetPerson(lastName, firstName string) (Person, error) {
	return s.repo.FindByName(lastName, firstName)
}

func (s *Service) PersonsByAddress(address string) []Person {
	return s.repo.FindByAddress(address)
}

func (s *Service) PersonsByCity(city string) []Person {
	return s.repo.FindByCity(city)
}

func (s *Service) Exists(lastName, firstName string) bool {
	return s.repo.ExistsByName(lastName, firstName)
}

func (s *Service) CreatePerson(p Person) error {
	return s.repo.Save(p)
}

func (s *Service) UpdatePerson(lastName, firstName string, p Person) error {
	return s.repo.Update(lastName, firstName, p)
}

// DeletePerson removes the person and best-effort removes their medical
// record. A missing record is not an error; any other record-store failure
// is surfaced.
func (s *Service) DeletePerson(lastName, firstName string) error {
	if err := s.repo.Delete(lastName, firstName); err != nil {
		return err
	}
	if s.records == nil {
		return nil
	}
	if err := s.records.DeleteByName(lastName, firstName); err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			s.log.Debug().
				Str("lastName", lastName).
				Str("firstName", firstName).
				Msg("no medical record to cascade-delete")
			return nil
		}
		return err
	}
	return nil
}
