package person

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/platform/datastore"
)

// -- Mock record store --

type mockRecords struct {
	deleted [][2]string
	err     error
}

func (m *mockRecords) DeleteByName(lastName, firstName string) error {
	m.deleted = append(m.deleted, [2]string{lastName, firstName})
	return m.err
}

func boyd() Person {
	return Person{
		FirstName: "John", LastName: "Boyd",
		Address: "1509 Culver St", City: "Culver", Zip: 97451,
		Phone: "841-874-6512", Email: "jaboyd@email.com",
	}
}

func newService(seed []Person, records RecordStore) *Service {
	return NewService(NewRepository(seed), records, zerolog.Nop())
}

func TestCreatePerson(t *testing.T) {
	svc := newService(nil, &mockRecords{})
	if err := svc.CreatePerson(boyd()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetPerson("Boyd", "John")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Address != "1509 Culver St" {
		t.Errorf("unexpected person: %+v", got)
	}

	if err := svc.CreatePerson(boyd()); !errors.Is(err, datastore.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreatePerson_InvalidInput(t *testing.T) {
	svc := newService(nil, &mockRecords{})

	blank := boyd()
	blank.Email = " "
	if err := svc.CreatePerson(blank); !errors.Is(err, datastore.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank email, got %v", err)
	}

	negative := boyd()
	negative.Zip = -1
	if err := svc.CreatePerson(negative); !errors.Is(err, datastore.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative zip, got %v", err)
	}
}

func TestUpdatePerson_ReplacesAllFields(t *testing.T) {
	svc := newService([]Person{boyd()}, &mockRecords{})

	moved := boyd()
	moved.Address = "112 Steppes Pl"
	moved.Phone = "841-874-6874"
	if err := svc.UpdatePerson("Boyd", "John", moved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := svc.GetPerson("Boyd", "John")
	if got.Address != "112 Steppes Pl" || got.Phone != "841-874-6874" {
		t.Errorf("unexpected person after update: %+v", got)
	}

	if err := svc.UpdatePerson("Nobody", "Here", moved); !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePerson_CascadesToRecord(t *testing.T) {
	records := &mockRecords{}
	svc := newService([]Person{boyd()}, records)

	if err := svc.DeletePerson("Boyd", "John"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPerson("Boyd", "John"); !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected person gone, got %v", err)
	}
	if len(records.deleted) != 1 || records.deleted[0] != [2]string{"Boyd", "John"} {
		t.Errorf("expected cascade delete of record, got %v", records.deleted)
	}
}

func TestDeletePerson_SwallowsMissingRecord(t *testing.T) {
	records := &mockRecords{err: datastore.ErrNotFound}
	svc := newService([]Person{boyd()}, records)

	if err := svc.DeletePerson("Boyd", "John"); err != nil {
		t.Fatalf("expected missing record to be swallowed, got %v", err)
	}
}

func TestDeletePerson_CascadeWithRealStores(t *testing.T) {
	personRepo := NewRepository([]Person{boyd()})
	recordSvc := medicalrecord.NewService(medicalrecord.NewRepository(nil), personRepo)
	if err := recordSvc.CreateRecord(medicalrecord.Medicalrecord{
		FirstName: "John", LastName: "Boyd",
		Birthdate: medicalrecord.NewDate(1984, time.March, 6),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc := NewService(personRepo, recordSvc, zerolog.Nop())
	if err := svc.DeletePerson("Boyd", "John"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetPerson("Boyd", "John"); !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected person gone, got %v", err)
	}
	if _, err := recordSvc.GetRecord("Boyd", "John"); !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected record gone, got %v", err)
	}
}

func TestDeletePerson_NotFound(t *testing.T) {
	records := &mockRecords{}
	svc := newService(nil, records)

	if err := svc.DeletePerson("Boyd", "John"); !errors.Is(err, datastore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(records.deleted) != 0 {
		t.Error("expected no cascade when the person delete fails")
	}
}

func TestFindByAddressAndCity(t *testing.T) {
	other := boyd()
	other.FirstName = "Jacob"
	away := boyd()
	away.FirstName = "Eric"
	away.LastName = "Cadigan"
	away.Address = "951 LoneTree Rd"

	svc := newService([]Person{boyd(), other, away}, &mockRecords{})

	atHome := svc.PersonsByAddress("1509 Culver St")
	if len(atHome) != 2 {
		t.Errorf("expected 2 residents, got %d", len(atHome))
	}
	inCity := svc.PersonsByCity("Culver")
	if len(inCity) != 3 {
		t.Errorf("expected 3 in city, got %d", len(inCity))
	}
	// Matching is exact and case-sensitive.
	if got := svc.PersonsByCity("culver"); len(got) != 0 {
		t.Errorf("expected no matches for lowercase city, got %d", len(got))
	}
}
