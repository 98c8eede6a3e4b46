package firestation

import (
	"errors"
	"testing"

	"github.com/safetynet/alerts/internal/platform/datastore"
)

func newService(seed []Firestation) *Service {
	return NewService(NewRepository(seed))
}

func TestSaveFindDelete_RoundTrip(t *testing.T) {
	svc := newService(nil)
	mapping := Firestation{Address: "1509 Culver St", Station: 3}

	if err := svc.CreateFirestation(mapping); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetFirestation("1509 Culver St", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != mapping {
		t.Errorf("expected %+v, got %+v", mapping, got)
	}

	if err := svc.DeleteFirestation("1509 Culver St", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetFirestation("1509 Culver St", 3); !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreate_DuplicatePair(t *testing.T) {
	svc := newService([]Firestation{{Address: "1509 Culver St", Station: 3}})
	err := svc.CreateFirestation(Firestation{Address: "1509 Culver St", Station: 3})
	if !errors.Is(err, datastore.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := newService(nil)
	if err := svc.CreateFirestation(Firestation{Address: " ", Station: 3}); !errors.Is(err, datastore.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank address, got %v", err)
	}
	if err := svc.CreateFirestation(Firestation{Address: "1509 Culver St", Station: -1}); !errors.Is(err, datastore.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative station, got %v", err)
	}
}

func TestManyToMany(t *testing.T) {
	svc := newService([]Firestation{
		{Address: "112 Steppes Pl", Station: 3},
		{Address: "112 Steppes Pl", Station: 4},
		{Address: "834 Binoc Ave", Station: 3},
	})

	byAddress := svc.FirestationsByAddress("112 Steppes Pl")
	if len(byAddress) != 2 {
		t.Errorf("expected 2 stations for address, got %d", len(byAddress))
	}
	byStation := svc.FirestationsByStation(3)
	if len(byStation) != 2 {
		t.Errorf("expected 2 addresses for station 3, got %d", len(byStation))
	}
	if got := svc.FirestationsByStation(9); len(got) != 0 {
		t.Errorf("expected no matches for unknown station, got %d", len(got))
	}
}

func TestUpdate(t *testing.T) {
	svc := newService([]Firestation{{Address: "29 15th St", Station: 2}})

	// Rebinding the address to a new station keeps the pair unique.
	if err := svc.UpdateFirestation("29 15th St", 2, Firestation{Address: "29 15th St", Station: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetFirestation("29 15th St", 5); err != nil {
		t.Errorf("expected rebound mapping, got %v", err)
	}
	if _, err := svc.GetFirestation("29 15th St", 2); !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected old pair gone, got %v", err)
	}

	err := svc.UpdateFirestation("nowhere", 1, Firestation{Address: "nowhere", Station: 2})
	if !errors.Is(err, datastore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
