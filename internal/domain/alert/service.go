package alert

import (
	"sort"

	"github.com/safetynet/alerts/internal/domain/firestation"
	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/domain/person"
)

// PersonDirectory is the read surface of the person store used by the
// aggregation queries.
type PersonDirectory interface {
	FindAll() []person.Person
	FindByName(lastName, firstName string) (person.Person, error)
	FindByAddress(address string) []person.Person
	FindByCity(city string) []person.Person
}

// StationDirectory is the read surface of the firestation store.
type StationDirectory interface {
	FindByAddress(address string) []firestation.Firestation
	FindByStation(station int) []firestation.Firestation
}

// MedicalResolver resolves records and derives age and minor status.
type MedicalResolver interface {
	GetRecord(lastName, firstName string) (medicalrecord.Medicalrecord, error)
	Age(lastName, firstName string) (int, error)
	IsMinor(lastName, firstName string) (bool, error)
}

// Service is the aggregation engine. All queries are read-only compositions
// over the three directories.
//
// Missing-record policy, applied uniformly: a person without a medical
// record never fails a multi-person query. They are listed with age and
// medical fields omitted, counted in neither the minor nor the major
// bucket, and left out of both child-alert partitions.
type Service struct {
	persons  PersonDirectory
	stations StationDirectory
	medical  MedicalResolver
}

func NewService(persons PersonDirectory, stations StationDirectory, medical MedicalResolver) *Service {
	return &Service{persons: persons, stations: stations, medical: medical}
}

// PersonsCoveredByStation returns every person whose address is mapped to
// the station, one entry per person in directory order.
func (s *Service) PersonsCoveredByStation(station int) []person.Person {
	covered := make(map[string]struct{})
	for _, f := range s.stations.FindByStation(station) {
		covered[f.Address] = struct{}{}
	}

	var out []person.Person
	for _, p := range s.persons.FindAll() {
		if _, ok := covered[p.Address]; ok {
			out = append(out, p)
		}
	}
	return out
}

// StationCoverage projects the persons covered by a station and counts
// minors (age 18 or below) and majors among those with a medical record.
func (s *Service) StationCoverage(station int) StationCoverage {
	persons := s.PersonsCoveredByStation(station)

	result := StationCoverage{Persons: make([]CoveredPerson, 0, len(persons))}
	for _, p := range persons {
		result.Persons = append(result.Persons, CoveredPerson{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Address:   p.Address,
			Phone:     p.Phone,
		})
		minor, err := s.medical.IsMinor(p.LastName, p.FirstName)
		if err != nil {
			continue
		}
		if minor {
			result.Minors++
		} else {
			result.Majors++
		}
	}
	return result
}

// ChildAlert splits the residents of an address into children and other
// household members. When no child lives there both partitions are empty,
// mirroring the distinction between "no minors" and "no residents" that
// callers read off the members list.
func (s *Service) ChildAlert(address string) ChildAlert {
	result := ChildAlert{
		Children: make([]HouseholdMember, 0),
		Members:  make([]HouseholdMember, 0),
	}

	residents := s.persons.FindByAddress(address)
	hasChildren := false
	for _, p := range residents {
		if minor, err := s.medical.IsMinor(p.LastName, p.FirstName); err == nil && minor {
			hasChildren = true
			break
		}
	}
	if !hasChildren {
		return result
	}

	for _, p := range residents {
		age, err := s.medical.Age(p.LastName, p.FirstName)
		if err != nil {
			continue
		}
		member := HouseholdMember{FirstName: p.FirstName, LastName: p.LastName, Age: age}
		if age <= 18 {
			result.Children = append(result.Children, member)
		} else {
			result.Members = append(result.Members, member)
		}
	}
	return result
}

// PhoneAlert returns the distinct phone numbers of everyone covered by the
// station, first-seen order.
func (s *Service) PhoneAlert(station int) []string {
	phones := make([]string, 0)
	seen := make(map[string]struct{})
	for _, p := range s.PersonsCoveredByStation(station) {
		if _, dup := seen[p.Phone]; dup {
			continue
		}
		seen[p.Phone] = struct{}{}
		phones = append(phones, p.Phone)
	}
	return phones
}

// FireAlert returns the distinct stations covering an address and its
// residents with medical details. An uncovered address still lists its
// residents.
func (s *Service) FireAlert(address string) FireAlert {
	stationSet := make(map[int]struct{})
	for _, f := range s.stations.FindByAddress(address) {
		stationSet[f.Station] = struct{}{}
	}
	stations := make([]int, 0, len(stationSet))
	for n := range stationSet {
		stations = append(stations, n)
	}
	sort.Ints(stations)

	residents := s.persons.FindByAddress(address)
	persons := make([]MedicalPerson, 0, len(residents))
	for _, p := range residents {
		persons = append(persons, s.medicalView(p))
	}

	return FireAlert{Address: address, Stations: stations, Persons: persons}
}

// PersonInfo returns the detailed projection for one person.
// datastore.ErrNotFound when the person is absent; a missing medical record
// only degrades the derived fields.
func (s *Service) PersonInfo(lastName, firstName string) (PersonInfo, error) {
	p, err := s.persons.FindByName(lastName, firstName)
	if err != nil {
		return PersonInfo{}, err
	}

	mp := s.medicalView(p)
	return PersonInfo{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Address:     p.Address,
		Age:         mp.Age,
		Email:       p.Email,
		Medications: mp.Medications,
		Allergies:   mp.Allergies,
	}, nil
}

// CommunityEmail returns the distinct email addresses of a city's
// residents, first-seen order.
func (s *Service) CommunityEmail(city string) []string {
	emails := make([]string, 0)
	seen := make(map[string]struct{})
	for _, p := range s.persons.FindByCity(city) {
		if _, dup := seen[p.Email]; dup {
			continue
		}
		seen[p.Email] = struct{}{}
		emails = append(emails, p.Email)
	}
	return emails
}

// FloodAlert groups everyone covered by any of the stations by address.
// A person covered through several of the listed stations appears once in
// their address group.
func (s *Service) FloodAlert(stations []int) map[string][]MedicalPerson {
	var union []person.Person
	seen := make(map[string]struct{})
	for _, station := range stations {
		for _, p := range s.PersonsCoveredByStation(station) {
			if _, dup := seen[p.Key()]; dup {
				continue
			}
			seen[p.Key()] = struct{}{}
			union = append(union, p)
		}
	}

	households := make(map[string][]MedicalPerson)
	for _, p := range union {
		households[p.Address] = append(households[p.Address], s.medicalView(p))
	}
	return households
}

// medicalView builds the medically annotated projection for one person,
// degrading to omitted age and empty lists when no record exists.
func (s *Service) medicalView(p person.Person) MedicalPerson {
	mp := MedicalPerson{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		Medications: make([]string, 0),
		Allergies:   make([]string, 0),
	}

	record, err := s.medical.GetRecord(p.LastName, p.FirstName)
	if err != nil {
		return mp
	}
	if a, err := s.medical.Age(p.LastName, p.FirstName); err == nil {
		mp.Age = &a
	}
	if len(record.Medications) > 0 {
		mp.Medications = append(mp.Medications, record.Medications...)
	}
	if len(record.Allergies) > 0 {
		mp.Allergies = append(mp.Allergies, record.Allergies...)
	}
	return mp
}
