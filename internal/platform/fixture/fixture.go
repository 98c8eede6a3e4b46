// Package fixture loads the static JSON data source that seeds the three
// entity stores at startup.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/safetynet/alerts/internal/domain/firestation"
	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/domain/person"
)

// File is the decoded data source.
type File struct {
	Persons        []person.Person               `json:"persons"`
	Firestations   []firestation.Firestation     `json:"firestations"`
	Medicalrecords []medicalrecord.Medicalrecord `json:"medicalrecords"`
}

// Load reads and decodes the data source at path.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data source: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode data source %s: %w", path, err)
	}
	return &f, nil
}

// Validate reports every invalid record and every medical record that has
// no matching person. The fixture is still loadable when records fail
// validation; callers decide whether findings are fatal.
func (f *File) Validate() []error {
	var findings []error

	for i, p := range f.Persons {
		if err := p.Validate(); err != nil {
			findings = append(findings, fmt.Errorf("persons[%d] %s %s: %w", i, p.FirstName, p.LastName, err))
		}
	}
	for i, fs := range f.Firestations {
		if err := fs.Validate(); err != nil {
			findings = append(findings, fmt.Errorf("firestations[%d] %s: %w", i, fs.Address, err))
		}
	}

	known := make(map[string]struct{}, len(f.Persons))
	for _, p := range f.Persons {
		known[p.Key()] = struct{}{}
	}
	for i, m := range f.Medicalrecords {
		if err := m.Validate(); err != nil {
			findings = append(findings, fmt.Errorf("medicalrecords[%d] %s %s: %w", i, m.FirstName, m.LastName, err))
			continue
		}
		if _, ok := known[person.Key(m.LastName, m.FirstName)]; !ok {
			findings = append(findings, fmt.Errorf("medicalrecords[%d] %s %s: no matching person", i, m.FirstName, m.LastName))
		}
	}
	return findings
}
