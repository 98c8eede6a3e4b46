package medicalrecord

import (
	"fmt"
	"strings"
	"time"

	"github.com/safetynet/alerts/internal/platform/datastore"
)

// DateLayout is the wire format for birthdates in the data source and the
// REST payloads.
const DateLayout = "01/02/2006"

// Date is a calendar date marshalled as MM/dd/yyyy.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("parse birthdate %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// YearsUntil returns the number of whole calendar years between d and now.
// A birthday that has not yet occurred this year does not count.
func (d Date) YearsUntil(now time.Time) int {
	years := now.Year() - d.Year()
	if now.Month() < d.Month() || (now.Month() == d.Month() && now.Day() < d.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// Medicalrecord holds the medical profile of a person, keyed by the same
// (LastName, FirstName) natural key. Medication entries are dose-qualified
// strings ("med:200mg") and opaque to this system.
type Medicalrecord struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Birthdate   Date     `json:"birthdate"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// Key returns the natural key for m.
func (m Medicalrecord) Key() string {
	return Key(m.LastName, m.FirstName)
}

// Key builds the store key for a (lastName, firstName) pair.
func Key(lastName, firstName string) string {
	return lastName + "\x00" + firstName
}

// Validate checks that the name fields and birthdate are present.
func (m Medicalrecord) Validate() error {
	if strings.TrimSpace(m.FirstName) == "" ||
		strings.TrimSpace(m.LastName) == "" ||
		m.Birthdate.IsZero() {
		return datastore.ErrInvalidInput
	}
	return nil
}
