package person

import (
	"strings"

	"github.com/safetynet/alerts/internal/platform/datastore"
)

// Person is a resident known to the alerting service. The (LastName,
// FirstName) pair is the natural key; matching is exact and case-sensitive.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       int    `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// Key returns the natural key for p.
func (p Person) Key() string {
	return Key(p.LastName, p.FirstName)
}

// Key builds the store key for a (lastName, firstName) pair.
func Key(lastName, firstName string) string {
	return lastName + "\x00" + firstName
}

// Validate checks that all required fields are present.
func (p Person) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" ||
		strings.TrimSpace(p.LastName) == "" ||
		strings.TrimSpace(p.Address) == "" ||
		strings.TrimSpace(p.City) == "" ||
		strings.TrimSpace(p.Phone) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		p.Zip < 0 {
		return datastore.ErrInvalidInput
	}
	return nil
}
