// Package alert composes the person, firestation and medical-record
// directories into the alerting queries: station coverage, child alert,
// phone alert, fire alert, person info, community email and flood alert.
//
// Every query is computed fresh from the current store contents; the stores
// are small and single-process, and a cache would serve stale data to
// responders.
package alert

// CoveredPerson is the per-person projection of a station-coverage query.
type CoveredPerson struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// StationCoverage lists everyone covered by a station with the minor/major
// split. Persons without a resolvable medical record appear in the list but
// are counted in neither bucket.
type StationCoverage struct {
	Minors  int             `json:"minors"`
	Majors  int             `json:"majors"`
	Persons []CoveredPerson `json:"persons"`
}

// HouseholdMember is the per-person projection of a child-alert query.
type HouseholdMember struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
}

// ChildAlert partitions the residents of one address into children
// (age 18 or below) and the remaining household members. Both lists are
// empty when no child lives at the address.
type ChildAlert struct {
	Children []HouseholdMember `json:"children"`
	Members  []HouseholdMember `json:"members"`
}

// MedicalPerson is the medically annotated projection shared by the fire
// and flood queries. Age is omitted when the person has no medical record.
type MedicalPerson struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Phone       string   `json:"phone"`
	Age         *int     `json:"age,omitempty"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// FireAlert lists the stations covering an address and its residents. The
// station set may be empty while residents are still listed.
type FireAlert struct {
	Address  string          `json:"address"`
	Stations []int           `json:"stationNumber"`
	Persons  []MedicalPerson `json:"persons"`
}

// PersonInfo is the detailed single-person projection.
type PersonInfo struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Address     string   `json:"address"`
	Age         *int     `json:"age,omitempty"`
	Email       string   `json:"email"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}
