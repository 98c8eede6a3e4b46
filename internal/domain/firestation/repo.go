package firestation

// Repository is the firestation store contract, keyed by the
// (address, station) pair.
type Repository interface {
	FindAll() []Firestation
	Find(address string, station int) (Firestation, error)
	FindByAddress(address string) []Firestation
	FindByStation(station int) []Firestation
	Save(f Firestation) error
	Update(address string, station int, f Firestation) error
	Delete(address string, station int) error
}
