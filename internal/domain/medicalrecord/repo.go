package medicalrecord

// Repository is the medical-record store contract, keyed by the
// (lastName, firstName) natural key.
type Repository interface {
	FindAll() []Medicalrecord
	FindByName(lastName, firstName string) (Medicalrecord, error)
	ExistsByName(lastName, firstName string) bool
	Save(m Medicalrecord) error
	Update(lastName, firstName string, m Medicalrecord) error
	Delete(lastName, firstName string) error
}
