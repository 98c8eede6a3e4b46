package person

// Repository is the person store contract. Implementations must keep the
// (lastName, firstName) natural key unique and preserve insertion order.
type Repository interface {
	FindAll() []Person
	FindByName(lastName, firstName string) (Person, error)
	FindByAddress(address string) []Person
	FindByCity(city string) []Person
	ExistsByName(lastName, firstName string) bool
	Save(p Person) error
	Update(lastName, firstName string, p Person) error
	Delete(lastName, firstName string) error
}
