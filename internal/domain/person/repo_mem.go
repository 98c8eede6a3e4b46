package person

import (
	"github.com/safetynet/alerts/internal/platform/datastore"
)

type memRepo struct {
	coll *datastore.Collection[Person]
}

// NewRepository builds an in-memory person store seeded with the given
// records.
func NewRepository(seed []Person) Repository {
	coll := datastore.NewCollection(Person.Key)
	coll.Seed(seed)
	return &memRepo{coll: coll}
}

func (r *memRepo) FindAll() []Person {
	return r.coll.All()
}

func (r *memRepo) FindByName(lastName, firstName string) (Person, error) {
	return r.coll.Find(Key(lastName, firstName))
}

func (r *memRepo) FindByAddress(address string) []Person {
	return r.coll.Filter(func(p Person) bool { return p.Address == address })
}

func (r *memRepo) FindByCity(city string) []Person {
	return r.coll.Filter(func(p Person) bool { return p.City == city })
}

func (r *memRepo) ExistsByName(lastName, firstName string) bool {
	return r.coll.Exists(Key(lastName, firstName))
}

func (r *memRepo) Save(p Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.coll.Insert(p)
}

// Update replaces every field of the stored record. The natural key of the
// stored record is kept, matching the original update semantics.
func (r *memRepo) Update(lastName, firstName string, p Person) error {
	p.LastName = lastName
	p.FirstName = firstName
	if err := p.Validate(); err != nil {
		return err
	}
	return r.coll.Replace(Key(lastName, firstName), p)
}

func (r *memRepo) Delete(lastName, firstName string) error {
	return r.coll.Remove(Key(lastName, firstName))
}
