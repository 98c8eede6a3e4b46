package medicalrecord

import (
	"github.com/safetynet/alerts/internal/platform/datastore"
)

type memRepo struct {
	coll *datastore.Collection[Medicalrecord]
}

// NewRepository builds an in-memory medical-record store seeded with the
// given records.
func NewRepository(seed []Medicalrecord) Repository {
	coll := datastore.NewCollection(Medicalrecord.Key)
	coll.Seed(seed)
	return &memRepo{coll: coll}
}

func (r *memRepo) FindAll() []Medicalrecord {
	return r.coll.All()
}

func (r *memRepo) FindByName(lastName, firstName string) (Medicalrecord, error) {
	return r.coll.Find(Key(lastName, firstName))
}

func (r *memRepo) ExistsByName(lastName, firstName string) bool {
	return r.coll.Exists(Key(lastName, firstName))
}

func (r *memRepo) Save(m Medicalrecord) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return r.coll.Insert(m)
}

// Update replaces the stored record's fields; the natural key is kept.
func (r *memRepo) Update(lastName, firstName string, m Medicalrecord) error {
	m.LastName = lastName
	m.FirstName = firstName
	if err := m.Validate(); err != nil {
		return err
	}
	return r.coll.Replace(Key(lastName, firstName), m)
}

func (r *memRepo) Delete(lastName, firstName string) error {
	return r.coll.Remove(Key(lastName, firstName))
}
