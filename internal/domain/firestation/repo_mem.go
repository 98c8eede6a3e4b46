package firestation

import (
	"github.com/safetynet/alerts/internal/platform/datastore"
)

type memRepo struct {
	coll *datastore.Collection[Firestation]
}

// NewRepository builds an in-memory firestation store seeded with the given
// mappings.
func NewRepository(seed []Firestation) Repository {
	coll := datastore.NewCollection(Firestation.Key)
	coll.Seed(seed)
	return &memRepo{coll: coll}
}

func (r *memRepo) FindAll() []Firestation {
	return r.coll.All()
}

func (r *memRepo) Find(address string, station int) (Firestation, error) {
	return r.coll.Find(Key(address, station))
}

func (r *memRepo) FindByAddress(address string) []Firestation {
	return r.coll.Filter(func(f Firestation) bool { return f.Address == address })
}

func (r *memRepo) FindByStation(station int) []Firestation {
	return r.coll.Filter(func(f Firestation) bool { return f.Station == station })
}

func (r *memRepo) Save(f Firestation) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return r.coll.Insert(f)
}

// Update rebinds the mapping stored under (address, station) to the new
// pair carried by f. Rebinding onto a pair held by another mapping is
// rejected by the collection to keep keys unique.
func (r *memRepo) Update(address string, station int, f Firestation) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return r.coll.Replace(Key(address, station), f)
}

func (r *memRepo) Delete(address string, station int) error {
	return r.coll.Remove(Key(address, station))
}
