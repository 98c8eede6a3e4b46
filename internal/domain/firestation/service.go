package firestation

// Service exposes the firestation directory.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListFirestations() []Firestation {
	return s.repo.FindAll()
}

func (s *Service) GetFirestation(address string, station int) (Firestation, error) {
	return s.repo.Find(address, station)
}

func (s *Service) FirestationsByAddress(address string) []Firestation {
	return s.repo.FindByAddress(address)
}

func (s *Service) FirestationsByStation(station int) []Firestation {
	return s.repo.FindByStation(station)
}

func (s *Service) CreateFirestation(f Firestation) error {
	return s.repo.Save(f)
}

func (s *Service) UpdateFirestation(address string, station int, f Firestation) error {
	return s.repo.Update(address, station, f)
}

func (s *Service) DeleteFirestation(address string, station int) error {
	return s.repo.Delete(address, station)
}
