package services

import (
	"sync"

	"github.com/mindanaodata/edu-portal/dataset"
)

// DatasetService owns the generated tables for the active seed. Generation is
// memoized: the first call computes all seven tables, every later call returns
// the same immutable collection. Changing the seed drops the cached run, which
// is the only invalidation there is.
type DatasetService struct {
	mu         sync.Mutex
	seed       int64
	data       *dataset.Data
	collection *dataset.Collection
}

// NewDatasetService creates a dataset service for the given seed. Nothing is
// generated until the first access.
func NewDatasetService(seed int64) *DatasetService {
	return &DatasetService{seed: seed}
}

// Seed returns the active seed.
func (s *DatasetService) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// SetSeed switches the active seed. A different seed invalidates the memoized
// run; the same seed is a no-op.
func (s *DatasetService) SetSeed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seed == s.seed {
		return
	}
	s.seed = seed
	s.data = nil
	s.collection = nil
}

// Data returns the typed tables for the active seed, generating them on first
// access.
func (s *DatasetService) Data() (*dataset.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataLocked()
}

func (s *DatasetService) dataLocked() (*dataset.Data, error) {
	if s.data == nil {
		d, err := dataset.GenerateAll(s.seed)
		if err != nil {
			return nil, err
		}
		s.data = d
		s.collection = d.Collection()
	}
	return s.data, nil
}

// Collection returns the generic table view for the active seed.
func (s *DatasetService) Collection() (*dataset.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.dataLocked(); err != nil {
		return nil, err
	}
	return s.collection, nil
}

// CitySummary is one city's card on the home page.
type CitySummary struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Enrollment  int     `json:"enrollment"`
	Schools     int     `json:"schools"`
	PovertyRate float64 `json:"poverty_rate"`
}

// Summary is the regional overview shown on the home page and served by the
// summary API.
type Summary struct {
	LatestYear      int           `json:"latest_year"`
	TotalEnrollment int           `json:"total_enrollment"`
	TotalSchools    int           `json:"total_schools"`
	TotalGraduates  int           `json:"total_graduates"`
	AverageScore    float64       `json:"average_score"`
	Cities          []CitySummary `json:"cities"`
}

// Summary computes the regional overview from the generated tables. Enrollment
// figures are the December snapshot of the latest covered year.
func (s *DatasetService) Summary() (*Summary, error) {
	d, err := s.Data()
	if err != nil {
		return nil, err
	}

	latest := dataset.EndYear
	sum := &Summary{LatestYear: latest}

	byCity := make(map[string]*CitySummary, len(dataset.Cities))
	for _, c := range dataset.Cities {
		cs := &CitySummary{
			Name:        c.Name,
			Slug:        dataset.CitySlug(c.Name),
			Schools:     c.SchoolsPublic + c.SchoolsPrivate,
			PovertyRate: c.PovertyRate,
		}
		byCity[c.Name] = cs
		sum.TotalSchools += cs.Schools
	}

	for _, row := range d.Enrollment {
		if row.Year == latest && row.Month == 12 {
			byCity[row.City].Enrollment = row.TotalEnrollment
			sum.TotalEnrollment += row.TotalEnrollment
		}
	}

	for _, row := range d.Graduates {
		if row.Year == latest {
			sum.TotalGraduates += row.Graduates
		}
	}

	var scoreTotal float64
	for _, row := range d.Performance {
		scoreTotal += row.AverageScore
	}
	if len(d.Performance) > 0 {
		sum.AverageScore = scoreTotal / float64(len(d.Performance))
	}

	// Preserve declaration order for the city cards.
	for _, name := range dataset.CityNames() {
		sum.Cities = append(sum.Cities, *byCity[name])
	}

	return sum, nil
}
