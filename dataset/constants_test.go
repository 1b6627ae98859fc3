package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConstants(t *testing.T) {
	require.NoError(t, validateConstants())
}

func TestValidateTablesRejectsBrokenConfig(t *testing.T) {
	goodBarangays := map[string]int{"Tacurong": 20}
	goodProfiles := []CityProfile{
		{Name: "Tacurong", Code: "TAC", Population: 109319, SchoolsPublic: 78, SchoolsPrivate: 23, BaseEnrollment: 28000, PovertyRate: 0.31},
	}

	fullYears := func() map[int]float64 {
		m := make(map[int]float64)
		for _, y := range Years() {
			m[y] = 1.0
		}
		return m
	}
	fullMonths := func() map[int]float64 {
		m := make(map[int]float64)
		for i := 1; i <= 12; i++ {
			m[i] = 1.0
		}
		return m
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateTables(goodProfiles, goodBarangays, fullYears(), fullYears(), fullMonths()))
	})

	t.Run("no profiles", func(t *testing.T) {
		err := validateTables(nil, goodBarangays, fullYears(), fullYears(), fullMonths())
		assert.ErrorContains(t, err, "no city profiles")
	})

	t.Run("invalid profile", func(t *testing.T) {
		bad := []CityProfile{{Name: "Tacurong", Code: "tac", Population: 109319, SchoolsPublic: 78, SchoolsPrivate: 23, BaseEnrollment: 28000, PovertyRate: 0.31}}
		err := validateTables(bad, goodBarangays, fullYears(), fullYears(), fullMonths())
		assert.ErrorContains(t, err, "invalid city profile")
	})

	t.Run("duplicate profile", func(t *testing.T) {
		dup := append(append([]CityProfile{}, goodProfiles...), goodProfiles...)
		err := validateTables(dup, goodBarangays, fullYears(), fullYears(), fullMonths())
		assert.ErrorContains(t, err, "duplicate city profile")
	})

	t.Run("missing barangay entry", func(t *testing.T) {
		err := validateTables(goodProfiles, map[string]int{}, fullYears(), fullYears(), fullMonths())
		assert.ErrorContains(t, err, "missing from barangay lookup")
	})

	t.Run("missing year factor", func(t *testing.T) {
		years := fullYears()
		delete(years, 2020)
		err := validateTables(goodProfiles, goodBarangays, years, fullYears(), fullMonths())
		assert.ErrorContains(t, err, "enrollment year factor missing for year 2020")
	})

	t.Run("missing month factor", func(t *testing.T) {
		months := fullMonths()
		delete(months, 7)
		err := validateTables(goodProfiles, goodBarangays, fullYears(), fullYears(), months)
		assert.ErrorContains(t, err, "month factor missing for month 7")
	})
}

func TestCityLookups(t *testing.T) {
	assert.Equal(t, []string{"General Santos", "Tacurong", "Isulan", "Koronadal", "Kidapawan"}, CityNames())

	city, ok := CityByName("Tacurong")
	require.True(t, ok)
	assert.Equal(t, "TAC", city.Code)

	_, ok = CityByName("Davao")
	assert.False(t, ok)

	assert.Equal(t, "general-santos", CitySlug("General Santos"))

	bySlug, ok := CityBySlug("general-santos")
	require.True(t, ok)
	assert.Equal(t, "General Santos", bySlug.Name)

	_, ok = CityBySlug("davao")
	assert.False(t, ok)
}
