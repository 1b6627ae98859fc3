package dataset

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CityProfile holds the hand-tuned constants a city's synthetic figures are
// derived from. The values mirror the published 2020 census estimates for the
// five covered cities.
type CityProfile struct {
	Name           string  `validate:"required"`
	Code           string  `validate:"required,len=3,uppercase"`
	Population     int     `validate:"gt=0"`
	SchoolsPublic  int     `validate:"gt=0"`
	SchoolsPrivate int     `validate:"gte=0"`
	BaseEnrollment int     `validate:"gt=0"`
	PovertyRate    float64 `validate:"gt=0,lt=1"`
}

// Cities in declaration order. Generation iterates this slice directly, so the
// order is part of the determinism contract.
var Cities = []CityProfile{
	{Name: "General Santos", Code: "GSC", Population: 697315, SchoolsPublic: 245, SchoolsPrivate: 89, BaseEnrollment: 185000, PovertyRate: 0.24},
	{Name: "Tacurong", Code: "TAC", Population: 109319, SchoolsPublic: 78, SchoolsPrivate: 23, BaseEnrollment: 28000, PovertyRate: 0.31},
	{Name: "Isulan", Code: "ISU", Population: 97490, SchoolsPublic: 65, SchoolsPrivate: 18, BaseEnrollment: 24000, PovertyRate: 0.29},
	{Name: "Koronadal", Code: "KOR", Population: 184573, SchoolsPublic: 142, SchoolsPrivate: 54, BaseEnrollment: 48000, PovertyRate: 0.26},
	{Name: "Kidapawan", Code: "KID", Population: 160791, SchoolsPublic: 128, SchoolsPrivate: 41, BaseEnrollment: 42000, PovertyRate: 0.28},
}

// Covered school years, inclusive.
const (
	StartYear = 2015
	EndYear   = 2024
)

// Years returns the covered years in ascending order.
func Years() []int {
	years := make([]int, 0, EndYear-StartYear+1)
	for y := StartYear; y <= EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// Barangay counts per city, used as the sub-city grouping for poverty data.
// Kept as a separate lookup so a profile added without a barangay entry fails
// validation instead of generating an empty slice of rows.
var cityBarangays = map[string]int{
	"General Santos": 26,
	"Tacurong":       20,
	"Isulan":         17,
	"Koronadal":      27,
	"Kidapawan":      40,
}

// Enrollment shape factor per year: slow pre-pandemic growth, the 2020-2021
// dip, then the rebound.
var enrollmentYearFactor = map[int]float64{
	2015: 0.88, 2016: 0.90, 2017: 0.93, 2018: 0.96, 2019: 1.00,
	2020: 0.92, 2021: 0.88, 2022: 0.95, 2023: 0.98, 2024: 1.02,
}

// Within-year enrollment shape: the school year opens in June, peaks through
// July-August, and thins out over the April-May break.
var enrollmentMonthFactor = map[int]float64{
	1: 0.98, 2: 0.97, 3: 0.96, 4: 0.85, 5: 0.88, 6: 1.05,
	7: 1.10, 8: 1.08, 9: 1.02, 10: 1.00, 11: 0.99, 12: 0.95,
}

// Out-of-school-youth shape factor per year; the pandemic years push counts up.
var osyYearFactor = map[int]float64{
	2015: 1.08, 2016: 1.06, 2017: 1.04, 2018: 1.02, 2019: 1.00,
	2020: 1.15, 2021: 1.22, 2022: 1.14, 2023: 1.06, 2024: 1.00,
}

// categoryShare pairs a category label with its share of the parent total.
type categoryShare struct {
	Name  string
	Share float64
}

// Senior-high specialization tracks and their graduate shares.
var tracks = []categoryShare{
	{"STEM", 0.22},
	{"ABM", 0.18},
	{"HUMSS", 0.25},
	{"TVL", 0.20},
	{"GAS", 0.15},
}

var schoolTypes = []string{"Public", "Private"}

// OSY age groups.
var ageGroups = []categoryShare{
	{"6-11", 0.15},
	{"12-15", 0.28},
	{"16-18", 0.35},
	{"19-24", 0.22},
}

// Reasons for being out of school.
var osyReasons = []categoryShare{
	{"Financial", 0.42},
	{"Family Obligations", 0.23},
	{"Distance to School", 0.12},
	{"Lack of Interest", 0.15},
	{"Health Issues", 0.08},
}

// incidentProfile gives the per-student annual rate band for one incident type.
type incidentProfile struct {
	Name    string
	MinRate float64
	MaxRate float64
}

var incidentTypes = []incidentProfile{
	{"Bullying", 0.008, 0.015},
	{"Fighting", 0.004, 0.009},
	{"Truancy", 0.012, 0.025},
	{"Substance-Related", 0.002, 0.006},
	{"Vandalism", 0.003, 0.007},
}

// subjectProfile gives the constant score offset for one NAT subject area.
type subjectProfile struct {
	Name       string
	Adjustment float64
}

var subjects = []subjectProfile{
	{"Mathematics", -2.5},
	{"Science", -1.0},
	{"English", 1.5},
	{"Filipino", 2.0},
	{"Araling Panlipunan", 1.0},
	{"MAPEH", 4.0},
}

// GradeLevels is the number of grade levels covered by performance data.
const GradeLevels = 12

var buildingConditions = []string{"Good", "Fair", "Needs Repair"}

// CityNames returns the covered city names in declaration order.
func CityNames() []string {
	names := make([]string, len(Cities))
	for i, c := range Cities {
		names[i] = c.Name
	}
	return names
}

// CityByName looks up a city profile by its display name.
func CityByName(name string) (CityProfile, bool) {
	for _, c := range Cities {
		if c.Name == name {
			return c, true
		}
	}
	return CityProfile{}, false
}

// CitySlug converts a city name to its URL form ("General Santos" ->
// "general-santos").
func CitySlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// CityBySlug looks up a city profile by its URL slug.
func CityBySlug(slug string) (CityProfile, bool) {
	for _, c := range Cities {
		if CitySlug(c.Name) == slug {
			return c, true
		}
	}
	return CityProfile{}, false
}

// validateConstants checks the hardcoded tables before any generation run.
// A malformed profile or a missing lookup entry is a configuration error and
// aborts generation up front.
func validateConstants() error {
	return validateTables(Cities, cityBarangays, enrollmentYearFactor, osyYearFactor, enrollmentMonthFactor)
}

func validateTables(
	profiles []CityProfile,
	barangays map[string]int,
	enrollYears map[int]float64,
	osyYears map[int]float64,
	months map[int]float64,
) error {
	if len(profiles) == 0 {
		return fmt.Errorf("dataset: no city profiles configured")
	}

	v := validator.New()
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("dataset: invalid city profile %q: %w", p.Name, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("dataset: duplicate city profile %q", p.Name)
		}
		seen[p.Name] = true

		n, ok := barangays[p.Name]
		if !ok {
			return fmt.Errorf("dataset: city %q missing from barangay lookup", p.Name)
		}
		if n <= 0 {
			return fmt.Errorf("dataset: city %q has non-positive barangay count %d", p.Name, n)
		}
	}

	for _, y := range Years() {
		if _, ok := enrollYears[y]; !ok {
			return fmt.Errorf("dataset: enrollment year factor missing for year %d", y)
		}
		if _, ok := osyYears[y]; !ok {
			return fmt.Errorf("dataset: OSY year factor missing for year %d", y)
		}
	}

	for m := 1; m <= 12; m++ {
		if _, ok := months[m]; !ok {
			return fmt.Errorf("dataset: enrollment month factor missing for month %d", m)
		}
	}

	return nil
}
