package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mindanaodata/edu-portal/model"
)

// Data holds one generation run: all seven tables, produced in a single pass
// and immutable afterwards.
type Data struct {
	Seed           int64
	Enrollment     []model.EnrollmentRow
	Graduates      []model.GraduateRow
	OSY            []model.OSYRow
	Poverty        []model.PovertyRow
	Infrastructure []model.InfrastructureRow
	Incidents      []model.IncidentRow
	Performance    []model.PerformanceRow
}

// GenerateAll produces the seven education tables for the given seed. It is a
// pure function of the seed and the constant tables: the same seed always
// yields identical output. The rand source is created once here and threaded
// through every builder; iteration order (cities in declaration order, years
// ascending, months ascending, categories in declaration order) is fixed.
func GenerateAll(seed int64) (*Data, error) {
	if err := validateConstants(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	d := &Data{Seed: seed}
	d.Enrollment = buildEnrollment(rng)
	d.Graduates = buildGraduates(rng)
	d.OSY = buildOSY(rng)
	d.Poverty = buildPoverty(rng)
	d.Infrastructure = buildInfrastructure(rng)
	d.Incidents = buildIncidents(rng)
	d.Performance = buildPerformance(rng)
	return d, nil
}

// jitter applies multiplicative gaussian noise and floors the result at zero.
func jitter(rng *rand.Rand, value, level float64) float64 {
	return math.Max(0, value+rng.NormFloat64()*level*value)
}

// between draws a uniform value from [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func quarterOf(month int) string {
	return fmt.Sprintf("Q%d", (month-1)/3+1)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// publicShare is the fraction of enrollment absorbed by public schools;
// poorer cities lean harder on the public system.
func publicShare(city CityProfile) float64 {
	return clamp(0.78+city.PovertyRate*0.3, 0, 0.95)
}

func buildEnrollment(rng *rand.Rand) []model.EnrollmentRow {
	rows := make([]model.EnrollmentRow, 0, len(Cities)*len(Years())*12)
	for _, city := range Cities {
		base := float64(city.BaseEnrollment)
		for _, year := range Years() {
			yf := enrollmentYearFactor[year]
			for month := 1; month <= 12; month++ {
				total := int(jitter(rng, base*yf*enrollmentMonthFactor[month], 0.03))
				// Gender fields come from two independent draws; they are not
				// forced to sum to the total.
				male := int(float64(total) * between(rng, 0.48, 0.50))
				female := total - int(float64(total)*between(rng, 0.48, 0.50))
				public := int(float64(total) * publicShare(city))

				rows = append(rows, model.EnrollmentRow{
					City:            city.Name,
					Year:            year,
					Month:           month,
					Quarter:         quarterOf(month),
					TotalEnrollment: total,
					Elementary:      int(float64(total) * 0.48),
					JuniorHigh:      int(float64(total) * 0.32),
					SeniorHigh:      int(float64(total) * 0.20),
					Male:            male,
					Female:          female,
					PublicSchools:   public,
					PrivateSchools:  total - public,
					EnrollmentRate:  round(between(rng, 0.91, 0.97), 3),
				})
			}
		}
	}
	return rows
}

func buildGraduates(rng *rand.Rand) []model.GraduateRow {
	rows := make([]model.GraduateRow, 0, len(Cities)*len(Years())*len(tracks)*len(schoolTypes))
	for _, city := range Cities {
		cohort := float64(city.BaseEnrollment) * 0.08
		public := publicShare(city)
		for _, year := range Years() {
			// K-12 transition: the first full senior-high cohorts only arrive
			// in 2022.
			yearScale := 1.0
			if year < 2022 {
				yearScale = 0.7
			}
			for _, track := range tracks {
				for _, schoolType := range schoolTypes {
					typeShare := public
					if schoolType == "Private" {
						typeShare = 1 - public
					}
					pool := cohort * yearScale * track.Share * typeShare
					gradRate := clamp(0.95-city.PovertyRate*0.15+between(rng, -0.02, 0.02), 0, 1)
					actual := int(pool * gradRate)

					rows = append(rows, model.GraduateRow{
						City:           city.Name,
						Year:           year,
						Track:          track.Name,
						SchoolType:     schoolType,
						Graduates:      actual,
						GraduationRate: round(gradRate, 3),
						ToCollege:      int(float64(actual) * between(rng, 0.55, 0.68)),
						ToEmployment:   int(float64(actual) * between(rng, 0.15, 0.25)),
						NEET:           int(float64(actual) * between(rng, 0.10, 0.20)),
					})
				}
			}
		}
	}
	return rows
}

func buildOSY(rng *rand.Rand) []model.OSYRow {
	rows := make([]model.OSYRow, 0, len(Cities)*len(Years())*len(ageGroups)*len(osyReasons))
	for _, city := range Cities {
		base := float64(city.Population) * 0.03 * (1 + city.PovertyRate)
		for _, year := range Years() {
			yf := osyYearFactor[year]
			for _, age := range ageGroups {
				for _, reason := range osyReasons {
					count := int(jitter(rng, base*yf*age.Share*reason.Share, 0.06))

					rows = append(rows, model.OSYRow{
						City:             city.Name,
						Year:             year,
						AgeGroup:         age.Name,
						Reason:           reason.Name,
						OSYCount:         count,
						ALSEnrolled:      int(float64(count) * between(rng, 0.18, 0.28)),
						ReturnedToSchool: int(float64(count) * between(rng, 0.05, 0.12)),
					})
				}
			}
		}
	}
	return rows
}

func buildPoverty(rng *rand.Rand) []model.PovertyRow {
	rows := make([]model.PovertyRow, 0)
	for _, city := range Cities {
		barangays := cityBarangays[city.Name]
		perBarangay := float64(city.BaseEnrollment) / float64(barangays)
		for _, year := range Years() {
			for b := 1; b <= barangays; b++ {
				students := int(jitter(rng, perBarangay, 0.08))
				barangayRate := clamp(city.PovertyRate+between(rng, -0.05, 0.05), 0, 1)

				rows = append(rows, model.PovertyRow{
					City:                city.Name,
					Year:                year,
					Barangay:            fmt.Sprintf("Barangay %d", b),
					Students:            students,
					FourPsBeneficiaries: int(float64(students) * barangayRate * 0.90),
					Scholarships:        int(float64(students) * between(rng, 0.12, 0.18)),
					FeedingProgram:      int(float64(students) * between(rng, 0.25, 0.35)),
					FinancialAssistance: int(float64(students) * between(rng, 0.15, 0.22)),
					PovertyRate:         round(barangayRate, 3),
				})
			}
		}
	}
	return rows
}

func buildInfrastructure(rng *rand.Rand) []model.InfrastructureRow {
	rows := make([]model.InfrastructureRow, 0)
	for _, city := range Cities {
		totalSchools := city.SchoolsPublic + city.SchoolsPrivate
		avgEnrollment := float64(city.BaseEnrollment) / float64(totalSchools)
		for _, year := range Years() {
			internetOdds := math.Min(0.85, 0.20+float64(year-StartYear)*0.06)
			for i := 1; i <= totalSchools; i++ {
				schoolType := "Public"
				typeCode := "PUB"
				if i > city.SchoolsPublic {
					schoolType = "Private"
					typeCode = "PRV"
				}

				enrollment := int(jitter(rng, avgEnrollment, 0.25))
				teachers := int(float64(enrollment) / between(rng, 28, 35))
				if teachers < 1 {
					teachers = 1
				}
				classrooms := int(jitter(rng, float64(enrollment)/40, 0.10))
				if classrooms < 1 {
					classrooms = 1
				}

				rows = append(rows, model.InfrastructureRow{
					City:        city.Name,
					Year:        year,
					SchoolID:    fmt.Sprintf("%s-%s-%04d", city.Code, typeCode, i),
					SchoolName:  fmt.Sprintf("%s %s School %d", city.Name, schoolType, i),
					SchoolType:  schoolType,
					Classrooms:  classrooms,
					Teachers:    teachers,
					Enrollment:  enrollment,
					HasInternet: yesNo(rng.Float64() < internetOdds),
					HasLibrary:  yesNo(rng.Float64() < 0.70),
					Condition:   buildingConditions[rng.Intn(len(buildingConditions))],
				})
			}
		}
	}
	return rows
}

func buildIncidents(rng *rand.Rand) []model.IncidentRow {
	rows := make([]model.IncidentRow, 0, len(Cities)*len(Years())*12*len(incidentTypes))
	for _, city := range Cities {
		students := float64(city.BaseEnrollment)
		for _, year := range Years() {
			// Distance learning kept campuses mostly empty in 2020-2021.
			damp := 1.0
			if year == 2020 || year == 2021 {
				damp = 0.6
			}
			for month := 1; month <= 12; month++ {
				for _, incident := range incidentTypes {
					annualRate := between(rng, incident.MinRate, incident.MaxRate)
					reported := int(jitter(rng, students*annualRate*damp/12, 0.10))
					resolved := int(float64(reported) * between(rng, 0.55, 0.75))
					resolutionRate := 0.0
					if reported > 0 {
						resolutionRate = round(float64(resolved)/float64(reported), 3)
					}

					rows = append(rows, model.IncidentRow{
						City:               city.Name,
						Year:               year,
						Month:              month,
						IncidentType:       incident.Name,
						ReportedCases:      reported,
						Resolved:           resolved,
						UnderInvestigation: int(float64(reported) * between(rng, 0.10, 0.20)),
						Dismissed:          int(float64(reported) * between(rng, 0.05, 0.15)),
						ResolutionRate:     resolutionRate,
					})
				}
			}
		}
	}
	return rows
}

func buildPerformance(rng *rand.Rand) []model.PerformanceRow {
	rows := make([]model.PerformanceRow, 0, len(Cities)*len(Years())*GradeLevels*len(subjects))
	for _, city := range Cities {
		base := 75 - city.PovertyRate*30
		cohort := float64(city.BaseEnrollment) / float64(GradeLevels)
		for _, year := range Years() {
			improvement := float64(year-StartYear) * 0.75
			for grade := 1; grade <= GradeLevels; grade++ {
				gradeAdjustment := -float64(grade-1) * 0.3
				for _, subject := range subjects {
					avg := clamp(base+improvement+gradeAdjustment+subject.Adjustment+between(rng, -3, 3), 40, 100)
					passing := clamp((avg-40)/60*between(rng, 0.90, 1.10), 0, 1)

					rows = append(rows, model.PerformanceRow{
						City:         city.Name,
						Year:         year,
						GradeLevel:   grade,
						Subject:      subject.Name,
						AverageScore: round(avg, 2),
						PassingRate:  round(passing, 3),
						Participants: int(jitter(rng, cohort, 0.05)),
					})
				}
			}
		}
	}
	return rows
}
