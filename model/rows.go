package model

import "strconv"

// Row is a single record of a generated table. Values returns the fields as
// strings in the table's declared column order, ready for HTML and CSV
// rendering; the JSON tags on each struct carry the same column names.
type Row interface {
	Values() []string
	Matches(city string, year int) bool
}

func itoa(n int) string { return strconv.Itoa(n) }

// rate formats probability-like fields (3 decimals, matching the portal's CSVs)
func rate(f float64) string { return strconv.FormatFloat(f, 'f', 3, 64) }

// score formats test-score fields (2 decimals)
func score(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func matches(rowCity string, rowYear int, city string, year int) bool {
	if city != "" && rowCity != city {
		return false
	}
	if year != 0 && rowYear != year {
		return false
	}
	return true
}

// EnrollmentRow is one city/year/month enrollment record.
type EnrollmentRow struct {
	City            string  `json:"City"`
	Year            int     `json:"Year"`
	Month           int     `json:"Month"`
	Quarter         string  `json:"Quarter"`
	TotalEnrollment int     `json:"Total_Enrollment"`
	Elementary      int     `json:"Elementary"`
	JuniorHigh      int     `json:"Junior_High"`
	SeniorHigh      int     `json:"Senior_High"`
	Male            int     `json:"Male"`
	Female          int     `json:"Female"`
	PublicSchools   int     `json:"Public_Schools"`
	PrivateSchools  int     `json:"Private_Schools"`
	EnrollmentRate  float64 `json:"Enrollment_Rate"`
}

func (r EnrollmentRow) Values() []string {
	return []string{
		r.City, itoa(r.Year), itoa(r.Month), r.Quarter, itoa(r.TotalEnrollment),
		itoa(r.Elementary), itoa(r.JuniorHigh), itoa(r.SeniorHigh),
		itoa(r.Male), itoa(r.Female), itoa(r.PublicSchools), itoa(r.PrivateSchools),
		rate(r.EnrollmentRate),
	}
}

func (r EnrollmentRow) Matches(city string, year int) bool {
	return matches(r.City, r.Year, city, year)
}

// GraduateRow is one city/year/track/school-type graduation record.
type GraduateRow struct {
	City           string  `json:"City"`
	Year           int     `json:"Year"`
	Track          string  `json:"Track"`
	SchoolType     string  `json:"School_Type"`
	Graduates      int     `json:"Graduates"`
	GraduationRate float64 `json:"Graduation_Rate"`
	ToCollege      int     `json:"To_College"`
	ToEmployment   int     `json:"To_Employment"`
	NEET           int     `json:"NEET"`
}

func (r GraduateRow) Values() []string {
	return []string{
		r.City, itoa(r.Year), r.Track, r.SchoolType, itoa(r.Graduates),
		rate(r.GraduationRate), itoa(r.ToCollege), itoa(r.ToEmployment), itoa(r.NEET),
	}
}

func (r GraduateRow) Matches(city string, year int) bool {
	return matches(r.City, r.Year, city, year)
}

// OSYRow is one city/year/age-group/reason out-of-school-youth record.
type OSYRow struct {
	City             string `json:"City"`
	Year             int    `json:"Year"`
	AgeGroup         string `json:"Age_Group"`
	Reason           string `json:"Reason"`
	OSYCount         int    `json:"OSY_Count"`
	ALSEnrolled      int    `json:"ALS_Enrolled"`
	ReturnedToSchool int    `json:"Returned_To_School"`
}

func (r OSYRow) Values() []string {
	return []string{
		r.City, itoa(r.Year), r.AgeGroup, r.Reason,
		itoa(r.OSYCount), itoa(r.ALSEnrolled), itoa(r.ReturnedToSchool),
	}
}

func (r OSYRow) Matches(city string, year int) bool {
	return matches(r.City, r.Year, city, year)
}

// PovertyRow is one city/year/barangay education-poverty record.
type PovertyRow struct {
	City                string  `json:"City"`
	Year                int     `json:"Year"`
	Barangay            string  `json:"Barangay"`
	Students            int     `json:"Students"`
	FourPsBeneficiaries int     `json:"FourPs_Beneficiaries"`
	Scholarships        int     `json:"Scholarship_Recipients"`
	FeedingProgram      int     `json:"Feeding_Program"`
	FinancialAssistance int     `json:"Financial_Assistance"`
	PovertyRate         float64 `json:"Poverty_Rate"`
}

func (r PovertyRow) Values() []string {
	return []string{
		r.City, itoa(r.Year), r.Barangay, itoa(r.Students),
		itoa(r.FourPsBeneficiaries), itoa(r.Scholarships), itoa(r.FeedingProgram),
		itoa(r.FinancialAssistance), rate(r.PovertyRate),
	}
}

func (r PovertyRow) Matches(city string, year int) bool {
	return matches(r.City, r.Year, city, year)
}

// InfrastructureRow is one synthetic per-school record.
type InfrastructureRow struct {
	City        string `json:"City"`
	Year        int    `json:"Year"`
	SchoolID    string `json:"School_ID"`
	SchoolName  string `json:"School_Name"`
	SchoolType  string `json:"School_Type"`
	Classrooms  int    `json:"Classrooms"`
	Teachers    int    `json:"Teachers"`
	Enrollment  int    `json:"Enrollment"`
	HasInternet string `json:"Has_Internet"`
	HasLibrary  string `json:"Has_Library"`
	Condition   string `json:"Building_Condition"`
}

func (r InfrastructureRow) Values() []string {
	return []string{
		r.City, itoa(r.Year), r.SchoolID, r.SchoolName, r.SchoolType,
		itoa(r.Classrooms), itoa(r.Teachers), itoa(r.Enrollment),
		r.HasInternet, r.HasLibrary, r.Condition,
	}
}

func (r InfrastructureRow) Matches(city string, year int) bool {
	return matches(r.City, r.Year, city, year)
}

// IncidentRow is one city/year/month/incident-type record with its
// resolution-status breakdown.
type IncidentRow struct {
	City               string  `json:"City"`
	Year               int     `json:"Year"`
	Month              int     `json:"Month"`
	IncidentType       string  `json:"Incident_Type"`
	ReportedCases      int     `json:"Reported_Cases"`
	Resolved           int     `json:"Resolved"`
	UnderInvestigation int     `json:"Under_Investigation"`
	Dismissed          int     `json:"Dismissed"`
	ResolutionRate     float64 `json:"Resolution_Rate"`
}

func (r IncidentRow) Values() []string {
	return []string{
		r.City, itoa(r.Year), itoa(r.Month), r.IncidentType, itoa(r.ReportedCases),
		itoa(r.Resolved), itoa(r.UnderInvestigation), itoa(r.Dismissed),
		rate(r.ResolutionRate),
	}
}

func (r IncidentRow) Matches(city string, year int) bool {
	return matches(r.City, r.Year, city, year)
}

// PerformanceRow is one city/year/grade/subject achievement record.
type PerformanceRow struct {
	City         string  `json:"City"`
	Year         int     `json:"Year"`
	GradeLevel   int     `json:"Grade_Level"`
	Subject      string  `json:"Subject"`
	AverageScore float64 `json:"Average_Score"`
	PassingRate  float64 `json:"Passing_Rate"`
	Participants int     `json:"Participants"`
}

func (r PerformanceRow) Values() []string {
	return []string{
		r.City, itoa(r.Year), itoa(r.GradeLevel), r.Subject,
		score(r.AverageScore), rate(r.PassingRate), itoa(r.Participants),
	}
}

func (r PerformanceRow) Matches(city string, year int) bool {
	return matches(r.City, r.Year, city, year)
}
