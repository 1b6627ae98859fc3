package dataset

import "github.com/mindanaodata/edu-portal/model"

// Stable table identifiers, in display order. These are the names the portal
// and its export files use; scrapers depend on them staying put.
const (
	TableEnrollment     = "enrollment"
	TableGraduates      = "graduates"
	TableOSY            = "osy"
	TablePoverty        = "poverty"
	TableInfrastructure = "infrastructure"
	TableIncidents      = "incidents"
	TablePerformance    = "performance"
)

// TableNames lists the seven tables in display order.
var TableNames = []string{
	TableEnrollment,
	TableGraduates,
	TableOSY,
	TablePoverty,
	TableInfrastructure,
	TableIncidents,
	TablePerformance,
}

// Table is the generic, render-ready view of one generated table. Rows are
// canonical generated records: filtering produces a new Table, never mutation.
type Table struct {
	Name    string
	Columns []string
	Rows    []model.Row
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Filter returns a new Table holding the rows matching the given city and
// year. Empty city / zero year match everything. The receiver is unchanged.
func (t *Table) Filter(city string, year int) *Table {
	if city == "" && year == 0 {
		return &Table{Name: t.Name, Columns: t.Columns, Rows: t.Rows}
	}
	filtered := make([]model.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Matches(city, year) {
			filtered = append(filtered, row)
		}
	}
	return &Table{Name: t.Name, Columns: t.Columns, Rows: filtered}
}

// Page returns the rows for a 1-based page of the given size. Out-of-range
// pages return an empty slice.
func (t *Table) Page(page, perPage int) []model.Row {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(t.Rows) {
		return nil
	}
	end := start + perPage
	if end > len(t.Rows) {
		end = len(t.Rows)
	}
	return t.Rows[start:end]
}

// Collection is the generic view over one generation run, keyed by the stable
// table names.
type Collection struct {
	Seed   int64
	tables map[string]*Table
}

// Table returns the named table.
func (c *Collection) Table(name string) (*Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// Tables returns all tables in display order.
func (c *Collection) Tables() []*Table {
	out := make([]*Table, 0, len(TableNames))
	for _, name := range TableNames {
		out = append(out, c.tables[name])
	}
	return out
}

var (
	enrollmentColumns = []string{
		"City", "Year", "Month", "Quarter", "Total_Enrollment",
		"Elementary", "Junior_High", "Senior_High", "Male", "Female",
		"Public_Schools", "Private_Schools", "Enrollment_Rate",
	}
	graduateColumns = []string{
		"City", "Year", "Track", "School_Type", "Graduates",
		"Graduation_Rate", "To_College", "To_Employment", "NEET",
	}
	osyColumns = []string{
		"City", "Year", "Age_Group", "Reason",
		"OSY_Count", "ALS_Enrolled", "Returned_To_School",
	}
	povertyColumns = []string{
		"City", "Year", "Barangay", "Students", "FourPs_Beneficiaries",
		"Scholarship_Recipients", "Feeding_Program", "Financial_Assistance",
		"Poverty_Rate",
	}
	infrastructureColumns = []string{
		"City", "Year", "School_ID", "School_Name", "School_Type",
		"Classrooms", "Teachers", "Enrollment", "Has_Internet", "Has_Library",
		"Building_Condition",
	}
	incidentColumns = []string{
		"City", "Year", "Month", "Incident_Type", "Reported_Cases",
		"Resolved", "Under_Investigation", "Dismissed", "Resolution_Rate",
	}
	performanceColumns = []string{
		"City", "Year", "Grade_Level", "Subject",
		"Average_Score", "Passing_Rate", "Participants",
	}
)

func wrapRows[T model.Row](rows []T) []model.Row {
	out := make([]model.Row, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// Collection builds the generic table view over the typed data.
func (d *Data) Collection() *Collection {
	return &Collection{
		Seed: d.Seed,
		tables: map[string]*Table{
			TableEnrollment:     {Name: TableEnrollment, Columns: enrollmentColumns, Rows: wrapRows(d.Enrollment)},
			TableGraduates:      {Name: TableGraduates, Columns: graduateColumns, Rows: wrapRows(d.Graduates)},
			TableOSY:            {Name: TableOSY, Columns: osyColumns, Rows: wrapRows(d.OSY)},
			TablePoverty:        {Name: TablePoverty, Columns: povertyColumns, Rows: wrapRows(d.Poverty)},
			TableInfrastructure: {Name: TableInfrastructure, Columns: infrastructureColumns, Rows: wrapRows(d.Infrastructure)},
			TableIncidents:      {Name: TableIncidents, Columns: incidentColumns, Rows: wrapRows(d.Incidents)},
			TablePerformance:    {Name: TablePerformance, Columns: performanceColumns, Rows: wrapRows(d.Performance)},
		},
	}
}
