package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentRowValues(t *testing.T) {
	row := EnrollmentRow{
		City: "Tacurong", Year: 2020, Month: 7, Quarter: "Q3",
		TotalEnrollment: 28336, Elementary: 13601, JuniorHigh: 9067, SeniorHigh: 5667,
		Male: 13885, Female: 14451, PublicSchools: 24650, PrivateSchools: 3686,
		EnrollmentRate: 0.934,
	}

	values := row.Values()
	assert.Equal(t, []string{
		"Tacurong", "2020", "7", "Q3", "28336",
		"13601", "9067", "5667", "13885", "14451",
		"24650", "3686", "0.934",
	}, values)
}

func TestPerformanceRowValues(t *testing.T) {
	row := PerformanceRow{
		City: "Isulan", Year: 2024, GradeLevel: 6, Subject: "Mathematics",
		AverageScore: 71.25, PassingRate: 0.521, Participants: 1987,
	}

	assert.Equal(t, []string{"Isulan", "2024", "6", "Mathematics", "71.25", "0.521", "1987"}, row.Values())
}

func TestRowMatches(t *testing.T) {
	row := OSYRow{City: "Kidapawan", Year: 2019}

	assert.True(t, row.Matches("", 0))
	assert.True(t, row.Matches("Kidapawan", 0))
	assert.True(t, row.Matches("", 2019))
	assert.True(t, row.Matches("Kidapawan", 2019))
	assert.False(t, row.Matches("Isulan", 2019))
	assert.False(t, row.Matches("Kidapawan", 2020))
}
