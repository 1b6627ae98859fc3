package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindanaodata/edu-portal/dataset"
)

func TestDatasetServiceMemoization(t *testing.T) {
	svc := NewDatasetService(42)

	first, err := svc.Data()
	require.NoError(t, err)
	second, err := svc.Data()
	require.NoError(t, err)
	require.Same(t, first, second, "repeat access must return the memoized run")

	coll1, err := svc.Collection()
	require.NoError(t, err)
	coll2, err := svc.Collection()
	require.NoError(t, err)
	require.Same(t, coll1, coll2)
}

func TestDatasetServiceSetSeed(t *testing.T) {
	svc := NewDatasetService(42)

	first, err := svc.Data()
	require.NoError(t, err)

	// Same seed keeps the memoized run.
	svc.SetSeed(42)
	same, err := svc.Data()
	require.NoError(t, err)
	require.Same(t, first, same)

	// A different seed drops it.
	svc.SetSeed(7)
	assert.Equal(t, int64(7), svc.Seed())
	other, err := svc.Data()
	require.NoError(t, err)
	require.NotSame(t, first, other)
	assert.Equal(t, int64(7), other.Seed)
	assert.NotEqual(t, first.Enrollment, other.Enrollment)
}

func TestDatasetServiceSummary(t *testing.T) {
	svc := NewDatasetService(42)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, dataset.EndYear, summary.LatestYear)
	assert.Greater(t, summary.TotalEnrollment, 0)
	assert.Greater(t, summary.TotalGraduates, 0)
	assert.Equal(t, 883, summary.TotalSchools)
	assert.GreaterOrEqual(t, summary.AverageScore, 40.0)
	assert.LessOrEqual(t, summary.AverageScore, 100.0)

	require.Len(t, summary.Cities, 5)
	assert.Equal(t, dataset.CityNames()[0], summary.Cities[0].Name)
	for _, city := range summary.Cities {
		assert.Greater(t, city.Enrollment, 0, "city %s", city.Name)
		assert.NotEmpty(t, city.Slug)
	}
}
