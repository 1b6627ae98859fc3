package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionTableOrder(t *testing.T) {
	d, err := GenerateAll(42)
	require.NoError(t, err)

	coll := d.Collection()
	assert.Equal(t, int64(42), coll.Seed)

	names := make([]string, 0, len(TableNames))
	for _, table := range coll.Tables() {
		names = append(names, table.Name)
	}
	assert.Equal(t, TableNames, names)

	_, ok := coll.Table("attendance")
	assert.False(t, ok)
}

func TestCollectionSchemaMatchesColumns(t *testing.T) {
	d, err := GenerateAll(42)
	require.NoError(t, err)

	for _, table := range d.Collection().Tables() {
		require.NotEmpty(t, table.Rows, "table %s is empty", table.Name)
		for _, row := range table.Rows {
			require.Len(t, row.Values(), len(table.Columns),
				"table %s row width does not match its columns", table.Name)
		}
	}
}

func TestTableFilter(t *testing.T) {
	d, err := GenerateAll(42)
	require.NoError(t, err)

	coll := d.Collection()
	enrollment, ok := coll.Table(TableEnrollment)
	require.True(t, ok)

	before := enrollment.Len()

	filtered := enrollment.Filter("Tacurong", 2020)
	assert.Equal(t, 12, filtered.Len(), "one enrollment row per month")
	assert.Equal(t, before, enrollment.Len(), "filtering must not mutate the source")

	cityOnly := enrollment.Filter("Tacurong", 0)
	assert.Equal(t, 12*len(Years()), cityOnly.Len())

	yearOnly := enrollment.Filter("", 2020)
	assert.Equal(t, 12*len(Cities), yearOnly.Len())

	all := enrollment.Filter("", 0)
	assert.Equal(t, before, all.Len())

	none := enrollment.Filter("Davao", 0)
	assert.Equal(t, 0, none.Len())
}

func TestTablePage(t *testing.T) {
	d, err := GenerateAll(42)
	require.NoError(t, err)

	enrollment, ok := d.Collection().Table(TableEnrollment)
	require.True(t, ok)

	first := enrollment.Page(1, 25)
	assert.Len(t, first, 25)

	second := enrollment.Page(2, 25)
	assert.Len(t, second, 25)
	assert.NotEqual(t, first[0], second[0])

	last := enrollment.Page(24, 25)
	assert.Len(t, last, 25)

	assert.Empty(t, enrollment.Page(25, 25), "past the end")
	assert.Empty(t, enrollment.Page(0, 25), "pages are 1-based")
	assert.Empty(t, enrollment.Page(1, 0))
}
