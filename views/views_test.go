package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComma(t *testing.T) {
	assert.Equal(t, "0", Comma(0))
	assert.Equal(t, "999", Comma(999))
	assert.Equal(t, "1,000", Comma(1000))
	assert.Equal(t, "28,336", Comma(28336))
	assert.Equal(t, "1,234,567", Comma(1234567))
	assert.Equal(t, "-12,345", Comma(-12345))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "93.1%", Percent(0.931))
	assert.Equal(t, "100.0%", Percent(1))
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("nonexistent", nil)
	assert.ErrorContains(t, err, "unknown template")
}

func TestRenderTablePage(t *testing.T) {
	html, err := Render("table", TableData{
		Title:      "enrollment",
		Name:       "enrollment",
		Columns:    []string{"City", "Year"},
		Rows:       [][]string{{"Tacurong", "2020"}},
		Cities:     []string{"Tacurong"},
		Years:      []int{2020},
		City:       "Tacurong",
		Year:       2020,
		Total:      1,
		Page:       1,
		TotalPages: 1,
		PerPage:    25,
		CSVURL:     "/tables/enrollment/export.csv",
		XLSXURL:    "/tables/enrollment/export.xlsx",
	})
	require.NoError(t, err)

	assert.Contains(t, html, `id="enrollment_data_table"`)
	assert.Contains(t, html, "<td>Tacurong</td>")
	assert.Contains(t, html, `<option value="Tacurong" selected>`)
	assert.NotContains(t, html, "Previous")
}
