package table_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindanaodata/edu-portal/router"
	"github.com/mindanaodata/edu-portal/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	datasets := services.NewDatasetService(42)
	_, err := datasets.Collection()
	require.NoError(t, err)

	exports := services.NewExportService(nil, time.Hour)

	app := fiber.New()
	router.SetupRoutes(app, datasets, exports)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestAPIListTables(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/api/v1/tables")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    []struct {
			Name    string   `json:"name"`
			Rows    int      `json:"rows"`
			Columns []string `json:"columns"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.True(t, envelope.Success)
	require.Len(t, envelope.Data, 7)

	assert.Equal(t, "enrollment", envelope.Data[0].Name)
	assert.Equal(t, 600, envelope.Data[0].Rows)
	assert.Equal(t, "City", envelope.Data[0].Columns[0])
	assert.Equal(t, "performance", envelope.Data[6].Name)
}

func TestAPIShowTablePagination(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/api/v1/tables/enrollment?page=2&per_page=50")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success    bool              `json:"success"`
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			CurrentPage int   `json:"current_page"`
			PerPage     int   `json:"per_page"`
			Total       int64 `json:"total"`
			TotalPages  int   `json:"total_pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.True(t, envelope.Success)

	assert.Len(t, envelope.Data, 50)
	assert.Equal(t, 2, envelope.Pagination.CurrentPage)
	assert.Equal(t, int64(600), envelope.Pagination.Total)
	assert.Equal(t, 12, envelope.Pagination.TotalPages)

	var row struct {
		City            string `json:"City"`
		Year            int    `json:"Year"`
		Quarter         string `json:"Quarter"`
		TotalEnrollment int    `json:"Total_Enrollment"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data[0], &row))
	assert.Equal(t, "General Santos", row.City)
	assert.NotZero(t, row.TotalEnrollment)
}

func TestAPIShowTableFiltered(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/api/v1/tables/enrollment?city=Tacurong&year=2020")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, int64(12), envelope.Pagination.Total)
}

func TestAPIShowTableErrors(t *testing.T) {
	app := newTestApp(t)

	resp, _ := get(t, app, "/api/v1/tables/attendance")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, app, "/api/v1/tables/enrollment?city=Davao")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, app, "/api/v1/tables/enrollment?year=2003")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, app, "/api/v1/tables/enrollment?per_page=1000")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTablesIndexHTML(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/tables")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	html := string(body)
	assert.Contains(t, html, "Complete Data Tables")
	assert.Contains(t, html, `href="/tables/enrollment"`)
	assert.Contains(t, html, `href="/tables/performance/export.csv"`)
}

func TestShowTableHTML(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/tables/enrollment?city=Tacurong&year=2020")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	html := string(body)
	assert.Contains(t, html, `id="enrollment_data_table"`)
	assert.Contains(t, html, `<option value="Tacurong" selected>`)
	assert.Contains(t, html, "Tacurong")
	assert.NotContains(t, html, "Koronadal</td>")
}

func TestExportCSVEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/tables/graduates/export.csv")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Equal(t, "attachment; filename=graduates_data.csv", resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Contains(t, string(body), "City,Year,Track,School_Type,Graduates")
}

func TestExportXLSXEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/tables/osy/export.xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")
	assert.Equal(t, "attachment; filename=osy_data.xlsx", resp.Header.Get(fiber.HeaderContentDisposition))
	// XLSX payloads are zip archives.
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte("PK"), body[:2])
}

func TestExportWorkbookEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := get(t, app, "/export.xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "attachment; filename=education_portal.xlsx", resp.Header.Get(fiber.HeaderContentDisposition))
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte("PK"), body[:2])
}
