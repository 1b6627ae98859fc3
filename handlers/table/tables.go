package table

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/mindanaodata/edu-portal/dataset"
	"github.com/mindanaodata/edu-portal/services"
	"github.com/mindanaodata/edu-portal/utils/response"
	"github.com/mindanaodata/edu-portal/utils/validation"
	"github.com/mindanaodata/edu-portal/views"
)

// Handler serves the table pages, the JSON table API and the export
// endpoints.
type Handler struct {
	datasets  *services.DatasetService
	exports   *services.ExportService
	validator *validation.Validator
}

// NewHandler creates a table handler.
func NewHandler(datasets *services.DatasetService, exports *services.ExportService) *Handler {
	return &Handler{
		datasets:  datasets,
		exports:   exports,
		validator: validation.NewValidator(),
	}
}

// tableQuery holds the parsed list/filter query parameters.
type tableQuery struct {
	Page    int    `validate:"gte=1"`
	PerPage int    `validate:"gte=1,lte=500"`
	City    string `validate:"omitempty"`
	Year    int    `validate:"omitempty,gte=2015,lte=2024"`
}

func (h *Handler) parseQuery(c *fiber.Ctx) (tableQuery, error) {
	q := tableQuery{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 25),
		City:    c.Query("city"),
		Year:    c.QueryInt("year", 0),
	}
	if err := h.validator.ValidateStruct(q); err != nil {
		return q, err
	}
	if q.City != "" {
		if _, ok := dataset.CityByName(q.City); !ok {
			return q, fmt.Errorf("unknown city %q", q.City)
		}
	}
	return q, nil
}

func (h *Handler) lookup(c *fiber.Ctx) (*dataset.Table, error) {
	coll, err := h.datasets.Collection()
	if err != nil {
		return nil, err
	}
	t, ok := coll.Table(c.Params("name"))
	if !ok {
		return nil, nil
	}
	return t, nil
}

// Index handles GET /tables
func (h *Handler) Index(c *fiber.Ctx) error {
	coll, err := h.datasets.Collection()
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}

	data := views.TablesData{Title: "Complete Data Tables"}
	for _, t := range coll.Tables() {
		data.Tables = append(data.Tables, views.TableInfo{
			Name:    t.Name,
			Rows:    t.Len(),
			Columns: len(t.Columns),
		})
	}

	html, err := views.Render("tables", data)
	if err != nil {
		return response.InternalServerError(c, "Failed to render page")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func pageURL(name string, q tableQuery, page int) string {
	vals := url.Values{}
	vals.Set("page", fmt.Sprint(page))
	vals.Set("per_page", fmt.Sprint(q.PerPage))
	if q.City != "" {
		vals.Set("city", q.City)
	}
	if q.Year != 0 {
		vals.Set("year", fmt.Sprint(q.Year))
	}
	return "/tables/" + name + "?" + vals.Encode()
}

func exportURL(name, format string, q tableQuery) string {
	vals := url.Values{}
	if q.City != "" {
		vals.Set("city", q.City)
	}
	if q.Year != 0 {
		vals.Set("year", fmt.Sprint(q.Year))
	}
	u := "/tables/" + name + "/export." + format
	if encoded := vals.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// Show handles GET /tables/:name
func (h *Handler) Show(c *fiber.Ctx) error {
	t, err := h.lookup(c)
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}
	if t == nil {
		return response.NotFound(c, "Table not found")
	}

	q, err := h.parseQuery(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	filtered := t.Filter(q.City, q.Year)
	pagination := response.CalculatePagination(q.Page, q.PerPage, int64(filtered.Len()))

	rows := make([][]string, 0, q.PerPage)
	for _, row := range filtered.Page(q.Page, q.PerPage) {
		rows = append(rows, row.Values())
	}

	data := views.TableData{
		Title:      t.Name + " | Mindanao Education Data Portal",
		Name:       t.Name,
		Columns:    t.Columns,
		Rows:       rows,
		Cities:     dataset.CityNames(),
		Years:      dataset.Years(),
		City:       q.City,
		Year:       q.Year,
		Total:      filtered.Len(),
		Page:       pagination.CurrentPage,
		TotalPages: pagination.TotalPages,
		PerPage:    pagination.PerPage,
		CSVURL:     exportURL(t.Name, "csv", q),
		XLSXURL:    exportURL(t.Name, "xlsx", q),
	}
	if pagination.CurrentPage > 1 {
		data.PrevURL = pageURL(t.Name, q, pagination.CurrentPage-1)
	}
	if pagination.CurrentPage < pagination.TotalPages {
		data.NextURL = pageURL(t.Name, q, pagination.CurrentPage+1)
	}

	html, err := views.Render("table", data)
	if err != nil {
		return response.InternalServerError(c, "Failed to render page")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// APIList handles GET /api/v1/tables
func (h *Handler) APIList(c *fiber.Ctx) error {
	coll, err := h.datasets.Collection()
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}

	type tableInfo struct {
		Name    string   `json:"name"`
		Rows    int      `json:"rows"`
		Columns []string `json:"columns"`
	}
	tables := make([]tableInfo, 0, len(dataset.TableNames))
	for _, t := range coll.Tables() {
		tables = append(tables, tableInfo{Name: t.Name, Rows: t.Len(), Columns: t.Columns})
	}
	return response.Success(c, tables)
}

// APIShow handles GET /api/v1/tables/:name
func (h *Handler) APIShow(c *fiber.Ctx) error {
	t, err := h.lookup(c)
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}
	if t == nil {
		return response.NotFound(c, "Table not found")
	}

	q, err := h.parseQuery(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	filtered := t.Filter(q.City, q.Year)
	pagination := response.CalculatePagination(q.Page, q.PerPage, int64(filtered.Len()))
	rows := filtered.Page(pagination.CurrentPage, pagination.PerPage)

	return response.Paginated(c, rows, pagination)
}

// ExportCSV handles GET /tables/:name/export.csv
func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	t, err := h.lookup(c)
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}
	if t == nil {
		return response.NotFound(c, "Table not found")
	}

	q, err := h.parseQuery(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	filtered := t.Filter(q.City, q.Year)
	data, err := h.exports.CachedCSV(c.UserContext(), h.datasets.Seed(), filtered, q.City, q.Year)
	if err != nil {
		return response.InternalServerError(c, "Failed to export table")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s_data.csv", t.Name))
	return c.Send(data)
}

// ExportXLSX handles GET /tables/:name/export.xlsx
func (h *Handler) ExportXLSX(c *fiber.Ctx) error {
	t, err := h.lookup(c)
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}
	if t == nil {
		return response.NotFound(c, "Table not found")
	}

	q, err := h.parseQuery(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	filtered := t.Filter(q.City, q.Year)
	data, err := h.exports.Workbook([]*dataset.Table{filtered})
	if err != nil {
		return response.InternalServerError(c, "Failed to export table")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s_data.xlsx", t.Name))
	return c.Send(data)
}

// ExportWorkbook handles GET /export.xlsx
func (h *Handler) ExportWorkbook(c *fiber.Ctx) error {
	coll, err := h.datasets.Collection()
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}

	data, err := h.exports.Workbook(coll.Tables())
	if err != nil {
		return response.InternalServerError(c, "Failed to export workbook")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=education_portal.xlsx")
	return c.Send(data)
}
