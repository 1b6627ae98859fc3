package portal

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mindanaodata/edu-portal/dataset"
	"github.com/mindanaodata/edu-portal/services"
	"github.com/mindanaodata/edu-portal/utils/response"
	"github.com/mindanaodata/edu-portal/views"
)

// Handler serves the home page, the city dashboards and the small JSON
// endpoints backing them.
type Handler struct {
	datasets *services.DatasetService
}

// NewHandler creates a portal handler.
func NewHandler(datasets *services.DatasetService) *Handler {
	return &Handler{datasets: datasets}
}

func sendHTML(c *fiber.Ctx, page string, data interface{}) error {
	html, err := views.Render(page, data)
	if err != nil {
		return response.InternalServerError(c, "Failed to render page")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Home handles GET /
func (h *Handler) Home(c *fiber.Ctx) error {
	summary, err := h.datasets.Summary()
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}

	data := views.HomeData{
		Title:   "Mindanao Education Data Portal",
		Updated: time.Now().Format("January 2, 2006"),
		Years:   fmt.Sprintf("%d-%d", dataset.StartYear, dataset.EndYear),
		Metrics: []views.Metric{
			{Label: "Total Students", Value: views.Comma(summary.TotalEnrollment)},
			{Label: "Total Schools", Value: views.Comma(summary.TotalSchools)},
			{Label: "Total Graduates", Value: views.Comma(summary.TotalGraduates)},
			{Label: "Avg NAT Score", Value: fmt.Sprintf("%.1f/100", summary.AverageScore)},
		},
	}
	for _, city := range summary.Cities {
		data.Cities = append(data.Cities, views.CityCard{
			Name:       city.Name,
			Slug:       city.Slug,
			Enrollment: views.Comma(city.Enrollment),
		})
	}

	return sendHTML(c, "home", data)
}

// CityDashboard handles GET /cities/:city
func (h *Handler) CityDashboard(c *fiber.Ctx) error {
	city, ok := dataset.CityBySlug(c.Params("city"))
	if !ok {
		return response.NotFound(c, "City not found")
	}

	year := c.QueryInt("year", dataset.EndYear)
	if year < dataset.StartYear || year > dataset.EndYear {
		return response.BadRequest(c, fmt.Sprintf("Year must be between %d and %d", dataset.StartYear, dataset.EndYear))
	}

	coll, err := h.datasets.Collection()
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}

	d, err := h.datasets.Data()
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}

	// December snapshot for the headline enrollment figure.
	var decEnrollment int
	for _, row := range d.Enrollment {
		if row.City == city.Name && row.Year == year && row.Month == 12 {
			decEnrollment = row.TotalEnrollment
			break
		}
	}

	var gradRateSum float64
	var gradRows int
	for _, row := range d.Graduates {
		if row.City == city.Name && row.Year == year {
			gradRateSum += row.GraduationRate
			gradRows++
		}
	}
	gradRate := 0.0
	if gradRows > 0 {
		gradRate = gradRateSum / float64(gradRows)
	}

	var scoreSum float64
	var scoreRows int
	for _, row := range d.Performance {
		if row.City == city.Name && row.Year == year {
			scoreSum += row.AverageScore
			scoreRows++
		}
	}
	avgScore := 0.0
	if scoreRows > 0 {
		avgScore = scoreSum / float64(scoreRows)
	}

	idSuffix := strings.ReplaceAll(city.Name, " ", "_") + "_" + fmt.Sprint(year)

	enrollTable, _ := coll.Table(dataset.TableEnrollment)
	perfTable, _ := coll.Table(dataset.TablePerformance)
	enrollFiltered := enrollTable.Filter(city.Name, year)
	perfFiltered := perfTable.Filter(city.Name, year)

	data := views.CityData{
		Title: city.Name + " Education Dashboard",
		City:  city.Name,
		Slug:  dataset.CitySlug(city.Name),
		Year:  year,
		Years: dataset.Years(),
		Metrics: []views.Metric{
			{Label: "Total Enrollment (Dec)", Value: views.Comma(decEnrollment)},
			{Label: "Graduation Rate", Value: views.Percent(gradRate)},
			{Label: "NAT Average", Value: fmt.Sprintf("%.1f/100", avgScore)},
			{Label: "Total Schools", Value: views.Comma(city.SchoolsPublic + city.SchoolsPrivate)},
		},
		Enrollment: views.TableSection{
			ID:      "enrollment_" + idSuffix,
			Columns: enrollFiltered.Columns,
			Rows:    rowValues(enrollFiltered),
		},
		Performance: views.TableSection{
			ID:      "performance_" + idSuffix,
			Columns: perfFiltered.Columns,
			Rows:    rowValues(perfFiltered),
		},
	}

	return sendHTML(c, "city", data)
}

func rowValues(t *dataset.Table) [][]string {
	out := make([][]string, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, row.Values())
	}
	return out
}

// APISummary handles GET /api/v1/summary
func (h *Handler) APISummary(c *fiber.Ctx) error {
	summary, err := h.datasets.Summary()
	if err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}
	return response.Success(c, summary)
}

// APICities handles GET /api/v1/cities
func (h *Handler) APICities(c *fiber.Ctx) error {
	type cityInfo struct {
		Name           string  `json:"name"`
		Slug           string  `json:"slug"`
		Population     int     `json:"population"`
		SchoolsPublic  int     `json:"schools_public"`
		SchoolsPrivate int     `json:"schools_private"`
		PovertyRate    float64 `json:"poverty_rate"`
	}
	cities := make([]cityInfo, 0, len(dataset.Cities))
	for _, city := range dataset.Cities {
		cities = append(cities, cityInfo{
			Name:           city.Name,
			Slug:           dataset.CitySlug(city.Name),
			Population:     city.Population,
			SchoolsPublic:  city.SchoolsPublic,
			SchoolsPrivate: city.SchoolsPrivate,
			PovertyRate:    city.PovertyRate,
		})
	}
	return response.Success(c, cities)
}
