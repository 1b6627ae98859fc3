package views

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
)

// Metric is one labelled figure on a dashboard.
type Metric struct {
	Label string
	Value string
}

// CityCard is one city tile on the home page.
type CityCard struct {
	Name       string
	Slug       string
	Enrollment string
}

// HomeData drives the home page.
type HomeData struct {
	Title   string
	Updated string
	Years   string
	Metrics []Metric
	Cities  []CityCard
}

// TableInfo is one entry on the tables index.
type TableInfo struct {
	Name    string
	Rows    int
	Columns int
}

// TablesData drives the tables index page.
type TablesData struct {
	Title  string
	Tables []TableInfo
}

// TableData drives the paginated table page.
type TableData struct {
	Title      string
	Name       string
	Columns    []string
	Rows       [][]string
	Cities     []string
	Years      []int
	City       string
	Year       int
	Total      int
	Page       int
	TotalPages int
	PerPage    int
	PrevURL    string
	NextURL    string
	CSVURL     string
	XLSXURL    string
}

// TableSection is an inline data table on the city dashboard.
type TableSection struct {
	ID      string
	Columns []string
	Rows    [][]string
}

// CityData drives the city dashboard page.
type CityData struct {
	Title       string
	City        string
	Slug        string
	Year        int
	Years       []int
	Metrics     []Metric
	Enrollment  TableSection
	Performance TableSection
}

// Comma formats an integer with thousands separators.
func Comma(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var buf bytes.Buffer
	lead := len(s) % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if buf.Len() > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	out := buf.String()
	if neg {
		return "-" + out
	}
	return out
}

// Percent formats a [0,1] rate as "12.3%".
func Percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

var funcMap = template.FuncMap{
	"comma": Comma,
	"pct":   Percent,
}

var templates = map[string]*template.Template{}

func init() {
	pages := map[string]string{
		"home":   homeTmpl,
		"tables": tablesTmpl,
		"table":  tableTmpl,
		"city":   cityTmpl,
	}
	for name, body := range pages {
		templates[name] = template.Must(
			template.New(name).Funcs(funcMap).Parse(htmlHead + body + htmlFoot))
	}
}

// Render executes the named page template.
func Render(name string, data interface{}) (string, error) {
	t, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("views: unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
