package views

// Embedded CSS so every page is standalone; the palette follows the original
// portal styling.
const cssStyle = `
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: #f5f5f5;
    color: #333333;
    line-height: 1.6;
    margin: 0;
    padding: 0;
}
nav {
    background: #1f77b4;
    padding: 0.75rem 1.5rem;
}
nav a {
    color: white;
    text-decoration: none;
    margin-right: 1.5rem;
    font-weight: 600;
}
.container {
    max-width: 1100px;
    margin: 0 auto;
    padding: 1.5rem;
}
.main-header {
    font-size: 2.2rem;
    font-weight: 700;
    color: #1f77b4;
    text-align: center;
    padding: 1rem 0;
    border-bottom: 3px solid #1f77b4;
    margin-bottom: 1.5rem;
}
.sub-header {
    font-size: 1.5rem;
    font-weight: 600;
    color: #2c3e50;
    margin: 1.5rem 0 1rem 0;
    border-left: 5px solid #3498db;
    padding-left: 15px;
}
.info-box {
    background: #e3f2fd;
    padding: 1rem;
    border-radius: 8px;
    border-left: 4px solid #2196f3;
    margin: 1rem 0;
}
.metric-grid {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
    gap: 1rem;
}
.metric-card {
    background: white;
    padding: 1rem;
    border-radius: 8px;
    border: 1px solid #e0e0e0;
    text-align: center;
}
.metric-value {
    font-size: 1.6rem;
    font-weight: bold;
    color: #1f77b4;
}
.metric-label {
    color: #666666;
    font-size: 0.9rem;
}
.city-card a {
    color: #1f77b4;
    text-decoration: none;
    font-weight: 600;
}
.data-table {
    border: 2px solid #e0e0e0;
    border-radius: 8px;
    overflow-x: auto;
    background: white;
}
table {
    width: 100%;
    border-collapse: collapse;
}
table th {
    background-color: #1f77b4;
    color: white;
    padding: 10px;
    text-align: left;
    font-weight: 600;
    white-space: nowrap;
}
table td {
    padding: 8px 10px;
    border-bottom: 1px solid #ddd;
    white-space: nowrap;
}
table tr:hover {
    background-color: #f5f5f5;
}
.filter-form {
    background: white;
    padding: 1rem;
    border-radius: 8px;
    border: 1px solid #e0e0e0;
    margin-bottom: 1rem;
}
.filter-form select, .filter-form button {
    padding: 0.4rem;
    margin-right: 0.75rem;
}
.pager {
    margin: 1rem 0;
}
.pager a {
    color: #1f77b4;
    font-weight: 600;
    text-decoration: none;
    margin-right: 1rem;
}
.export-links a {
    color: #2c3e50;
    margin-right: 1rem;
}
footer {
    text-align: center;
    color: #666666;
    font-size: 0.85rem;
    padding: 1.5rem;
}
`

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>` + cssStyle + `</style>
</head>
<body>
<nav>
  <a href="/">Home</a>
  <a href="/tables">All Data Tables</a>
  <a href="/export.xlsx">Download Workbook</a>
</nav>
<div class="container">
`

const htmlFoot = `
</div>
<footer>Mindanao Education Data Portal &mdash; synthetic data for web-scraping practice</footer>
</body>
</html>`

const homeTmpl = `
<div class="main-header">Mindanao Education Data Portal</div>

<div class="info-box">
  <h3>Welcome to the Mindanao Education Data Portal</h3>
  <p>Comprehensive education statistics for 5 major Mindanao cities covering {{.Years}}.
  All figures are synthetic and exist to be scraped.</p>
</div>

<div class="sub-header">Regional Overview</div>
<div class="metric-grid">
{{range .Metrics}}
  <div class="metric-card">
    <div class="metric-value">{{.Value}}</div>
    <div class="metric-label">{{.Label}}</div>
  </div>
{{end}}
</div>

<div class="sub-header">Cities Covered</div>
<div class="metric-grid">
{{range .Cities}}
  <div class="metric-card city-card">
    <div class="metric-value">{{.Enrollment}}</div>
    <div class="metric-label"><a href="/cities/{{.Slug}}">{{.Name}}</a> students</div>
  </div>
{{end}}
</div>

<div class="info-box">
  Data Last Updated: {{.Updated}} | Coverage: {{.Years}}
</div>
`

const tablesTmpl = `
<div class="main-header">Complete Data Tables</div>

<div class="info-box">
  <h3>Web Scraping Guide</h3>
  <p>Each category page renders one table with the stable id
  <code>[category]_data_table</code>. Every table offers CSV and XLSX
  downloads, a JSON API lives under <code>/api/v1/tables</code>.</p>
</div>

<div class="data-table">
<table id="tables_index">
  <tr><th>Table</th><th>Records</th><th>Columns</th><th>Export</th></tr>
{{range .Tables}}
  <tr>
    <td><a href="/tables/{{.Name}}">{{.Name}}</a></td>
    <td>{{comma .Rows}}</td>
    <td>{{.Columns}}</td>
    <td class="export-links">
      <a href="/tables/{{.Name}}/export.csv">CSV</a>
      <a href="/tables/{{.Name}}/export.xlsx">XLSX</a>
    </td>
  </tr>
{{end}}
</table>
</div>
`

const tableTmpl = `
<div class="main-header">{{.Name}} data</div>

<form class="filter-form" method="get" action="/tables/{{.Name}}">
  <label>City:
    <select name="city">
      <option value="">All Cities</option>
      {{range .Cities}}<option value="{{.}}"{{if eq $.City .}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
  <label>Year:
    <select name="year">
      <option value="">All Years</option>
      {{range .Years}}<option value="{{.}}"{{if eq $.Year .}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
  <input type="hidden" name="per_page" value="{{.PerPage}}">
  <button type="submit">Apply</button>
</form>

<div class="info-box">
  Records: {{comma .Total}} | Columns: {{len .Columns}} | Table ID: <code>{{.Name}}_data_table</code>
</div>

<p class="export-links">
  <a href="{{.CSVURL}}">Download CSV</a>
  <a href="{{.XLSXURL}}">Download XLSX</a>
</p>

<div class="data-table">
<table id="{{.Name}}_data_table">
  <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}
  <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</div>

<div class="pager">
  {{if .PrevURL}}<a href="{{.PrevURL}}">&laquo; Previous</a>{{end}}
  Page {{.Page}} of {{.TotalPages}}
  {{if .NextURL}}<a href="{{.NextURL}}">Next &raquo;</a>{{end}}
</div>
`

const cityTmpl = `
<div class="main-header">{{.City}} Education Dashboard</div>

<form class="filter-form" method="get" action="/cities/{{.Slug}}">
  <label>School Year:
    <select name="year">
      {{range .Years}}<option value="{{.}}"{{if eq $.Year .}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
  <button type="submit">Apply</button>
</form>

<div class="sub-header">Key Metrics</div>
<div class="metric-grid">
{{range .Metrics}}
  <div class="metric-card">
    <div class="metric-value">{{.Value}}</div>
    <div class="metric-label">{{.Label}}</div>
  </div>
{{end}}
</div>

<div class="sub-header">Enrollment Statistics</div>
<p><strong>Enrollment Data Table (ID: {{.Enrollment.ID}})</strong></p>
<div class="data-table">
<table id="{{.Enrollment.ID}}">
  <tr>{{range .Enrollment.Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Enrollment.Rows}}
  <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</div>

<div class="sub-header">Student Performance</div>
<p><strong>Performance Data Table (ID: {{.Performance.ID}})</strong></p>
<div class="data-table">
<table id="{{.Performance.ID}}">
  <tr>{{range .Performance.Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Performance.Rows}}
  <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</div>
`
