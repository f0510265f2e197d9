package report

import (
	"fmt"
	"html/template"
	"io"
)

var printTemplate = template.Must(template.New("print").Parse(printHTML))

// WriteHTML writes doc as a standalone page laid out for landscape A4.
func WriteHTML(w io.Writer, doc Document) error {
	if err := printTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render print page: %w", err)
	}
	return nil
}

// A4 landscape at 96 dpi (3.78 px/mm): 297mm x 190mm.
const printHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    @media print {
      table { width: 100%; border-collapse: collapse; }
      th, td { border: 1px solid black; padding: 8px; }
      th { background-color: #f2f2f2; }
      body { margin: 0; }
      @page { size: A4 landscape; margin: 0; }
    }
    @media screen {
      table { width: 100%; border-collapse: collapse; margin-top: 20px; }
      th, td { border: 1px solid black; padding: 8px; }
      th { background-color: #f2f2f2; }
    }
    .container {
      width: 1122.66px;
      height: 718.2px;
      border: 1px solid #000;
      background-color: #fff;
      margin: 0 auto;
      position: relative;
      overflow: hidden;
    }
    .header { display: flex; justify-content: space-between; margin-bottom: 20px; }
    .totals td { font-weight: bold; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <p>{{.DriverLabel}} </p>
      <p>{{.MonthLine}}</p>
      <p>{{.SignatureLabel}}</p>
    </div>
    <table>
      <thead>
        <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
      </thead>
      <tbody>
        {{- range .Rows}}
        <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
        {{- end}}
        <tr class="totals">{{range .Totals}}<td>{{.}}</td>{{end}}</tr>
      </tbody>
    </table>
  </div>
</body>
</html>
`
