package markup

import (
	"html/template"
	"io"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
)

// Default stylesheet and script URLs included in every index page.
var (
	DefaultCSS = []string{
		"https://maxcdn.bootstrapcdn.com/bootstrap/3.4.1/css/bootstrap.min.css",
		"static/gwsumm.css",
	}
	DefaultJS = []string{
		"https://code.jquery.com/jquery-3.7.1.min.js",
		"https://maxcdn.bootstrapcdn.com/bootstrap/3.4.1/js/bootstrap.min.js",
		"static/gwsumm.js",
	}
)

// Doc describes a complete index page. Navbar, Content and Footer hold
// pre-built markup; everything else is escaped by the template.
type Doc struct {
	Title    string
	Subtitle string
	CSS      []string
	JS       []string
	Navbar   template.HTML
	Content  template.HTML
	Footer   template.HTML
}

var docTemplate = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>{{.Title}}{{if .Subtitle}} | {{.Subtitle}}{{end}}</title>
{{- range .CSS}}
<link rel="stylesheet" href="{{.}}" type="text/css" media="all" />
{{- end}}
{{- range .JS}}
<script src="{{.}}" type="text/javascript"></script>
{{- end}}
</head>
<body>
{{.Navbar}}
<div class="container" id="main">
<div class="page-header">
<h1>{{.Title}}</h1>
{{- if .Subtitle}}
<h2>{{.Subtitle}}</h2>
{{- end}}
</div>
{{.Content}}
</div>
{{- if .Footer}}
<footer class="footer">
{{.Footer}}
</footer>
{{- end}}
</body>
</html>
`))

// Render writes the full index page for d. Unset CSS/JS lists fall back
// to the defaults.
func (d Doc) Render(w io.Writer) error {
	if d.CSS == nil {
		d.CSS = DefaultCSS
	}
	if d.JS == nil {
		d.JS = DefaultJS
	}
	if err := docTemplate.Execute(w, d); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to render document")
	}
	return nil
}
