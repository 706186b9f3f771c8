package render

import (
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; background: {{.Background}}; }
  #aquarium {
    margin: 0;
    font-family: monospace;
    font-size: {{.FontSize}}px;
    line-height: {{.LineHeight}};
    white-space: pre;
    overflow: hidden;
  }
</style>
</head>
<body>
<pre id="aquarium">{{.Frame}}</pre>
</body>
</html>
`))

// Page describes a standalone document wrapping one rendered frame.
type Page struct {
	Title      string
	Background string
	FontSize   float64
	LineHeight float64
}

// Write renders the document with markup, which must come from HTML.
// Unset font metrics fall back to 16px at 1.2 line height.
func (p Page) Write(w io.Writer, markup string) error {
	if p.FontSize <= 0 {
		p.FontSize = 16
	}
	if p.LineHeight <= 0 {
		p.LineHeight = 1.2
	}
	return pageTmpl.Execute(w, struct {
		Page
		Frame template.HTML
	}{p, template.HTML(markup)})
}
