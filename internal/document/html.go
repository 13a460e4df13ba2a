package document

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md converts markdown to HTML. Raw HTML in the source is escaped (goldmark's
// default), so substituted user text can never inject markup.
var md = goldmark.New(goldmark.WithExtensions(extension.TaskList))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<article>
{{.Body}}</article>
</body>
</html>
`))

// HTML renders markdown text as a standalone HTML page with the given title.
func HTML(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("document.HTML: convert: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body.String())}) //nolint:gosec // goldmark output, raw HTML disabled
	if err != nil {
		return nil, fmt.Errorf("document.HTML: template: %w", err)
	}
	return out.Bytes(), nil
}
