package renderer

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/etnz/vti/presenter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed page.html
var pageTemplate string

var (
	page = template.Must(template.New("page").Parse(pageTemplate))
	md   = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// HTML renders the view as a complete HTML page, with the share count form
// and the refresh button, disabled while a fetch is in flight.
func HTML(v presenter.View) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(v)), &body); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	err := page.Execute(&b, struct {
		CanRefresh bool
		Shares     string
		Body       template.HTML
	}{
		CanRefresh: v.CanRefresh(),
		Shares:     string(v.Shares),
		// goldmark drops raw HTML and unsafe links unless WithUnsafe is set.
		Body: template.HTML(body.String()),
	})
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
