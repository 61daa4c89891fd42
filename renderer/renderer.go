// Package renderer renders the valuation screen as markdown, as an HTML page
// for browsers, and for terminals.
package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/vti"
	"github.com/etnz/vti/docs"
	"github.com/etnz/vti/presenter"
	"github.com/shopspring/decimal"
)

// jst is the time zone of the last update time, Japan has no daylight saving.
var jst = time.FixedZone("JST", 9*60*60)

// content is the template data of the view, every value already formatted.
type content struct {
	Error       string
	Placeholder bool
	Price       string
	Rate        string
	Updated     string
	Summary     string
	Shares      string
	TotalLocal  string
	TotalBase   string
	Sources     []vti.Citation
	Disclaimer  string
}

func newContent(v presenter.View) content {
	c := content{
		Error:       v.Error,
		Placeholder: v.Placeholder(),
		Price:       v.Valuation.Price.String(),
		Rate:        FormatRate(v.Valuation.Rate),
		Updated:     "データ待機中...",
		Shares:      v.Valuation.Shares.String(),
		TotalLocal:  v.Valuation.TotalLocal.String(),
		TotalBase:   v.Valuation.TotalBase.String(),
	}
	if v.Quote != nil {
		c.Updated = "最終更新: " + v.Quote.RetrievedAt().In(jst).Format("15:04:05")
		c.Summary = v.Quote.DisplaySummary()
		for _, s := range v.Quote.Sources() {
			c.Sources = append(c.Sources, vti.Citation{Title: escapeLinkText(s.Title), URI: escapeLinkDestination(s.URI)})
		}
	}
	if d, err := docs.Body("disclaimer"); err == nil {
		c.Disclaimer = strings.Join(strings.Fields(d), "")
	}
	return c
}

// FormatRate formats an exchange rate as yen per dollar with 2 decimals.
func FormatRate(rate decimal.Decimal) string {
	return "¥" + rate.StringFixed(2)
}

// escapeLinkText escapes the characters that would end a markdown link text.
func escapeLinkText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`, "\n", " ")
	return r.Replace(s)
}

// escapeLinkDestination percent-encodes the characters that would end a
// markdown link destination written between angle brackets.
func escapeLinkDestination(s string) string {
	r := strings.NewReplacer("<", "%3C", ">", "%3E", "\n", "%0A", "\r", "%0D")
	return r.Replace(s)
}

// Markdown renders the view to a markdown string.
func Markdown(v presenter.View) string {
	partials := map[string]string{
		"view_title":      "view_title.md",
		"view_error":      "view_error.md",
		"view_price":      "view_price.md",
		"view_valuation":  "view_valuation.md",
		"view_sources":    "view_sources.md",
		"view_disclaimer": "view_disclaimer.md",
	}
	return renderTemplate("view", "view.md", partials, newContent(v))
}

// QuoteMarkdown renders only the quote part of the view: price, rate, last
// update, summary and sources.
func QuoteMarkdown(q vti.Quote) string {
	v := presenter.View{State: vti.Success, Quote: &q, Valuation: vti.NewValuation("", &q)}
	partials := map[string]string{
		"view_price":   "view_price.md",
		"view_sources": "view_sources.md",
	}
	return renderTemplate("quote", "quote.md", partials, newContent(v))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
