// Package renderer turns a reconciled dataset into markdown reports.
//
// Reports are plain markdown so that the command line can print them with
// glamour and export them to HTML with goldmark.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates = func() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}()

// ScoutRenderOptions holds configuration for rendering a scout report.
type ScoutRenderOptions struct {
	SkipOrders bool // Do not render the order list.
}

// RenderScout renders the ScoutCard struct to a markdown string.
func RenderScout(c *ScoutCard, opts ScoutRenderOptions) string {
	partials := map[string]string{
		"scout_title":       "scout_title.md",
		"scout_stock":       "scout_stock.md",
		"scout_allocations": "scout_allocations.md",
		"scout_orders":      "scout_orders.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipOrders {
		partials["scout_orders"] = ""
	}
	return renderTemplate("scout", "scout.md", partials, c)
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
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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

// HTML converts a markdown report into an HTML fragment. Tables use the
// GitHub flavor.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("could not convert report to HTML: %w", err)
	}
	return buf.String(), nil
}
