// Package export renders palettes as stylesheet, data and Tailwind config
// snippets.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

// Format is an export output format.
type Format string

// Supported export formats.
const (
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTailwind Format = "tailwind"
)

// ErrEmptyDocument is returned when a document has neither colours nor a scale.
var ErrEmptyDocument = errors.New("nothing to export: document has no colours")

var formats = []Format{FormatCSS, FormatSCSS, FormatJSON, FormatYAML, FormatTailwind}

// Formats returns every supported format in display order.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, known := range formats {
		names[i] = string(known)
	}
	return "", fmt.Errorf("invalid format: %s (valid: %s)", s, strings.Join(names, ", "))
}

// templated reports whether the format is rendered from a .tmpl file.
func (f Format) templated() bool {
	return f == FormatCSS || f == FormatSCSS || f == FormatTailwind
}

// Document is the content of an export.
type Document struct {
	Name     string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Colors   []string               `json:"colors" yaml:"colors"`
	Gradient *colour.LinearGradient `json:"gradient,omitempty" yaml:"gradient,omitempty"`
	Scale    []colour.ScaleStop     `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// templateData is what the .tmpl files see.
type templateData struct {
	Document
	Title  string
	Prefix string
}

// Renderer renders documents, preferring user templates over embedded ones.
type Renderer struct {
	loader *Loader
	logger hclog.Logger
}

// NewRenderer returns a Renderer reading templates through loader.
// A nil logger discards output.
func NewRenderer(loader *Loader, logger hclog.Logger) *Renderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Renderer{loader: loader, logger: logger}
}

var defaultRenderer = NewRenderer(NewLoader(""), nil)

// Render renders doc in format f using the embedded templates.
func Render(f Format, doc Document) ([]byte, error) {
	return defaultRenderer.Render(f, doc)
}

// Render renders doc in format f. Colours are validated and normalised to
// lowercase #rrggbb first.
func (r *Renderer) Render(f Format, doc Document) ([]byte, error) {
	doc, err := normalise(doc)
	if err != nil {
		return nil, err
	}

	// Tailwind always carries a scale; derive one from the first colour.
	if f == FormatTailwind && len(doc.Scale) == 0 && len(doc.Colors) > 0 {
		doc.Scale = colour.ShadeScale(doc.Colors[0])
	}

	r.logger.Debug("rendering export", "format", f, "colors", len(doc.Colors), "scale", len(doc.Scale))

	switch {
	case f == FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(out, '\n'), nil
	case f == FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return out, nil
	case f.templated():
		return r.renderTemplate(f, doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

func (r *Renderer) renderTemplate(f Format, doc Document) ([]byte, error) {
	filename := templateFile(f)
	content, fromCustom, err := r.loader.Load(filename)
	if err != nil {
		return nil, err
	}
	if fromCustom {
		r.logger.Debug("using custom template", "path", r.loader.CustomPath(filename))
	}

	tmpl, err := template.New(filename).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", f, err)
	}

	data := templateData{
		Document: doc,
		Title:    doc.Name,
		Prefix:   varName(doc.Name),
	}
	if data.Title == "" {
		data.Title = "Color Palette"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", f, err)
	}
	return buf.Bytes(), nil
}

func normalise(doc Document) (Document, error) {
	if len(doc.Colors) == 0 && len(doc.Scale) == 0 {
		return doc, ErrEmptyDocument
	}

	colors := make([]string, len(doc.Colors))
	for i, c := range doc.Colors {
		norm, ok := colour.NormaliseHex(c)
		if !ok {
			return doc, fmt.Errorf("invalid colour at position %d: %q", i+1, c)
		}
		colors[i] = norm
	}
	doc.Colors = colors

	if doc.Gradient != nil {
		g := *doc.Gradient
		start, okStart := colour.NormaliseHex(g.Start)
		end, okEnd := colour.NormaliseHex(g.End)
		if !okStart || !okEnd {
			return doc, fmt.Errorf("invalid gradient: %s to %s", g.Start, g.End)
		}
		g.Start, g.End = start, end
		doc.Gradient = &g
	}
	return doc, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
}

// varName turns a palette name into a CSS custom property fragment,
// falling back to "color".
func varName(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "color"
	}
	return b.String()
}
