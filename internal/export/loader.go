package export

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Loader reads export templates, checking a custom directory for overrides
// before falling back to the embedded defaults.
type Loader struct {
	embedFS    fs.FS
	customBase string // Empty disables overrides.
}

// NewLoader returns a Loader that looks for overrides in customBase.
func NewLoader(customBase string) *Loader {
	return &Loader{
		embedFS:    templates,
		customBase: customBase,
	}
}

func templateFile(f Format) string {
	return string(f) + ".tmpl"
}

// Load reads a template by filename (e.g. "css.tmpl") and reports whether it
// came from the custom directory.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customBase != "" {
		if content, err := os.ReadFile(l.CustomPath(filename)); err == nil {
			return content, true, nil
		}
	}

	content, err = fs.ReadFile(l.embedFS, path.Join("templates", filename))
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}
	return content, false, nil
}

// CustomPath returns where a custom override for filename would live.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, filename)
}

// HasCustomTemplate reports whether an override exists for filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	if l.customBase == "" {
		return false
	}
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns the sorted filenames of the embedded templates.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	entries, err := fs.ReadDir(l.embedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".tmpl" {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// DumpTemplate writes an embedded template into the custom directory so it
// can be edited. Existing files are kept unless force is set.
func (l *Loader) DumpTemplate(filename string, force bool) error {
	if l.customBase == "" {
		return fmt.Errorf("no custom template directory configured")
	}

	content, err := fs.ReadFile(l.embedFS, path.Join("templates", filename))
	if err != nil {
		return fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("custom template already exists: %s (use --force to overwrite)", outputPath)
		}
	}

	if err := os.MkdirAll(l.customBase, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", l.customBase, err)
	}
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}
	return nil
}

// DumpAllTemplates writes every embedded template to the custom directory.
// Without force, existing files are skipped and reported together in the
// returned error; the paths that were written are always returned.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	names, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped, skipped []string
	for _, name := range names {
		if err := l.DumpTemplate(name, force); err != nil {
			if !force && strings.Contains(err.Error(), "already exists") {
				skipped = append(skipped, err.Error())
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, l.CustomPath(name))
	}

	if len(skipped) > 0 {
		return dumped, fmt.Errorf("%s", strings.Join(skipped, "; "))
	}
	return dumped, nil
}
