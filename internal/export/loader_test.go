package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewLoader(tmpDir)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if !strings.Contains(string(content), ":root") {
			t.Errorf("unexpected embedded content: %q", content)
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customContent := []byte("/* custom */\n")
		if err := os.WriteFile(filepath.Join(tmpDir, "css.tmpl"), customContent, 0644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}

		content, fromCustom, err := loader.Load("css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fromCustom {
			t.Error("expected custom template, got embedded")
		}
		if string(content) != string(customContent) {
			t.Errorf("content = %q, want %q", content, customContent)
		}
		if !loader.HasCustomTemplate("css.tmpl") {
			t.Error("HasCustomTemplate() = false after writing override")
		}
	})

	t.Run("missing template", func(t *testing.T) {
		if _, _, err := loader.Load("missing.tmpl"); err == nil {
			t.Error("expected error for missing template")
		}
	})
}

func TestLoader_NoCustomBase(t *testing.T) {
	loader := NewLoader("")
	if loader.HasCustomTemplate("css.tmpl") {
		t.Error("HasCustomTemplate() should be false without a custom base")
	}
	if err := loader.DumpTemplate("css.tmpl", false); err == nil {
		t.Error("DumpTemplate() should fail without a custom base")
	}
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	names, err := NewLoader("").ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("ListEmbeddedTemplates() error: %v", err)
	}
	if diff := cmp.Diff([]string{"css.tmpl", "scss.tmpl", "tailwind.tmpl"}, names); diff != "" {
		t.Errorf("ListEmbeddedTemplates() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_DumpAllTemplates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	loader := NewLoader(dir)

	dumped, err := loader.DumpAllTemplates(false)
	if err != nil {
		t.Fatalf("DumpAllTemplates() error: %v", err)
	}
	if len(dumped) != 3 {
		t.Fatalf("dumped %d templates, want 3", len(dumped))
	}

	// A second run without force skips everything.
	dumped, err = loader.DumpAllTemplates(false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second DumpAllTemplates() error = %v, want already exists", err)
	}
	if len(dumped) != 0 {
		t.Errorf("second run dumped %v, want none", dumped)
	}

	if _, err := loader.DumpAllTemplates(true); err != nil {
		t.Errorf("DumpAllTemplates(force) error: %v", err)
	}
}
