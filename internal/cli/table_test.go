package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/colourmakr/internal/colour"
)

func TestNewTable(t *testing.T) {
	table := NewTable("Name", "Hex", "Category")

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Hex")

	table.AddRow("red", "#ff0000")
	table.AddRow("blue")
	table.AddRow("green", "#008000", "extra")

	if table.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", table.Len())
	}
	want := [][]string{
		{"red", "#ff0000"},
		{"blue", ""},
		{"green", "#008000"},
	}
	if diff := cmp.Diff(want, table.rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("NAME", "HEX")
	table.AddRow("red", "#ff0000")
	table.AddRow("rebeccapurple", "#663399")

	want := "" +
		"NAME           HEX\n" +
		"-------------  -------\n" +
		"red            #ff0000\n" +
		"rebeccapurple  #663399\n"
	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := table.Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Expected empty string for table without headers, got: %q", got)
	}

	got := NewTable("Column1", "Column2").Render()
	if got != "Column1  Column2\n-------  -------\n" {
		t.Errorf("Render() without rows = %q", got)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	swatch := colour.ColourPreview(colour.RGB{R: 255}, 4)
	table := NewTable("SWATCH", "HEX")
	table.AddRow(swatch, "#ff0000")

	lines := strings.Split(table.Render(), "\n")
	if got, want := lines[2], swatch+"    "+"#ff0000"; got != want {
		t.Errorf("swatch row = %q, want %q", got, want)
	}
}

func TestTableWrapping(t *testing.T) {
	table := NewTable("ID", "DESCRIPTION")
	table.SetColumnMaxWidth(1, 12)
	table.AddRow("a", "green weak most common")

	want := "" +
		"ID  DESCRIPTION\n" +
		"--  -----------\n" +
		"a   green weak\n" +
		"    most common\n"
	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"#ff0000", 7},
		{"\033[48;2;255;0;0m    \033[0m", 4},
		{"→ →", 3},
		{"\033[1mbold", 4},
	}
	for _, tt := range tests {
		if got := visibleWidth(tt.input); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"★", 3, "★  "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"no limit at all", 0, []string{"no limit at all"}},
		{"the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, wrapText(tt.text, tt.width)); diff != "" {
			t.Errorf("wrapText(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
		}
	}
}
