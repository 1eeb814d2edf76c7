package htmlconv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinConvert(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "doc.md")
	htmlPath := filepath.Join(dir, "doc.html")
	if err := os.WriteFile(mdPath, []byte("# Title\n\nSome *emphasis*.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := (Builtin{}).Convert(context.Background(), mdPath, htmlPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	html, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(html)
	if !strings.Contains(out, "<h1>Title</h1>") {
		t.Errorf("missing heading: %s", out)
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("missing emphasis: %s", out)
	}
}

func TestExternalMissingProgram(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(mdPath, []byte("# Title\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	conv := External{Program: "no-such-markdown-converter"}
	err := conv.Convert(context.Background(), mdPath, filepath.Join(dir, "doc.html"))
	if err == nil {
		t.Fatal("expected an error for a missing converter")
	}
	if !strings.Contains(err.Error(), "no-such-markdown-converter") {
		t.Errorf("error should name the program: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "doc.html")); !os.IsNotExist(statErr) {
		t.Errorf("no HTML file should be written on failure")
	}
}

func TestRender(t *testing.T) {
	html, err := Render([]byte("* 1 [name](#anchor)\n"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(html), `<a href="#anchor">name</a>`) {
		t.Errorf("unexpected output: %s", html)
	}
}
