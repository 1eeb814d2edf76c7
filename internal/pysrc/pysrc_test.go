package pysrc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSource = `#!/usr/bin/env python3
"""shapes: Geometry helpers.

Provides a couple of classes used by the examples.
"""

import math

TAU = 2 * math.pi


class Circle:
    """Circle: A circle with a radius.

    Attributes:
    * radius (float): The circle radius.
    """

    def __init__(self, radius):
        """Hidden constructor."""
        self.radius = radius

    def area(self) -> float:
        """Return the circle area."""
        return math.pi * self.radius ** 2

    def scale(self, factor: float) -> "Circle":
        """Return a scaled copy.

        Arguments:
        * factor (float): The scale factor.
        """
        return Circle(self.radius * factor)


class _Hidden:
    """Private class, not documented."""

    def visible(self):
        """Should never be extracted."""


def perimeter(shape) -> float:
    """Return the perimeter of a shape."""
    return 0.0


async def fetch_shapes(url,
                       timeout=5):
    """Fetch shape definitions from a URL."""
    return []


def _helper():
    """Private helper."""
`

func TestParseModule(t *testing.T) {
	mod := Parse(sampleSource, "shapes")

	if mod.Name != "shapes" {
		t.Errorf("name: got %q", mod.Name)
	}
	if mod.IsPackage {
		t.Errorf("shapes.py should not be a package marker")
	}
	if !strings.HasPrefix(mod.Doc, "shapes: Geometry helpers.") {
		t.Errorf("module docstring: got %q", mod.Doc)
	}
}

func TestParseClasses(t *testing.T) {
	mod := Parse(sampleSource, "shapes")

	if len(mod.Classes) != 1 {
		t.Fatalf("expected 1 public class, got %d", len(mod.Classes))
	}
	circle := mod.Classes[0]
	if circle.Name != "Circle" {
		t.Errorf("class name: got %q", circle.Name)
	}
	if !strings.HasPrefix(circle.Doc, "Circle: A circle with a radius.") {
		t.Errorf("class docstring: got %q", circle.Doc)
	}

	var names []string
	for _, m := range circle.Methods {
		names = append(names, m.Name)
	}
	want := []string{"area", "scale"}
	if len(names) != len(want) {
		t.Fatalf("methods: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("method[%d]: got %q, want %q", i, names[i], want[i])
		}
	}
	if circle.Methods[0].Signature != "area(self) -> float" {
		t.Errorf("signature: got %q", circle.Methods[0].Signature)
	}
}

func TestParseModuleFunctions(t *testing.T) {
	mod := Parse(sampleSource, "shapes")

	if len(mod.Functions) != 2 {
		t.Fatalf("expected 2 public functions, got %d: %+v", len(mod.Functions), mod.Functions)
	}
	if mod.Functions[0].Name != "perimeter" {
		t.Errorf("functions[0]: got %q", mod.Functions[0].Name)
	}
	async := mod.Functions[1]
	if async.Name != "fetch_shapes" {
		t.Errorf("functions[1]: got %q", async.Name)
	}
	if async.Signature != "fetch_shapes(url, timeout=5)" {
		t.Errorf("multi-line signature: got %q", async.Signature)
	}
	if async.Doc != "Fetch shape definitions from a URL." {
		t.Errorf("async docstring: got %q", async.Doc)
	}
}

func TestParseDocstringPreservesInteriorIndent(t *testing.T) {
	mod := Parse(sampleSource, "shapes")
	scale := mod.Classes[0].Methods[1]
	if !strings.Contains(scale.Doc, "\n        Arguments:") {
		t.Errorf("interior indentation lost: %q", scale.Doc)
	}
}

func TestParseNoDocstrings(t *testing.T) {
	mod := Parse("def f(x):\n    return x\n", "plain")
	if mod.Doc != "" {
		t.Errorf("unexpected module docstring %q", mod.Doc)
	}
	if len(mod.Functions) != 1 || mod.Functions[0].Doc != "" {
		t.Fatalf("expected one undocumented function, got %+v", mod.Functions)
	}
}

func TestParseInitIsPackage(t *testing.T) {
	mod := Parse(`"""pkg: A package."""`, "__init__")
	if !mod.IsPackage {
		t.Errorf("__init__ should mark a package")
	}
	if mod.Doc != "pkg: A package." {
		t.Errorf("package docstring: got %q", mod.Doc)
	}
}

func TestParseSkipsDisabledStringBlocks(t *testing.T) {
	src := "\"\"\"mod: doc.\"\"\"\n\n\"\"\"\ndef ghost():\n    pass\n\"\"\"\n\ndef real():\n    \"\"\"Real function.\"\"\"\n"
	mod := Parse(src, "mod")
	if len(mod.Functions) != 1 || mod.Functions[0].Name != "real" {
		t.Fatalf("expected only real(), got %+v", mod.Functions)
	}
}

func TestParseSkipsAssignedStringLiterals(t *testing.T) {
	src := `"""mod: doc."""

TEMPLATE = """
def ghost():
    '''Ghost function.'''
"""

class Widget:
    """Widget: A widget."""

    BANNER = '''
    def phantom(self):
        pass
    '''

    def real_method(self):
        """Real method."""
`
	mod := Parse(src, "mod")
	if len(mod.Functions) != 0 {
		t.Errorf("template interior leaked as functions: %+v", mod.Functions)
	}
	if len(mod.Classes) != 1 {
		t.Fatalf("expected 1 class, got %+v", mod.Classes)
	}
	methods := mod.Classes[0].Methods
	if len(methods) != 1 || methods[0].Name != "real_method" {
		t.Fatalf("expected only real_method(), got %+v", methods)
	}
}

func TestParseCRLFSource(t *testing.T) {
	src := "\"\"\"mod: doc.\r\n\r\nDetails.\r\n\"\"\"\r\ndef f():\r\n    \"\"\"F doc.\"\"\"\r\n"
	mod := Parse(src, "mod")
	if strings.Contains(mod.Doc, "\r") {
		t.Errorf("carriage returns leaked into docstring: %q", mod.Doc)
	}
	if !strings.HasPrefix(mod.Doc, "mod: doc.") {
		t.Errorf("module docstring: got %q", mod.Doc)
	}
	if len(mod.Functions) != 1 || mod.Functions[0].Doc != "F doc." {
		t.Fatalf("expected documented f(), got %+v", mod.Functions)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.py", "a.py", "__init__.py", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	found, err := Discover(dir, nil)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if !found.HasInit {
		t.Errorf("expected package marker")
	}
	var bases []string
	for _, f := range found.Files {
		bases = append(bases, filepath.Base(f))
	}
	want := []string{"__init__.py", "a.py", "b.py"}
	for i := range want {
		if bases[i] != want[i] {
			t.Errorf("files[%d]: got %q, want %q", i, bases[i], want[i])
		}
	}
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := Discover(dir, nil)
	if err == nil {
		t.Fatal("expected discovery error")
	}
	if !strings.Contains(err.Error(), dir) {
		t.Errorf("error should name the directory: %v", err)
	}
}

func TestDiscoverExcludes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"keep.py", "test_skip.py"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	found, err := Discover(dir, []string{"test_*.py"})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(found.Files) != 1 || filepath.Base(found.Files[0]) != "keep.py" {
		t.Errorf("excludes not applied: %v", found.Files)
	}
}
