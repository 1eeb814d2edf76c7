// Package pysrc statically extracts docstrings from Python source files.
// Files are parsed as text, never imported or executed, producing the
// (module, classes, functions) shape the documentation pipeline consumes.
package pysrc

import (
	"os"
	"path/filepath"
	"strings"
)

// Module is the extraction result for one .py file.
type Module struct {
	Name      string // file stem, e.g. "shapes" for shapes.py
	Path      string
	IsPackage bool // true for __init__.py
	Doc       string
	Classes   []Class
	Functions []Function // module-level defs
}

// Class is one top-level class definition with its methods in source order.
type Class struct {
	Name    string
	Doc     string
	Methods []Function
}

// Function is one def, with the raw header text kept as its signature.
type Function struct {
	Name      string
	Signature string // e.g. "area(self) -> float"
	Doc       string
}

// ParseFile reads and parses one Python source file.
func ParseFile(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stem := strings.TrimSuffix(filepath.Base(path), ".py")
	mod := Parse(string(data), stem)
	mod.Path = path
	return mod, nil
}

// Parse extracts the documentation model from Python source text. name is
// the module name (the file stem). Underscore-prefixed classes and
// functions are considered private and skipped.
func Parse(src, name string) *Module {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	s := &scanner{lines: strings.Split(src, "\n")}
	mod := &Module{Name: name, IsPackage: name == "__init__"}
	mod.Doc = s.docstring(0)

	for !s.eof() {
		line := s.peek()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "@") {
			s.next()
			continue
		}
		if indentOf(line) != 0 {
			s.consumeStatement()
			continue
		}
		if className, ok := matchClass(trimmed); ok {
			s.skipHeader()
			class := s.parseClassBody(className)
			if !strings.HasPrefix(className, "_") {
				mod.Classes = append(mod.Classes, class)
			}
			continue
		}
		if fn, ok := s.parseDef(0); ok {
			if !strings.HasPrefix(fn.Name, "_") {
				mod.Functions = append(mod.Functions, fn)
			}
			continue
		}
		s.consumeStatement()
	}
	return mod
}

type scanner struct {
	lines []string
	pos   int
}

func (s *scanner) eof() bool    { return s.pos >= len(s.lines) }
func (s *scanner) peek() string { return s.lines[s.pos] }
func (s *scanner) next() string {
	line := s.lines[s.pos]
	s.pos++
	return line
}

// skipHeader consumes a class or def header, which may span several lines
// until its brackets balance and the statement ends with a colon.
func (s *scanner) skipHeader() string {
	var parts []string
	depth := 0
	for !s.eof() {
		code := s.next()
		if idx := strings.Index(code, " #"); idx >= 0 {
			code = code[:idx]
		}
		parts = append(parts, strings.TrimSpace(code))
		depth += strings.Count(code, "(") + strings.Count(code, "[")
		depth -= strings.Count(code, ")") + strings.Count(code, "]")
		if depth <= 0 && strings.HasSuffix(strings.TrimRight(code, " \t"), ":") {
			break
		}
	}
	return strings.Join(parts, " ")
}

// parseClassBody consumes statements indented under a class header and
// collects its docstring and methods. It stops at the first non-blank line
// back at column zero.
func (s *scanner) parseClassBody(name string) Class {
	class := Class{Name: name}
	bodyIndent := -1
	class.Doc = s.docstring(1)

	for !s.eof() {
		line := s.peek()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "@") {
			s.next()
			continue
		}
		indent := indentOf(line)
		if indent == 0 {
			break
		}
		if bodyIndent == -1 {
			bodyIndent = indent
		}
		if indent != bodyIndent {
			s.consumeStatement()
			continue
		}
		if fn, ok := s.parseDef(bodyIndent); ok {
			if !strings.HasPrefix(fn.Name, "_") {
				class.Methods = append(class.Methods, fn)
			}
			continue
		}
		s.consumeStatement()
	}
	return class
}

// parseDef consumes a def at exactly the given indent, returning its name,
// signature, and docstring. Reports false without consuming input when the
// current line is not a def.
func (s *scanner) parseDef(indent int) (Function, bool) {
	line := s.peek()
	if indentOf(line) != indent {
		return Function{}, false
	}
	trimmed := strings.TrimSpace(line)
	name, ok := matchDef(trimmed)
	if !ok {
		return Function{}, false
	}
	header := s.skipHeader()
	fn := Function{
		Name:      name,
		Signature: signatureOf(header),
		Doc:       s.docstring(indent + 1),
	}
	return fn, true
}

// consumeStatement consumes one uninteresting statement line. When the line
// opens a triple-quoted string it does not close, the whole literal is
// consumed, so the interior of a disabled block or an assigned template
// (NAME = """...""") is never mistaken for definitions.
func (s *scanner) consumeStatement() {
	delim := openTripleQuote(s.next())
	if delim == "" {
		return
	}
	for !s.eof() {
		if strings.Contains(s.next(), delim) {
			return
		}
	}
}

// openTripleQuote reports the delimiter of a triple-quoted string a
// statement line opens without closing, or "" when every string on the
// line terminates.
func openTripleQuote(line string) string {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '#' {
			return ""
		}
		if c != '"' && c != '\'' {
			continue
		}
		if i+3 <= len(line) && line[i+1] == c && line[i+2] == c {
			delim := line[i : i+3]
			end := strings.Index(line[i+3:], delim)
			if end < 0 {
				return delim
			}
			i += 3 + end + 2
			continue
		}
		end := strings.IndexByte(line[i+1:], c)
		if end < 0 {
			return ""
		}
		i += 1 + end
	}
	return ""
}

// docstring captures a string literal appearing as the next statement when
// that statement is indented at least minIndent columns. The raw text,
// including the interior indentation Normalize relies on, is returned.
func (s *scanner) docstring(minIndent int) string {
	start := s.pos
	for !s.eof() {
		line := s.peek()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			s.next()
			continue
		}
		if indentOf(line) < minIndent {
			break
		}
		quote, rest, ok := openingQuote(trimmed)
		if !ok {
			break
		}
		s.next()
		if idx := strings.Index(rest, quote); idx >= 0 {
			return rest[:idx]
		}
		var parts []string
		parts = append(parts, rest)
		for !s.eof() {
			body := s.next()
			if idx := strings.Index(body, quote); idx >= 0 {
				parts = append(parts, body[:idx])
				return strings.Join(parts, "\n")
			}
			parts = append(parts, body)
		}
		return strings.Join(parts, "\n")
	}
	s.pos = start
	return ""
}

// openingQuote reports whether a statement begins a string literal,
// returning the closing delimiter and the text after the opening one.
func openingQuote(trimmed string) (quote, rest string, ok bool) {
	stripped := strings.TrimLeft(trimmed, "rRbBuUfF")
	for _, q := range []string{`"""`, "'''", `"`, `'`} {
		if strings.HasPrefix(stripped, q) {
			return q, stripped[len(q):], true
		}
	}
	return "", "", false
}

func matchClass(trimmed string) (string, bool) {
	rest, ok := strings.CutPrefix(trimmed, "class ")
	if !ok {
		return "", false
	}
	name := identifier(rest)
	return name, name != ""
}

func matchDef(trimmed string) (string, bool) {
	trimmed = strings.TrimPrefix(trimmed, "async ")
	rest, ok := strings.CutPrefix(trimmed, "def ")
	if !ok {
		return "", false
	}
	name := identifier(rest)
	return name, name != ""
}

func identifier(s string) string {
	for i, r := range s {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return s[:i]
	}
	return s
}

// signatureOf reduces a (possibly multi-line) def header to "name(args) -> ret".
func signatureOf(header string) string {
	header = strings.TrimSpace(header)
	header = strings.TrimPrefix(header, "async ")
	header = strings.TrimPrefix(header, "def ")
	header = strings.TrimSuffix(strings.TrimSpace(header), ":")
	return strings.Join(strings.Fields(header), " ")
}

func indentOf(line string) int {
	count := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		count++
	}
	return count
}
