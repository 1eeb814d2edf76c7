// Package htmlconv turns generated Markdown files into HTML, either by
// invoking an external converter program or with the built-in Markdown
// engine.
package htmlconv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/yuin/goldmark"
)

// Converter produces an HTML file next to an existing Markdown file.
type Converter interface {
	Convert(ctx context.Context, markdownPath, htmlPath string) error
}

// External shells out to a converter program, passing the Markdown path as
// the only argument and capturing stdout into the HTML file.
type External struct {
	Program string
}

// Resolve looks the program up on PATH the way the shell would.
func (e External) Resolve() (string, error) {
	path, err := exec.LookPath(e.Program)
	if err != nil {
		return "", fmt.Errorf("%s program does not exist", e.Program)
	}
	return path, nil
}

func (e External) Convert(ctx context.Context, markdownPath, htmlPath string) error {
	program, err := e.Resolve()
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, program, markdownPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s %s: %w: %s", e.Program, markdownPath, err, msg)
		}
		return fmt.Errorf("%s %s: %w", e.Program, markdownPath, err)
	}
	return os.WriteFile(htmlPath, stdout.Bytes(), 0o644)
}

// Builtin converts with goldmark, used when no external program is
// configured.
type Builtin struct{}

func (Builtin) Convert(ctx context.Context, markdownPath, htmlPath string) error {
	src, err := os.ReadFile(markdownPath)
	if err != nil {
		return err
	}
	html, err := Render(src)
	if err != nil {
		return err
	}
	return os.WriteFile(htmlPath, html, 0o644)
}

// Render converts Markdown text to HTML in memory.
func Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(markdown, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
