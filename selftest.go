package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/waynegramlich/docstrex/internal/config"
	"github.com/waynegramlich/docstrex/internal/docmodel"
	"github.com/waynegramlich/docstrex/internal/htmlconv"
	"github.com/waynegramlich/docstrex/internal/render"
)

type selfTest struct {
	name string
	ok   func() bool
}

// runSelfTests exercises the environment-sensitive parts of the pipeline
// (writability probes, converter lookup) plus fixed fixtures for the
// normalizer, annotator, and renderer, reporting one PASS/FAIL line each.
func runSelfTests(w io.Writer, cfg config.Config) error {
	tests := []selfTest{
		{"writable temp file", func() bool {
			return checkFileWritable(filepath.Join(os.TempDir(), "docstrex-selftest.md"))
		}},
		{"directory is not writable as a file", func() bool {
			return !checkFileWritable(os.TempDir())
		}},
		{"missing parent directory rejected", func() bool {
			return !checkFileWritable("/no-such-docstrex-dir/out.md")
		}},
		{"normalizer strips common indent", func() bool {
			got := docmodel.Normalize("", "  Hello.\n\n  World.\n")
			return slices.Equal(got, []string{"Hello.", "", "World."})
		}},
		{"annotator anchors and numbers", selfTestAnnotator},
		{"table of contents anchors resolve", selfTestRoundTrip},
	}
	if cfg.Convert != "" {
		tests = append(tests, selfTest{
			fmt.Sprintf("converter %s resolves", cfg.Convert),
			func() bool {
				_, err := htmlconv.External{Program: cfg.Convert}.Resolve()
				return err == nil
			},
		})
	}

	failed := 0
	for _, test := range tests {
		status := "PASS"
		if !test.ok() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "self-test %s: %s\n", status, test.name)
	}
	if failed > 0 {
		return fmt.Errorf("%d self-test(s) failed", failed)
	}
	return nil
}

func selfTestAnnotator() bool {
	m := docmodel.NewNode(docmodel.KindModule, "m", "")
	c := m.Add(docmodel.NewNode(docmodel.KindClass, "C", ""))
	f := c.Add(docmodel.NewNode(docmodel.KindFunction, "f", ""))
	docmodel.Annotate(m, "", "1")
	return m.Anchor == "m" && c.Anchor == "m--c" && f.Anchor == "m--c--f" &&
		m.Number == "1" && c.Number == "1.1" && f.Number == "1.1.1"
}

func selfTestRoundTrip() bool {
	m := docmodel.NewNode(docmodel.KindModule, "sample_module", "sample_module: Fixture.")
	c := m.Add(docmodel.NewNode(docmodel.KindClass, "Widget", "Widget: Fixture class."))
	c.Add(docmodel.NewNode(docmodel.KindFunction, "spin", "Spin the widget."))
	doc := &render.Document{Modules: []*docmodel.Node{m}}
	doc.Annotate()
	out := doc.Markdown()

	targets := map[string]bool{}
	for _, match := range regexp.MustCompile(`<a name="([^"]+)"></a>`).FindAllStringSubmatch(out, -1) {
		targets[match[1]] = true
	}
	for _, match := range regexp.MustCompile(`\]\(#([^)]+)\)`).FindAllStringSubmatch(out, -1) {
		if !targets[match[1]] {
			return false
		}
	}
	return strings.Contains(out, "## Table of Contents:")
}
