package docmodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsCommonIndent(t *testing.T) {
	lines := Normalize("", "  Hello.\n\n  World.\n")
	assert.Equal(t, []string{"Hello.", "", "World."}, lines)
}

func TestNormalizeCarriageReturns(t *testing.T) {
	lines := Normalize("", "  Hello.\r\n\r\n  World.\r\n")
	assert.Equal(t, []string{"Hello.", "", "World."}, lines)
}

func TestNormalizeMissingDocstring(t *testing.T) {
	assert.Empty(t, Normalize("f", ""))
	assert.Empty(t, Normalize("f", "   \n\t\n  "))
}

func TestNormalizePreservesRelativeIndent(t *testing.T) {
	raw := "Summary line.\n\n    Example:\n        nested code\n    done\n"
	lines := Normalize("", raw)
	assert.Equal(t, []string{
		"Summary line.",
		"",
		"Example:",
		"    nested code",
		"done",
	}, lines)
}

func TestNormalizeTrailingBlankLinesRemoved(t *testing.T) {
	lines := Normalize("", "Only line.\n\n\n")
	assert.Equal(t, []string{"Only line."}, lines)
}

func TestNormalizeStripsNamePrefix(t *testing.T) {
	lines := Normalize("Shape", "Shape: A geometric shape.\n\n    More detail.\n")
	assert.Equal(t, []string{"A geometric shape.", "", "More detail."}, lines)
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := "  First.\n\n      indented block\n  last.\n"
	once := Normalize("", raw)
	twice := Normalize("", strings.Join(once, "\n"))
	assert.Equal(t, once, twice)

	// A normalized docstring has zero common indent among later non-empty lines.
	min := -1
	for _, line := range once[1:] {
		if line == "" {
			continue
		}
		if w := leadingWidth(line); min == -1 || w < min {
			min = w
		}
	}
	assert.Equal(t, 0, min)
}
