package docmodel

import "strings"

// Normalize converts a raw docstring into clean lines. The first line only
// loses surrounding whitespace; every later non-empty line loses the
// minimum leading-whitespace width common to those lines, so relative
// indentation (nested code blocks and bullet lists) survives. Trailing
// blank lines are dropped, interior blank lines are kept. A missing or
// whitespace-only docstring yields no lines.
//
// A first line of the form "Name: summary." has the redundant "Name: "
// prefix removed, since the entity name already appears in the rendered
// heading.
func Normalize(name, raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	common := -1
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		if indent := leadingWidth(line); common == -1 || indent < common {
			common = indent
		}
	}
	if common == -1 {
		common = 0
	}

	lines[0] = strings.TrimSpace(lines[0])
	if name != "" {
		lines[0] = strings.TrimPrefix(lines[0], name+": ")
	}
	for i, line := range lines[1:] {
		if len(line) >= common {
			lines[i+1] = line[common:]
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func leadingWidth(line string) int {
	count := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		count++
	}
	return count
}
