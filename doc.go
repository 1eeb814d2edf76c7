// # docstrex
//
// `docstrex` (DOCument STRing EXtract) scans Python source files, extracts
// the docstrings of modules, classes, and functions, and writes one
// structured Markdown document per directory. Extraction is purely static:
// the Python source is parsed as text, never imported or executed, so the
// tool is safe to run on untrusted trees.
//
// Key capabilities:
//
//   - scan individual `.py` files and/or directories containing them; with
//     no arguments the current working directory is scanned.
//   - treat a directory holding an `__init__.py` as a Python package and
//     lead the generated document with the package docstring.
//   - emit a numbered table of contents whose entries link to anchored
//     documentation sections ("1", "1.1", "1.1.1" numbering; anchors of the
//     form `module--class--function`).
//   - normalize docstring indentation so nested code blocks survive, while
//     the common leading indentation is removed.
//   - optionally convert the Markdown to HTML, either via an external
//     converter program (`--convert`) or the built-in Markdown engine.
//   - preview generated documentation over HTTP (`docstrex serve`).
//
// ## Usage
//
//	docstrex [flags] [PY_FILE_OR_DIR ...]
//
// Examples:
//
//   - Document the current directory into README.md:
//
//     docstrex
//
//   - Document a package tree with HTML output via cmark:
//
//     docstrex --html --convert cmark ./src/geometry
//
//   - Preview the generated docs in a browser:
//
//     docstrex serve --addr :8088 ./src/geometry
//
// ## Supported Flags
//
//   - `-o FILE`: the Markdown file name written into each directory
//     (default `README.md`).
//   - `--html`: also convert the generated Markdown into an `.html` sibling.
//   - `--convert PROG`: the external Markdown-to-HTML converter; its stdout
//     is captured into the HTML file. When omitted the built-in engine is
//     used. Converter failures are warnings and never abort Markdown
//     generation.
//   - `--config FILE`: settings file (default `.docstrex.yaml` when
//     present). Flags override file values.
//   - `--self-test`: run the built-in self tests and exit.
//   - `--debug`: enable debug logging.
//
// ## Output Shape
//
// Each generated document reads, in order: the package docstring (when the
// directory is a package), one title plus table of contents block per
// module, then the full documentation body. The table of contents links to
// `<a name="...">` targets whose identifiers join the ancestor names with
// `--`, lowercased, with underscores mapped to hyphens. Discovery order is
// lexicographic by path, so the output is reproducible byte for byte.
//
// ## Errors
//
// Problems found during a run (a directory with no Python files, an
// unwritable output path) are collected and reported together rather than
// aborting at the first one; the process exits non-zero when any were
// collected. A missing or failing HTML converter is only a warning.
package main
