package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/waynegramlich/docstrex/internal/preview"
)

const rootLongDesc = `
docstrex (DOCument STRing EXtract) scans Python source files, extracts the
documentation strings of modules, classes, and functions, and writes one
structured Markdown document per directory (README.md by default): a numbered
table of contents whose entries link to anchored documentation sections.

Positional arguments are Python (.py) files or directories containing them;
with no arguments the current directory is scanned. A directory holding an
__init__.py is treated as a Python package, and the package docstring leads
the generated document.

With --html the Markdown is also converted to an .html sibling, either by the
program named with --convert (its stdout is captured) or by the built-in
Markdown engine when no converter is configured. Conversion failures never
abort Markdown generation.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "docstrex [flags] [PY_FILE_OR_DIR ...]",
		Short:         "Extract Python docstrings into Markdown documentation",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outfile, "outfile", "o", "", "Markdown file name written into each directory (default README.md)")
	flags.BoolVar(&app.opts.html, "html", false, "also convert the generated Markdown to HTML")
	flags.StringVar(&app.opts.convert, "convert", "", "external Markdown-to-HTML converter program")
	flags.StringVar(&app.opts.configPath, "config", "", "settings file (default .docstrex.yaml when present)")
	flags.BoolVar(&app.opts.selfTest, "self-test", false, "run the built-in self tests and exit")
	flags.BoolVar(&app.opts.debug, "debug", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newServeCmd(app *cliApp) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [directory]",
		Short: "Preview generated documentation over HTTP",
		Long: strings.TrimSpace(`
Serve a documentation directory so the generated Markdown can be browsed
before publishing. Markdown files are rendered to HTML on the fly.

Example:

  docstrex serve --addr :8088 ./docs
`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&addr, "addr", ":8088", "listen address")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		if app.log == nil {
			app.log = newLogger(app.opts.debug)
		}
		return preview.ListenAndServe(addr, root, app.log)
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for docstrex.

The output should be evaluated by your shell. For example:

  # bash
  docstrex completion bash > /usr/local/etc/bash_completion.d/docstrex

  # zsh
  docstrex completion zsh > "${fpath[1]}/_docstrex"

  # fish
  docstrex completion fish | source

  # PowerShell
  docstrex completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  docstrex gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}

var legacyLongFlagSet = map[string]struct{}{
	"outfile":   {},
	"html":      {},
	"convert":   {},
	"config":    {},
	"self-test": {},
	"debug":     {},
}

// normalizeLegacyArgs rewrites single-dash long flags (-outfile=X) into the
// double-dash form cobra expects.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, arg)
			converted = append(converted, args[i+1:]...)
			if i != len(args)-1 {
				modified = true
			}
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || arg == "-" {
			converted = append(converted, arg)
			continue
		}
		if len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		if idx := strings.Index(arg, "="); idx > 0 {
			name := arg[1:idx]
			if _, ok := legacyLongFlagSet[name]; ok {
				converted = append(converted, "--"+name+arg[idx:])
				modified = true
				continue
			}
		}
		name := arg[1:]
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified && len(converted) == len(args) {
		return args
	}
	return converted
}
