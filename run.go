package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/waynegramlich/docstrex/internal/config"
	"github.com/waynegramlich/docstrex/internal/docmodel"
	"github.com/waynegramlich/docstrex/internal/htmlconv"
	"github.com/waynegramlich/docstrex/internal/pysrc"
	"github.com/waynegramlich/docstrex/internal/render"
)

type options struct {
	outfile    string
	html       bool
	convert    string
	configPath string
	selfTest   bool
	debug      bool
}

type cliApp struct {
	stdout io.Writer
	log    *slog.Logger
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if app.log == nil {
		app.log = newLogger(app.opts.debug)
	}
	cfg, err := app.resolveConfig()
	if err != nil {
		return err
	}
	if app.opts.selfTest {
		return runSelfTests(app.stdout, cfg)
	}

	targets, errs := buildTargets(positionals)
	for _, target := range targets {
		errs = append(errs, app.processDirectory(ctx, target, cfg)...)
	}

	for _, msg := range errs {
		fmt.Fprintln(app.stdout, msg)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d problem(s) found", len(errs))
	}
	return nil
}

// resolveConfig loads the optional settings file and lets flags override
// its values.
func (app *cliApp) resolveConfig() (config.Config, error) {
	path := app.opts.configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}
	if app.opts.outfile != "" {
		cfg.Outfile = app.opts.outfile
	}
	if app.opts.convert != "" {
		cfg.Convert = app.opts.convert
	}
	if app.opts.html {
		cfg.HTML = true
	}
	return cfg, nil
}

// target is one directory to document, optionally restricted to the .py
// files named explicitly on the command line.
type target struct {
	dir   string
	all   bool // directory named on the command line, scan it whole
	files []string
}

// buildTargets groups the positional arguments into per-directory targets.
// Explicit .py files are grouped by parent directory; directory arguments
// are scanned whole, even when a file inside them is also named. With no
// arguments the working directory is scanned.
func buildTargets(args []string) ([]target, []string) {
	var errs []string
	dirs := map[string]*target{}
	order := []string{}

	add := func(dir string) *target {
		dir = filepath.Clean(dir)
		if t, ok := dirs[dir]; ok {
			return t
		}
		t := &target{dir: dir}
		dirs[dir] = t
		order = append(order, dir)
		return t
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			add(arg).all = true
		case err == nil && strings.HasSuffix(arg, ".py"):
			t := add(filepath.Dir(arg))
			t.files = append(t.files, filepath.Clean(arg))
		default:
			errs = append(errs, fmt.Sprintf("'%s' is neither a Python file nor a directory", arg))
		}
	}
	if len(dirs) == 0 && len(errs) == 0 {
		add(".")
	}

	sort.Strings(order)
	targets := make([]target, 0, len(order))
	for _, dir := range order {
		t := dirs[dir]
		sort.Strings(t.files)
		targets = append(targets, *t)
	}
	return targets, errs
}

// processDirectory runs the full pipeline for one directory: discover,
// parse, annotate, render, write, and optionally convert to HTML. Problems
// come back as collected error strings; converter trouble is only a
// warning.
func (app *cliApp) processDirectory(ctx context.Context, t target, cfg config.Config) []string {
	var errs []string

	files := t.files
	if t.all || files == nil {
		found, err := pysrc.Discover(t.dir, cfg.Exclude)
		if err != nil {
			return []string{err.Error()}
		}
		files = found.Files
	}

	doc, parseErrs := buildDocument(t.dir, files)
	errs = append(errs, parseErrs...)
	if len(doc.Modules) == 0 && doc.Package == nil {
		return errs
	}
	doc.Annotate()
	markdown := doc.Markdown()

	outPath := filepath.Join(t.dir, cfg.Outfile)
	if !checkFileWritable(outPath) {
		return append(errs, fmt.Sprintf("unable to write to %s", outPath))
	}
	if err := os.WriteFile(outPath, []byte(markdown), 0o644); err != nil {
		return append(errs, fmt.Sprintf("unable to write to %s: %v", outPath, err))
	}
	app.log.Info("wrote markdown", "path", outPath, "modules", len(doc.Modules))

	if cfg.HTML {
		htmlPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".html"
		if err := app.converter(cfg).Convert(ctx, outPath, htmlPath); err != nil {
			app.log.Warn("HTML conversion failed", "path", outPath, "error", err)
		} else {
			app.log.Info("wrote html", "path", htmlPath)
		}
	}
	return errs
}

func (app *cliApp) converter(cfg config.Config) htmlconv.Converter {
	if cfg.Convert != "" {
		return htmlconv.External{Program: cfg.Convert}
	}
	return htmlconv.Builtin{}
}

// buildDocument parses every discovered file into the entity tree. An
// __init__.py becomes the document's package node rather than a module
// chapter.
func buildDocument(dir string, files []string) (*render.Document, []string) {
	var errs []string
	doc := &render.Document{}
	for _, path := range files {
		mod, err := pysrc.ParseFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("unable to read %s: %v", path, err))
			continue
		}
		if mod.IsPackage {
			doc.Package = packageNode(dir, mod)
			continue
		}
		doc.Modules = append(doc.Modules, moduleNode(mod))
	}
	return doc, errs
}

func packageNode(dir string, mod *pysrc.Module) *docmodel.Node {
	name := filepath.Base(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		name = filepath.Base(abs)
	}
	return docmodel.NewNode(docmodel.KindPackage, name, mod.Doc)
}

func moduleNode(mod *pysrc.Module) *docmodel.Node {
	node := docmodel.NewNode(docmodel.KindModule, mod.Name, mod.Doc)
	for _, class := range mod.Classes {
		classNode := node.Add(docmodel.NewNode(docmodel.KindClass, class.Name, class.Doc))
		for _, method := range class.Methods {
			fn := classNode.Add(docmodel.NewNode(docmodel.KindFunction, method.Name, method.Doc))
			fn.Signature = method.Signature
		}
	}
	for _, function := range mod.Functions {
		fn := node.Add(docmodel.NewNode(docmodel.KindFunction, function.Name, function.Doc))
		fn.Signature = function.Signature
	}
	return node
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
