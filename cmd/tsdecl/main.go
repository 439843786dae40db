package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/broady/tsdecl"
	"github.com/broady/tsdecl/manifest"
	"github.com/broady/tsdecl/sink"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate TypeScript files from a declaration manifest."`
	Check   CheckCmd   `cmd:"" help:"Validate a manifest and render it without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Manifest    string   `arg:"" type:"existingfile" help:"Declaration manifest (YAML)."`
	Out         string   `help:"Output directory for generated files." short:"o" default:"."`
	Option      []string `help:"Override a manifest option (key=value)." short:"O"`
	NoOverwrite bool     `help:"Fail instead of replacing existing files."`
}

func (c *GenCmd) Run(ctx context.Context, log *zap.Logger) error {
	g, err := load(c.Manifest, c.Option, log)
	if err != nil {
		return err
	}

	out := sink.NewFilesystemSink(c.Out)
	out.Overwrite = !c.NoOverwrite

	res, err := g.ToSink(ctx, out)
	if err != nil {
		return err
	}
	for _, f := range res.Files {
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", f.Path, f.Size)
	}
	return nil
}

type CheckCmd struct {
	Manifest string   `arg:"" type:"existingfile" help:"Declaration manifest (YAML)."`
	Option   []string `help:"Override a manifest option (key=value)." short:"O"`
}

func (c *CheckCmd) Run(ctx context.Context, log *zap.Logger) error {
	g, err := load(c.Manifest, c.Option, log)
	if err != nil {
		return err
	}

	files, _, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(os.Stderr, "ok %s\n", p)
	}
	return nil
}

// load reads the manifest, applies option overrides and builds a generator.
func load(path string, overrides []string, log *zap.Logger) (*tsdecl.Generator, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	if err := m.Options.Override(overrides); err != nil {
		return nil, err
	}
	g, err := tsdecl.FromManifest(m)
	if err != nil {
		return nil, err
	}
	log.Debug("manifest loaded", zap.String("path", path), zap.Int("files", len(g.Files())))
	return g.Logger(log), nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("tsdecl"),
		kong.Description("Render TypeScript declarations from declaration manifests."),
		kong.UsageOnError(),
	)

	log, err := newLogger(cli.Verbose)
	kctx.FatalIfErrorf(errors.Wrap(err, "init logger"))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	err = kctx.Run(log)
	kctx.FatalIfErrorf(err)
}
