// Package tsdecl generates TypeScript declaration files from IR records.
//
// Each declaration is rendered independently by the typescript package and
// written to an output sink. Many declarations can be generated at once:
//
//	res, err := tsdecl.FromDeclarations(
//	    tsdecl.File{Path: "models/status.ts", Decl: ir.NewStringUnion("Status", "Active", "Inactive")},
//	    tsdecl.File{Path: "models/index.ts", Decl: ir.NewBarrel(ir.ExportAll("./status"))},
//	).ToDir(ctx, "./src/generated")
package tsdecl

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/broady/tsdecl/ir"
	"github.com/broady/tsdecl/sink"
	"github.com/broady/tsdecl/typescript"
)

// File pairs an output path with the declaration it holds.
type File struct {
	// Path is relative to the sink root, using / separators.
	Path string

	// Decl is rendered into the file.
	Decl ir.Declaration
}

// Config holds the configuration for batch generation.
type Config struct {
	// Format controls indentation and layout.
	Format typescript.Config

	// LineEnding is "lf" (default) or "crlf".
	LineEnding string

	// Concurrency limits how many files render at once. 0 means no limit.
	Concurrency int

	// Logger receives progress records. Default: no-op.
	Logger *zap.Logger
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written, in input order.
	Files []OutputFile

	// Duration is the wall time of the run.
	Duration time.Duration
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Kind is the kind of declaration the file holds.
	Kind ir.DeclarationKind

	// Size is the number of bytes written.
	Size int64
}

// Generate renders every file and writes it to out. Files render
// concurrently; the first failure cancels the rest and is returned.
// Duplicate paths are rejected before anything is written.
func Generate(ctx context.Context, files []File, out sink.OutputSink, cfg *Config) (*GenerateResult, error) {
	if out == nil {
		return nil, errors.Wrap(ir.ErrInvalidArgument, "output sink is required")
	}
	cfg = applyConfigDefaults(cfg)
	log := cfg.Logger

	if err := checkPaths(files); err != nil {
		return nil, err
	}

	if _, err := sink.Normalize(nil, cfg.LineEnding); err != nil {
		return nil, errors.Mark(err, ir.ErrInvalidArgument)
	}

	gen := typescript.New(cfg.Format)
	start := time.Now()

	results := make([]OutputFile, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := gen.Generate(f.Decl)
			if err != nil {
				return errors.Wrapf(err, "%s", f.Path)
			}
			content, err := sink.Normalize([]byte(text), cfg.LineEnding)
			if err != nil {
				return errors.Wrapf(err, "normalize %s", f.Path)
			}
			if err := out.WriteFile(gctx, f.Path, content); err != nil {
				return errors.Wrapf(err, "write %s", f.Path)
			}
			results[i] = OutputFile{Path: f.Path, Kind: f.Decl.Kind(), Size: int64(len(content))}
			log.Debug("generated",
				zap.String("path", f.Path),
				zap.Stringer("kind", f.Decl.Kind()),
				zap.String("name", f.Decl.DeclName()),
				zap.Int("bytes", len(content)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("generation failed", zap.Error(err))
		return nil, err
	}

	res := &GenerateResult{Files: results, Duration: time.Since(start)}
	log.Info("generation complete",
		zap.Int("files", len(results)),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

// checkPaths rejects missing declarations and invalid or duplicate paths.
func checkPaths(files []File) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if err := sink.ValidatePath(f.Path); err != nil {
			return err
		}
		if seen[f.Path] {
			return errors.Wrapf(ir.ErrInvalidArgument, "duplicate output path %q", f.Path)
		}
		seen[f.Path] = true
		if f.Decl == nil {
			return errors.Wrapf(ir.ErrInvalidArgument, "%s: declaration is required", f.Path)
		}
	}
	return nil
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	var result Config
	if cfg != nil {
		result = *cfg
	}
	if result.LineEnding == "" {
		result.LineEnding = sink.LineEndingLF
	}
	if result.Logger == nil {
		result.Logger = zap.NewNop()
	}
	return &result
}
