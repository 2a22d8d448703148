package app

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/dxpatch/internal/engine/planner"
)

// Plan computes the install instructions without touching the toolchain.
func (a *App) Plan(ctx context.Context, opts Options) (*Result, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	var result *Result
	err = a.runRecorded(ctx, "plan", opts.Progress, func(ctx context.Context, tel ports.Telemetry) error {
		r, err := a.plan(ctx, tel, cfg, nil)
		result = r
		return err
	})
	return result, err
}

// Boards synthesizes the descriptor of every device header and writes them to the boards
// directory. No file is installed into the toolchain.
func (a *App) Boards(ctx context.Context, opts Options) (*Result, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	out := cfg.BoardsDir
	if opts.OutDir != "" {
		out = opts.OutDir
	}

	var result *Result
	err = a.runRecorded(ctx, "boards", opts.Progress, func(ctx context.Context, tel ports.Telemetry) error {
		r, err := a.plan(ctx, tel, cfg, isHeader)
		if err != nil {
			return err
		}
		written, err := a.writeBoards(ctx, tel, out, r.Boards)
		r.BoardPaths = destinations(written)
		result = r
		return err
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("wrote " + plural(len(result.BoardPaths), "board") + " to " + out)
	return result, nil
}

// plan discovers the configured sources and plans the files accepted by keep, or all files when keep is nil.
func (a *App) plan(
	ctx context.Context,
	tel ports.Telemetry,
	cfg *domain.Config,
	keep func(domain.PackageFile) bool,
) (*Result, error) {
	tmpl, err := a.loadTemplate(cfg)
	if err != nil {
		return nil, err
	}

	sources, err := a.resolveSources(ctx, tel, cfg)
	if err != nil {
		return nil, err
	}

	files, err := a.discover(ctx, tel, sources)
	if err != nil {
		return nil, err
	}
	if keep != nil {
		kept := files[:0:0]
		for _, f := range files {
			if keep(f) {
				kept = append(kept, f)
			}
		}
		files = kept
	}

	pctx, vertex := tel.Record(ctx, "plan")
	instructions, err := a.planner.Plan(pctx, planner.Request{
		Files:      files,
		Template:   tmpl,
		Toolchain:  cfg.Toolchain,
		GCCVersion: cfg.GCCVersion,
	})
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Config:       cfg,
		Sources:      sources,
		Instructions: instructions,
		Boards:       domain.Boards(instructions),
	}
	result.Counts = count(instructions)
	return result, nil
}

func count(instructions []domain.InstallInstruction) Counts {
	var c Counts
	for _, instr := range instructions {
		switch instr.Class {
		case domain.ClassHeader:
			c.Headers++
		case domain.ClassLinkArtifact:
			c.LinkArtifacts++
		case domain.ClassSpecsFragment:
			c.SpecsFragments++
		}
		if instr.Board != nil {
			c.Boards++
		}
	}
	return c
}

func isHeader(f domain.PackageFile) bool {
	return strings.EqualFold(f.Ext, ".h")
}

func plural(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
