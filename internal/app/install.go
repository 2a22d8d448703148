package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dxpatch/internal/adapters/fs" //nolint:depguard // digest format shared with the installer
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Install plans the configured packs, copies every file into the toolchain, writes the board
// descriptors and records what was written. Files that were installed before a failure are
// still recorded, so Clean can remove them.
func (a *App) Install(ctx context.Context, opts Options) (*Result, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	var result *Result
	err = a.runRecorded(ctx, "install", opts.Progress, func(ctx context.Context, tel ports.Telemetry) error {
		if err := a.ensureToolchain(ctx, tel, cfg); err != nil {
			return err
		}

		r, err := a.plan(ctx, tel, cfg, nil)
		if err != nil {
			return err
		}
		result = r

		report, runErr := a.scheduler.Run(ctx, tel, r.Instructions, a.parallelism)
		r.Copied, r.Unchanged = report.Copied, report.Unchanged
		records := report.Records

		written, boardErr := a.writeBoards(ctx, tel, cfg.BoardsDir, r.Boards)
		r.BoardPaths = destinations(written)
		records = append(records, written...)

		if err := a.store.Put(cfg.Toolchain, records); err != nil {
			return errors.Join(runErr, boardErr, err)
		}
		return errors.Join(runErr, boardErr)
	})
	if err != nil {
		return result, err
	}

	a.logger.Info("installed " + plural(result.Copied, "file") +
		" (" + strconv.Itoa(result.Unchanged) + " unchanged), wrote " +
		plural(len(result.BoardPaths), "board"))
	return result, nil
}

// Fetch downloads and extracts the configured packs and returns their directories in Sources.
func (a *App) Fetch(ctx context.Context, opts Options) (*Result, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if len(cfg.Packs) == 0 {
		return nil, domain.ErrNoSources
	}

	var dirs []string
	err = a.runRecorded(ctx, "fetch", opts.Progress, func(ctx context.Context, tel ports.Telemetry) error {
		d, err := a.fetchPacks(ctx, tel, cfg)
		dirs = d
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Result{Config: cfg, Sources: dirs}, nil
}

// Clean removes every file recorded by previous installs and clears the record.
func (a *App) Clean(_ context.Context, opts Options) (*Result, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	records, err := a.store.Get(cfg.Toolchain)
	if err != nil {
		return nil, err
	}

	result := &Result{Config: cfg}
	var errs error
	for _, record := range records {
		if err := a.installer.Remove(record.Destination); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		a.logger.Debug("removed " + record.Destination)
		result.Removed++
	}
	if errs != nil {
		return result, zerr.Wrap(errs, "failed to remove installed files")
	}

	if err := a.store.Clear(cfg.Toolchain); err != nil {
		return result, err
	}
	a.logger.Info("removed " + plural(result.Removed, "file"))
	return result, nil
}

// ensureToolchain provisions the toolchain when enabled, otherwise requires it to exist.
func (a *App) ensureToolchain(ctx context.Context, tel ports.Telemetry, cfg *domain.Config) error {
	if !cfg.Provision {
		if !toolchainExists(cfg.Toolchain) {
			return zerr.With(zerr.Wrap(domain.ErrToolchainNotFound, "toolchain missing"), "root", cfg.Toolchain)
		}
		return nil
	}

	ctx, vertex := tel.Record(ctx, "provision "+domain.ToolchainPackage)
	err := a.provisioner.Ensure(ctx, cfg.Toolchain)
	vertex.Complete(err)
	return err
}

// writeBoards writes every descriptor into dir and returns one record per written file.
func (a *App) writeBoards(
	ctx context.Context,
	tel ports.Telemetry,
	dir string,
	boards []domain.BoardDescriptor,
) ([]domain.InstallRecord, error) {
	_, vertex := tel.Record(ctx, "boards")

	records := make([]domain.InstallRecord, 0, len(boards))
	var errs error
	for _, board := range boards {
		path, err := a.boards.Write(dir, board)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		vertex.Log(domain.LogLevelInfo, board.Name)
		records = append(records, domain.InstallRecord{
			Destination: path,
			Digest:      fs.FormatDigest(xxhash.Sum64(board.Document)),
			Device:      board.Name,
			InstalledAt: time.Now(),
		})
	}

	vertex.Complete(errs)
	return records, errs
}

func destinations(records []domain.InstallRecord) []string {
	paths := make([]string, len(records))
	for i, r := range records {
		paths[i] = r.Destination
	}
	return paths
}
