// Package app implements the application layer for dxpatch.
package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/charmbracelet/bubbletea"
	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/dxpatch/internal/engine/planner"
	"go.trai.ch/dxpatch/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	discoverer   ports.PackDiscoverer
	planner      *planner.Planner
	scheduler    *scheduler.Scheduler
	installer    ports.Installer
	boards       ports.BoardWriter
	store        ports.InstallStateStore
	index        ports.PackIndex
	fetcher      ports.PackFetcher
	provisioner  ports.ToolchainProvisioner
	telemetry    ports.Telemetry
	logger       ports.Logger
	teaOptions   []tea.ProgramOption
	parallelism  int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer ports.PackDiscoverer,
	plan *planner.Planner,
	sched *scheduler.Scheduler,
	installer ports.Installer,
	boards ports.BoardWriter,
	store ports.InstallStateStore,
	index ports.PackIndex,
	fetcher ports.PackFetcher,
	provisioner ports.ToolchainProvisioner,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		discoverer:   discoverer,
		planner:      plan,
		scheduler:    sched,
		installer:    installer,
		boards:       boards,
		store:        store,
		index:        index,
		fetcher:      fetcher,
		provisioner:  provisioner,
		telemetry:    telemetry,
		logger:       logger,
		parallelism:  runtime.NumCPU(),
	}
}

// WithTeaOptions adds bubbletea program options used by the progress view.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithParallelism sets how many files are copied at once.
func (a *App) WithParallelism(n int) *App {
	if n > 0 {
		a.parallelism = n
	}
	return a
}

// SetVerbose enables debug logging.
func (a *App) SetVerbose(enabled bool) {
	a.logger.SetVerbose(enabled)
}

// Options carries the command line settings of one run.
// Empty values leave the configuration untouched.
type Options struct {
	ConfigPath string
	Toolchain  string
	GCCVersion string
	BoardsDir  string
	Template   string
	Sources    []string
	// OutDir overrides the boards directory for Boards.
	OutDir string
	// Progress renders the run in a live terminal view.
	Progress bool
	// NoProvision disables toolchain installation for this run.
	NoProvision bool
}

// Counts summarizes planned instructions per class.
type Counts struct {
	Headers        int `json:"headers"`
	LinkArtifacts  int `json:"link_artifacts"`
	SpecsFragments int `json:"specs_fragments"`
	Boards         int `json:"boards"`
}

// Result is the outcome of a run.
type Result struct {
	Config       *domain.Config
	Sources      []string
	Instructions []domain.InstallInstruction
	// Boards holds the emitted descriptors, sorted by device name.
	Boards []domain.BoardDescriptor
	Counts Counts
	// BoardPaths lists the descriptor files written.
	BoardPaths []string
	Copied     int
	Unchanged  int
	Removed    int
}

// loadConfig reads the configuration and applies opts on top of it.
func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Toolchain != "" {
		cfg.Toolchain = opts.Toolchain
	}
	if opts.GCCVersion != "" {
		cfg.GCCVersion = opts.GCCVersion
	}
	if opts.BoardsDir != "" {
		cfg.BoardsDir = opts.BoardsDir
	}
	if opts.Template != "" {
		cfg.Template = opts.Template
	}
	if len(opts.Sources) > 0 {
		cfg.Sources = opts.Sources
	}
	if opts.NoProvision {
		cfg.Provision = false
	}
	return cfg, nil
}

// resolveSources returns the extracted pack directories to install from,
// fetching the configured packs when no directory is given.
func (a *App) resolveSources(ctx context.Context, tel ports.Telemetry, cfg *domain.Config) ([]string, error) {
	if len(cfg.Sources) > 0 {
		return cfg.Sources, nil
	}
	if len(cfg.Packs) == 0 {
		return nil, domain.ErrNoSources
	}
	return a.fetchPacks(ctx, tel, cfg)
}

func (a *App) fetchPacks(ctx context.Context, tel ports.Telemetry, cfg *domain.Config) ([]string, error) {
	dirs := make([]string, 0, len(cfg.Packs))
	for _, name := range cfg.Packs {
		dir, err := a.fetchPack(ctx, tel, cfg, name)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

func (a *App) fetchPack(ctx context.Context, tel ports.Telemetry, cfg *domain.Config, name string) (dir string, err error) {
	ctx, vertex := tel.Record(ctx, "fetch "+name)
	defer func() { vertex.Complete(err) }()

	release, err := a.index.Lookup(ctx, cfg.IndexURL, name)
	if err != nil {
		return "", err
	}
	a.logger.Info("found " + release.Name + " " + release.Version)

	archive := filepath.Join(cfg.CacheDir, release.ArchiveName())
	if err := a.fetcher.Download(ctx, release.URL, archive); err != nil {
		return "", err
	}

	dir = filepath.Join(cfg.CacheDir, release.DirName())
	if err := a.fetcher.Extract(archive, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// discover collects the package files of every source, in source order.
func (a *App) discover(ctx context.Context, tel ports.Telemetry, sources []string) ([]domain.PackageFile, error) {
	var files []domain.PackageFile
	for _, dir := range sources {
		_, vertex := tel.Record(ctx, "discover "+filepath.Base(dir))
		found, err := a.discoverer.Discover(dir)
		vertex.Complete(err)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("discovered " + strconv.Itoa(len(found)) + " files in " + dir)
		files = append(files, found...)
	}
	return files, nil
}

func (a *App) loadTemplate(cfg *domain.Config) (*boarddoc.Document, error) {
	return a.configLoader.LoadTemplate(cfg.Template)
}

func toolchainExists(root string) bool {
	info, err := os.Stat(root)
	return err == nil && info.IsDir()
}
