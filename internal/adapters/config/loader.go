// Package config loads the dxpatch configuration and the board template.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables read on top of the config file.
const (
	EnvPlatformIOHome = "PLATFORMIO_CORE_DIR"
	EnvToolchain      = "DXPATCH_TOOLCHAIN"
	EnvBoardsDir      = "DXPATCH_BOARDS_DIR"
	EnvIndexURL       = "DXPATCH_INDEX_URL"
	EnvCacheDir       = "DXPATCH_CACHE_DIR"
)

const platformIODirName = ".platformio"

// DefaultPacks are the vendor packs covering the AVR Dx and Ex series.
var DefaultPacks = []string{"AVR-Dx_DFP", "AVR-Ex_DFP"}

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger  ports.Logger
	envFile string
	getenv  func(string) string
	getwd   func() (string, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvFile sets the dotenv file loaded before the environment is read.
// An empty name disables dotenv loading.
func WithEnvFile(name string) Option {
	return func(l *Loader) { l.envFile = name }
}

// WithGetenv replaces the environment lookup.
func WithGetenv(getenv func(string) string) Option {
	return func(l *Loader) { l.getenv = getenv }
}

// WithWorkdir fixes the working directory used for defaults.
func WithWorkdir(dir string) Option {
	return func(l *Loader) {
		l.getwd = func() (string, error) { return dir, nil }
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{
		logger:  logger,
		envFile: ".env",
		getenv:  os.Getenv,
		getwd:   os.Getwd,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the configuration at path. A missing file yields the defaults.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	l.loadEnvFile()

	cwd, err := l.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg := l.defaults(cwd)

	file, err := readDxfile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no config file at " + path + ", using defaults")
	case err != nil:
		return nil, err
	default:
		base := filepath.Dir(path)
		if !filepath.IsAbs(base) {
			base = filepath.Join(cwd, base)
		}
		applyFile(cfg, file, base)
	}

	l.applyEnv(cfg)
	return cfg, nil
}

// LoadTemplate reads the board descriptor template at path.
func (l *Loader) LoadTemplate(path string) (*boarddoc.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateReadFailed.Error()), "path", path)
	}

	doc, err := boarddoc.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

func (l *Loader) loadEnvFile() {
	if l.envFile == "" {
		return
	}
	if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("ignoring " + l.envFile + ": " + err.Error())
	}
}

// defaults locates PlatformIO the way its installer does: PLATFORMIO_CORE_DIR, then the
// Windows profile, then HOME, then the working directory.
func (l *Loader) defaults(cwd string) *domain.Config {
	home := l.platformIOHome(cwd)
	return &domain.Config{
		Toolchain: filepath.Join(home, "packages", domain.ToolchainPackage),
		BoardsDir: home,
		Template:  filepath.Join(cwd, domain.TemplateFileName),
		IndexURL:  domain.DefaultIndexURL,
		Packs:     append([]string(nil), DefaultPacks...),
		CacheDir:  filepath.Join(home, ".cache", "dxpatch"),
		Provision: true,
	}
}

func (l *Loader) platformIOHome(cwd string) string {
	if dir := l.getenv(EnvPlatformIOHome); dir != "" {
		return dir
	}
	if profile := l.getenv("USERPROFILE"); profile != "" {
		return filepath.Join(profile, platformIODirName)
	}
	if home := l.getenv("HOME"); home != "" {
		return filepath.Join(home, platformIODirName)
	}
	return cwd
}

func (l *Loader) applyEnv(cfg *domain.Config) {
	if v := l.getenv(EnvToolchain); v != "" {
		cfg.Toolchain = v
	}
	if v := l.getenv(EnvBoardsDir); v != "" {
		cfg.BoardsDir = v
	}
	if v := l.getenv(EnvIndexURL); v != "" {
		cfg.IndexURL = v
	}
	if v := l.getenv(EnvCacheDir); v != "" {
		cfg.CacheDir = v
	}
}

func readDxfile(path string) (*Dxfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Dxfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &file, nil
}

func applyFile(cfg *domain.Config, file *Dxfile, base string) {
	if file.Toolchain != "" {
		cfg.Toolchain = resolve(base, file.Toolchain)
	}
	if file.GCCVersion != "" {
		cfg.GCCVersion = strings.TrimSpace(file.GCCVersion)
	}
	if file.BoardsDir != "" {
		cfg.BoardsDir = resolve(base, file.BoardsDir)
	}
	if file.Template != "" {
		cfg.Template = resolve(base, file.Template)
	}
	if file.IndexURL != "" {
		cfg.IndexURL = file.IndexURL
	}
	if len(file.Packs) > 0 {
		cfg.Packs = file.Packs
	}
	if len(file.Sources) > 0 {
		cfg.Sources = make([]string, 0, len(file.Sources))
		for _, s := range file.Sources {
			cfg.Sources = append(cfg.Sources, resolve(base, s))
		}
	}
	if file.CacheDir != "" {
		cfg.CacheDir = resolve(base, file.CacheDir)
	}
	if file.Provision != nil {
		cfg.Provision = *file.Provision
	}
}

func resolve(base, path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
