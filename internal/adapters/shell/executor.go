// Package shell runs external programs and provisions the toolchain with them.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command with the process environment plus cmd.Env.
// Output lines go to the logger, stdout at info and stderr at warn level, and to the
// telemetry vertex carried by ctx, if any.
func (e *Executor) Execute(ctx context.Context, c domain.Command) error {
	if c.Name == "" {
		return nil
	}

	env := resolveEnvironment(os.Environ(), c.Env)

	executable := c.Name
	if !filepath.IsAbs(c.Name) {
		if lp, err := lookPath(c.Name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, c.Args...) //nolint:gosec // command is built by the caller
	// Keep the name as invoked in Args[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = c.Name
	}
	cmd.Dir = c.Dir
	cmd.Env = env

	stdout := &logWriter{emit: e.logger.Info}
	stderr := &logWriter{emit: e.logger.Warn}
	cmd.Stdout, cmd.Stderr = stdout, stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(stderr, v.Stderr())
	}

	err := cmd.Run()
	stdout.Flush()
	stderr.Flush()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(append([]string{c.Name}, c.Args...), " "))
		return zerr.With(wrapped, "exit_code", exitCode)
	}
	return nil
}

// logWriter forwards complete lines to emit; a trailing partial line is kept until Flush.
type logWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Put the partial line back.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emitLine(line)
	}
	return len(p), nil
}

// Flush emits the remaining partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emitLine(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emitLine(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line != "" {
		w.emit(line)
	}
}

// resolveEnvironment applies overrides on top of the system environment.
func resolveEnvironment(sysEnv, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range slices.Concat(sysEnv, overrides) {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
