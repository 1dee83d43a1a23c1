package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"slate/internal/backend"
	"slate/internal/store"
)

// DefaultDBPath returns the conventional SQLite database location,
// honoring XDG_DATA_HOME and falling back to ~/.local/share.
func DefaultDBPath() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "slate", "tasks.db"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "slate", "tasks.db"), nil
}

// configureLogging wires the process-wide slog handler. Logs go to
// stderr so they never corrupt command output on stdout.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// openBackend opens the storage backend selected by the global flags.
func openBackend(opts *RootOptions) (backend.Backend, error) {
	switch opts.Backend {
	case "sqlite":
		path := opts.DBPath
		if path == "" {
			var err error
			path, err = DefaultDBPath()
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		slog.Debug("opening sqlite backend", "path", path)
		return backend.OpenSQLite(path)
	case "redis":
		slog.Debug("opening redis backend", "url", opts.RedisURL)
		return backend.OpenRedis(opts.RedisURL)
	case "memory":
		slog.Debug("opening memory backend")
		return backend.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", opts.Backend)
	}
}

// withStore runs fn against a task store bound to the configured
// backend, handling logging setup and backend lifecycle. Every
// command that touches the task list goes through here.
func withStore(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, st *store.Store) error) error {
	configureLogging(opts.Verbose)

	b, err := openBackend(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open backend", err)
	}
	defer func() {
		if closeErr := b.Close(); closeErr != nil {
			slog.Error("error closing backend", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return fn(ctx, store.New(ctx, b))
}
