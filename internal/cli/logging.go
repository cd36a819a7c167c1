package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// slogLevel maps a level name to an slog.Level.
func slogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q: use debug, info, warn or error", name)
	}
}

// newLogger builds the run logger. Format "auto" writes text to a terminal
// and JSON otherwise.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := slogLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "auto":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return slog.New(slog.NewTextHandler(w, opts)), nil
		}
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q: use auto, text or json", format)
	}
}

// commandLogger returns the logger for one invocation, tagged with a fresh run id.
func commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), setting(cmd.Flags(), "log-level"), setting(cmd.Flags(), "log-format"))
	if err != nil {
		return nil, err
	}
	return logger.With("run_id", uuid.NewString()), nil
}
