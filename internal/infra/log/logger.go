package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/constants"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New creates the process logger. Output goes to stdout, a rotated file, or both.
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	writer, closer, err := newWriter(logCfg)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return closer.Close()
			},
		})
	}

	return newLogger(writer, logCfg.Pretty, level), nil
}

func newLogger(w io.Writer, pretty bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if pretty {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// newWriter builds the log destination. The returned closer is nil for stdout only.
func newWriter(logCfg config.Log) (io.Writer, io.Closer, error) {
	output := strings.ToLower(strings.TrimSpace(logCfg.Output))
	if output == "" {
		output = constants.LogOutputStdout
	}

	switch output {
	case constants.LogOutputStdout:
		return os.Stdout, nil, nil
	case constants.LogOutputFile, constants.LogOutputBoth:
	default:
		return nil, nil, errors.Errorf("unknown log output: %s", logCfg.Output)
	}

	if logCfg.FilePath == "" {
		return nil, nil, errors.New("log file path is required for file output")
	}
	if err := os.MkdirAll(filepath.Dir(logCfg.FilePath), 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create log directory")
	}

	rotating := &lumberjack.Logger{
		Filename:   logCfg.FilePath,
		MaxSize:    logCfg.MaxSize,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAge,
		Compress:   logCfg.Compress,
	}
	if output == constants.LogOutputFile {
		return rotating, rotating, nil
	}

	return io.MultiWriter(os.Stdout, rotating), rotating, nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
