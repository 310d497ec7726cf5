package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/saltyorg/stockroom/internal/config"
)

const (
	DefaultLogFilePath = "stockroom.log"
	DefaultMaxSizeMB   = 10
	DefaultMaxBackups  = 3
	DefaultMaxAgeDays  = 30
	DefaultCompress    = true

	timeFormat = "2006-01-02 15:04:05"
)

// Setting keys read through config.Loader.
const (
	KeyLevel      = "log.level"
	KeyMaxSizeMB  = "log.max_size_mb"
	KeyMaxBackups = "log.max_backups"
	KeyMaxAgeDays = "log.max_age_days"
	KeyCompress   = "log.compress"
)

// Init installs a console-only logger before the database is available.
// Console output goes to stderr so it never mixes with the menu on stdout.
func Init(verbosity int) {
	applyLevel(LevelForVerbosity(verbosity))
	log.Logger = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger()
}

// Apply sets the global log level and output writers (console + rotating file).
// A stored log.level setting takes precedence over level.
// logFilePath is the destination file; when empty, DefaultLogFilePath is used.
func Apply(level string, loader *config.Loader, logFilePath string) {
	applyLevel(loader.String(KeyLevel, level))
	applyOutputs(loader, logFilePath, os.Stderr)
}

// LevelForVerbosity maps the -v count to a level name.
func LevelForVerbosity(verbosity int) string {
	switch {
	case verbosity <= 0:
		return "info"
	case verbosity == 1:
		return "debug"
	default:
		return "trace"
	}
}

func applyLevel(level string) {
	switch level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}
}

func applyOutputs(loader *config.Loader, logFilePath string, console io.Writer) {
	maxSize := DefaultMaxSizeMB
	if val := loader.Int(KeyMaxSizeMB, DefaultMaxSizeMB); val > 0 {
		maxSize = val
	}
	maxBackups := DefaultMaxBackups
	if val := loader.Int(KeyMaxBackups, DefaultMaxBackups); val >= 0 {
		maxBackups = val
	}
	maxAgeDays := DefaultMaxAgeDays
	if val := loader.Int(KeyMaxAgeDays, DefaultMaxAgeDays); val >= 0 {
		maxAgeDays = val
	}
	compress := loader.Bool(KeyCompress, DefaultCompress)

	if logFilePath == "" {
		logFilePath = DefaultLogFilePath
	}

	consoleOutput := consoleWriter(console)
	log.Logger = zerolog.New(consoleOutput).With().Timestamp().Logger()

	if err := ensureLogDir(logFilePath); err != nil {
		log.Error().Err(err).Str("path", logFilePath).Msg("Failed to prepare log directory; logging to console only")
		return
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   compress,
	}

	fileConsole := zerolog.ConsoleWriter{
		Out:        fileWriter,
		TimeFormat: timeFormat,
		NoColor:    true,
	}

	multi := zerolog.MultiLevelWriter(consoleOutput, fileConsole)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()
}

// FilePathForDB returns a log file path that lives alongside the database file.
func FilePathForDB(dbPath string) string {
	if dbPath == "" {
		return DefaultLogFilePath
	}
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return filepath.Join(filepath.Dir(dbPath), DefaultLogFilePath)
	}
	return filepath.Join(filepath.Dir(absDBPath), DefaultLogFilePath)
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
