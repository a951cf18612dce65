package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DEBUG:
		return zerolog.DebugLevel
	case INFO:
		return zerolog.InfoLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	case FATAL:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}

// ParseLevel maps a config or flag value onto a LogLevel, defaulting to INFO.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return DEBUG
	case "warn", "WARN", "warning":
		return WARN
	case "error", "ERROR":
		return ERROR
	case "fatal", "FATAL":
		return FATAL
	default:
		return INFO
	}
}

type ColoredLogger struct {
	verbose bool
	level   LogLevel
	mu      sync.RWMutex
	console io.Writer
	extra   []io.Writer
	zl      zerolog.Logger
	exit    func(int)
}

var globalLogger *ColoredLogger

func init() {
	globalLogger = &ColoredLogger{
		console: os.Stdout,
		level:   INFO,
		exit:    os.Exit,
	}
	globalLogger.rebuild()
}

// rebuild must be called with mu held for writing (or during init).
func (cl *ColoredLogger) rebuild() {
	writers := []io.Writer{consoleWriter(cl.console)}
	writers = append(writers, cl.extra...)

	cl.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	_, isFile := out.(*os.File)
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "06-01-02 15:04:05",
		NoColor:    !isFile,
	}
}

func SetVerbose(verbose bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = verbose
}

func IsVerbose() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.verbose
}

// SetLevel drops messages below level. DEBUG also turns on verbose output.
func SetLevel(level LogLevel) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.level = level
	if level == DEBUG {
		globalLogger.verbose = true
	}
}

// SetWriterForAll replaces the console sink and drops any extra sinks.
func SetWriterForAll(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.console = writer
	globalLogger.extra = nil
	globalLogger.rebuild()
}

// AddWriterForAll adds a raw JSON sink next to the console output, used for --logfile.
func AddWriterForAll(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.extra = append(globalLogger.extra, writer)
	globalLogger.rebuild()
}

// RemoveWriterForAll detaches a sink added with AddWriterForAll.
func RemoveWriterForAll(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	kept := globalLogger.extra[:0]
	for _, w := range globalLogger.extra {
		if w != writer {
			kept = append(kept, w)
		}
	}
	globalLogger.extra = kept
	globalLogger.rebuild()
}

// SetExitFunc swaps the function Fatal calls after logging.
func SetExitFunc(exit func(int)) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.exit = exit
}

func (cl *ColoredLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	if (level == DEBUG && !cl.verbose) || (level != DEBUG && level < cl.level) {
		cl.mu.RUnlock()
		return
	}
	zl := cl.zl
	exit := cl.exit
	cl.mu.RUnlock()

	zl.WithLevel(level.zerologLevel()).Msg(fmt.Sprintf(format, args...))

	if level == FATAL {
		exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	globalLogger.log(FATAL, format, args...)
}

func GetLogFromLevel(level LogLevel) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		globalLogger.log(level, format, args...)
	}
}
