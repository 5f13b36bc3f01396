package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Logger verbosity levels, most verbose first.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] %{level:.4s}%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the leveled logger handed out to each package.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Redirect all loggers to the given sink, preserving the current verbosity.
// Tests use this to capture or silence output.
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

// Set the verbosity for all loggers.
func SetLevel(level Level) {
	switch level {
	case Debug:
		leveledBackend.SetLevel(logging.DEBUG, "")
	case Info:
		leveledBackend.SetLevel(logging.INFO, "")
	case Notice:
		leveledBackend.SetLevel(logging.NOTICE, "")
	case Warning:
		leveledBackend.SetLevel(logging.WARNING, "")
	case Error:
		leveledBackend.SetLevel(logging.ERROR, "")
	}
}

func init() {
	SetSink(os.Stdout)
}
