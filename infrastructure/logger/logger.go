package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.Out = output(os.Getenv("ENV"), os.Getenv("LOG_TO_FILE") == "true")
	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	logger.SetLevel(log.DebugLevel)
}

// output picks stdout unless file logging was requested, in which case a
// dated file under logs/ is opened. Any failure falls back to stdout.
func output(env string, toFile bool) io.Writer {
	if !toFile {
		return os.Stdout
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Failed get current working directory: %v, falling back to stdout", err)
		return os.Stdout
	}
	logsDir := filepath.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		log.Warnf("Failed to create logs directory %s: %v, falling back to stdout", logsDir, err)
		return os.Stdout
	}
	filePath := filepath.Join(logsDir, fmt.Sprintf("%s%s.log", time.Now().Format("2006-01-02"), env))
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Warnf("Failed to open log file %s: %v, falling back to stdout", filePath, err)
		return os.Stdout
	}
	return f
}

// SetLevel changes the minimum level written. Unknown or empty names keep
// the current level.
func SetLevel(name string) {
	if name == "" {
		return
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.WithField("level", name).Warn("Unknown log level, keeping current")
		return
	}
	logger.SetLevel(level)
}

// GetLogger returns an entry annotated with the caller's location
func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	functionObject := runtime.FuncForPC(function)
	entry := logger.WithFields(log.Fields{
		"requestId": time.Now().UnixNano() / int64(time.Millisecond),
		"function":  functionObject.Name(),
		"file":      file,
		"line":      line,
	})

	return entry
}
