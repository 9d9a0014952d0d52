package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultLogDir = "logs"

var _ zapcore.WriteSyncer = &LogWriter{}

// LogWriter writes every entry to the run's log file and fans it out to any extra sinks, like the TUI log pane.
type LogWriter struct {
	mutex        sync.Mutex
	logFile      *os.File
	extraLoggers []func(string)
}

// NewLogger creates a console encoded logger writing to a new numbered file in logDir.
func NewLogger(logLevel string, logDir string) (*zap.Logger, *LogWriter, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}

	if logDir == "" {
		logDir = DefaultLogDir
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create log dir %s", logDir)
	}

	files, err := os.ReadDir(logDir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read log dir %s", logDir)
	}
	numFilesInFolder := 0
	for _, file := range files {
		if !file.IsDir() {
			numFilesInFolder++
		}
	}

	logFileName := fmt.Sprintf("bridge-%d-%d.log", numFilesInFolder+1, time.Now().Unix())
	logFile, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open log file")
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logWriter := &LogWriter{
		logFile:      logFile,
		extraLoggers: make([]func(string), 0),
	}

	zapCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(zapCore), logWriter, nil
}

func (w *LogWriter) AddExtraLogger(logger func(string)) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.extraLoggers = append(w.extraLoggers, logger)
}

// Path returns the file the writer logs to.
func (w *LogWriter) Path() string {
	return w.logFile.Name()
}

// Write implements io.Writer interface
func (w *LogWriter) Write(p []byte) (n int, err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	for _, logger := range w.extraLoggers {
		logger(string(p))
	}

	if _, err := w.logFile.Write(p); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Sync implements zapcore.WriteSyncer interface
func (w *LogWriter) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.logFile.Sync()
}

func (w *LogWriter) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.logFile.Close()
}

func ParseLevel(logLevel string) (zap.AtomicLevel, error) {
	switch logLevel {
	case "debug":
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	case "info":
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	case "warn":
		return zap.NewAtomicLevelAt(zapcore.WarnLevel), nil
	case "error":
		return zap.NewAtomicLevelAt(zapcore.ErrorLevel), nil
	default:
		return zap.AtomicLevel{}, errors.Errorf("invalid log level: %q", logLevel)
	}
}
