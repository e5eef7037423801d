package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	debugMode bool
	logger    *logrus.Logger
)

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	logger.SetLevel(logrus.WarnLevel)
}

// SetDebugMode switches between verbose output and warnings only.
// Command output goes to stdout, so logs stay on stderr either way.
func SetDebugMode(debug bool) {
	debugMode = debug
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		Debug("Verbose mode enabled")
	} else {
		logger.SetLevel(logrus.WarnLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp:       true,
			DisableLevelTruncation: true,
		})
	}
}

func IsDebugMode() bool {
	return debugMode
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Debug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

func Info(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func Warn(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

func Error(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

func Fatal(format string, v ...interface{}) {
	logger.Fatalf(format, v...)
}

func LogOperation(operation string, start time.Time, err error) {
	duration := time.Since(start)
	if err != nil {
		Debug("Operation '%s' failed after %v: %v", operation, duration, err)
		return
	}
	Debug("Operation '%s' completed in %v", operation, duration)
}

func LogHTTPRequest(method, url string, statusCode int, duration time.Duration) {
	logger.WithFields(logrus.Fields{
		"method":   method,
		"url":      url,
		"status":   statusCode,
		"duration": duration,
	}).Debug("HTTP request")
}
