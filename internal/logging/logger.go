package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 20
	logFileMaxBackups = 10
	logFileMaxAgeDays = 90
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned closer releases the
// log file, if one is used.
func Setup(params LoggerSetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(parseLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Debugln("logging to stdout")
		return io.NopCloser(nil)
	}

	logFile := newRotatingFile(params.LogFileName)
	if params.LogToStdout {
		logrus.SetOutput(teeWriter{os.Stdout, logFile})
		logrus.Debugf("logging to stdout and [%s]", logFile.Filename)
	} else {
		logrus.SetOutput(logFile)
	}
	return logFile
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.SentryDSN,
		Environment:      params.Environment,
		ServerName:       params.SentryServerName,
		TracesSampleRate: 1.0,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry hook installed")
}

func newRotatingFile(name string) *lumberjack.Logger {
	if filepath.Ext(name) != ".log" {
		name += ".log"
	}
	return &lumberjack.Logger{
		Filename:   name,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Compress:   true,
	}
}

// parseLevel falls back to trace for empty or unknown levels.
func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
