package slog

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/negative-space-software/fileshare-cli/pkg/colors"
)

const levelDebug = 0
const levelInfo = 1
const levelWarn = 2
const levelError = 3
const separator = " - "

type Logger struct {
	logLevel int
	tags     levelTags
	logger   *log.Logger
}

type levelTags struct {
	debug, info, warn, err string
}

func plainTags() levelTags {
	return levelTags{
		debug: "[DEBUG]",
		info:  "[INFO]",
		warn:  "[WARN]",
		err:   "[ERROR]",
	}
}

func coloredTags() levelTags {
	reset := string(colors.Reset)
	return levelTags{
		debug: "[" + string(colors.Log.Debug) + "DEBUG" + reset + "]",
		info:  "[" + string(colors.Log.Info) + "INFO" + reset + "]",
		warn:  "[" + string(colors.Log.Warn) + "WARN" + reset + "]",
		err:   "[" + string(colors.Log.Error) + "ERROR" + reset + "]",
	}
}

func NewLogger(prefix string) *Logger {
	return &Logger{
		logLevel: levelWarn,
		tags:     plainTags(),
		logger:   log.New(os.Stderr, prefix, log.LstdFlags|log.Lmsgprefix),
	}
}

func (l *Logger) WithColors() {
	l.tags = coloredTags()
}

func (l *Logger) WithDebug() {
	l.logLevel = levelDebug
}

func (l *Logger) WithInfo() {
	l.logLevel = levelInfo
}

func (l *Logger) WithWarn() {
	l.logLevel = levelWarn
}

func (l *Logger) WithError() {
	l.logLevel = levelError
}

func (l *Logger) SetLevel(verbosity string) error {
	switch strings.ToUpper(verbosity) {
	case "DEBUG":
		l.WithDebug()
	case "INFO":
		l.WithInfo()
	case "WARN":
		l.WithWarn()
	case "ERROR":
		l.WithError()
	default:
		return fmt.Errorf("incorrect log level, expected one of [DEBUG|INFO|WARN|ERROR]")
	}
	return nil
}

func (l *Logger) Debugf(t string, args ...interface{}) {
	if l.logLevel == levelDebug {
		l.logger.Printf(l.tags.debug+separator+t, args...)
	}
}

func (l *Logger) Infof(t string, args ...interface{}) {
	if l.logLevel <= levelInfo {
		l.logger.Printf(l.tags.info+separator+t, args...)
	}
}

func (l *Logger) Warnf(t string, args ...interface{}) {
	if l.logLevel <= levelWarn {
		l.logger.Printf(l.tags.warn+separator+t, args...)
	}
}

func (l *Logger) Errorf(t string, args ...interface{}) {
	if l.logLevel <= levelError {
		l.logger.Printf(l.tags.err+separator+t, args...)
	}
}
