// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package log is a small leveled logging facade. Embedders can route messages
// to their own logger with SetLogger; the default writes through the standard
// library logger with a level prefix.
package log

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

// LogLevel is the minimum severity emitted by the default logger.
type LogLevel int32

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = []string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelTrace: "trace",
}

func (l LogLevel) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", int32(l))
}

// ParseLogLevel turns a lowercase level name (error, warn, info, debug, trace)
// into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	for level, name := range levelNames {
		if name == s {
			return LogLevel(level), nil
		}
	}
	return 0, fmt.Errorf("invalid log level %q, must be one of: %s", s, strings.Join(levelNames, ", "))
}

var currentLevel atomic.Int32

func init() {
	currentLevel.Store(int32(LevelWarn))
}

// SetLogLevel sets the minimum level written by the default logger.
func SetLogLevel(l LogLevel) {
	currentLevel.Store(int32(l))
}

// GetLogLevel returns the minimum level written by the default logger.
func GetLogLevel() LogLevel {
	return LogLevel(currentLevel.Load())
}

// SetVerbose switches between trace output and warnings only.
func SetVerbose(v bool) {
	if v {
		SetLogLevel(LevelTrace)
		return
	}
	SetLogLevel(LevelWarn)
}

func enabled(l LogLevel) bool {
	return GetLogLevel() >= l
}

type Logger struct {
	Tracef func(format string, args ...interface{})
	Infof  func(format string, args ...interface{})
	Debugf func(format string, args ...interface{})
	Warnf  func(format string, args ...interface{}) error
	Errorf func(format string, args ...interface{}) error
}

var logger = defaultLogger()

func defaultLogger() Logger {
	return Logger{
		Tracef: defaultTracef,
		Infof:  defaultInfof,
		Debugf: defaultDebugf,
		Warnf:  defaultWarnf,
		Errorf: defaultErrorf,
	}
}

// SetLogger replaces the logging functions. Nil fields silence that level.
func SetLogger(l Logger) {
	logger = l
}

// ResetLogger restores the standard library backed logger.
func ResetLogger() {
	logger = defaultLogger()
}

func Tracef(format string, args ...interface{}) {
	if logger.Tracef != nil {
		logger.Tracef(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if logger.Infof != nil {
		logger.Infof(format, args...)
	}
}

func Debugf(format string, args ...interface{}) {
	if logger.Debugf != nil {
		logger.Debugf(format, args...)
	}
}

func Warnf(format string, args ...interface{}) error {
	if logger.Warnf != nil {
		return logger.Warnf(format, args...)
	}
	return nil
}

func Errorf(format string, args ...interface{}) error {
	if logger.Errorf != nil {
		return logger.Errorf(format, args...)
	}
	return nil
}

var (
	defaultTracef = func(format string, args ...interface{}) {
		if enabled(LevelTrace) {
			log.Printf("[TRACE] "+format, args...)
		}
	}

	defaultInfof = func(format string, args ...interface{}) {
		if enabled(LevelInfo) {
			log.Printf("[INFO] "+format, args...)
		}
	}

	defaultDebugf = func(format string, args ...interface{}) {
		if enabled(LevelDebug) {
			log.Printf("[DEBUG] "+format, args...)
		}
	}

	defaultErrorf = func(format string, args ...interface{}) error {
		if enabled(LevelError) {
			log.Printf("[ERROR] "+format, args...)
		}
		return nil
	}

	defaultWarnf = func(format string, args ...interface{}) error {
		if enabled(LevelWarn) {
			log.Printf("[WARN] "+format, args...)
		}
		return nil
	}
)
