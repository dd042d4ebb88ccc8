/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for sqleval.
// The evaluator only logs at plan time (constant folding), never per row.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level defines log levels
type Level int32

const (
	// DEBUG shows plan-time folding details
	DEBUG Level = iota
	// INFO info level, displays general information
	INFO
	// WARN shows folding failures surfaced at plan time
	WARN
	// ERROR error level, only displays error information
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "debug" or "WARNING" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	}
	return OFF, fmt.Errorf("unknown log level: %s", s)
}

// Logger interface defines basic methods for logging
type Logger interface {
	// Debug records debug level logs
	Debug(format string, args ...interface{})
	// Info records info level logs
	Info(format string, args ...interface{})
	// Warn records warning level logs
	Warn(format string, args ...interface{})
	// Error records error level logs
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
	// Enabled reports whether messages at level are written. Callers use it
	// to skip building expensive messages.
	Enabled(level Level) bool
}

// defaultLogger writes "[time] [LEVEL] [component] message" lines.
type defaultLogger struct {
	level     atomic.Int32
	component string
	logger    *log.Logger
}

// NewLogger creates a new logger
// Parameters:
//   - level: log level
//   - output: output destination, such as os.Stdout, os.Stderr, or file
//
// Example:
//
//	logger := NewLogger(INFO, os.Stdout)
//	logger.Info("engine ready")
func NewLogger(level Level, output io.Writer) Logger {
	return NewComponentLogger("", level, output)
}

// NewComponentLogger creates a logger whose lines are tagged with component,
// e.g. "[evaluator]".
func NewComponentLogger(component string, level Level, output io.Writer) Logger {
	l := &defaultLogger{
		component: component,
		logger:    log.New(output, "", 0), // 使用自定义格式，不使用标准库的前缀
	}
	l.level.Store(int32(level))
	return l
}

// Debug 记录调试级别的日志
func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info 记录信息级别的日志
func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn 记录警告级别的日志
func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error 记录错误级别的日志
func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// SetLevel 设置日志级别，可与日志输出并发调用
func (l *defaultLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *defaultLogger) Enabled(level Level) bool {
	current := Level(l.level.Load())
	return current != OFF && level >= current
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	sb.WriteString("] [")
	sb.WriteString(level.String())
	sb.WriteString("] ")
	if l.component != "" {
		sb.WriteString("[")
		sb.WriteString(l.component)
		sb.WriteString("] ")
	}
	sb.WriteString(fmt.Sprintf(format, args...))
	l.logger.Println(sb.String())
}

// levelLogger applies its own level before delegating, so the wrapped
// logger's level is never changed.
type levelLogger struct {
	level atomic.Int32
	inner Logger
}

// NewLevelLogger wraps inner with an additional level filter. A message is
// written only when both level and inner's own level allow it.
func NewLevelLogger(inner Logger, level Level) Logger {
	l := &levelLogger{inner: inner}
	l.level.Store(int32(level))
	return l
}

func (l *levelLogger) Debug(format string, args ...interface{}) {
	if l.Enabled(DEBUG) {
		l.inner.Debug(format, args...)
	}
}

func (l *levelLogger) Info(format string, args ...interface{}) {
	if l.Enabled(INFO) {
		l.inner.Info(format, args...)
	}
}

func (l *levelLogger) Warn(format string, args ...interface{}) {
	if l.Enabled(WARN) {
		l.inner.Warn(format, args...)
	}
}

func (l *levelLogger) Error(format string, args ...interface{}) {
	if l.Enabled(ERROR) {
		l.inner.Error(format, args...)
	}
}

// SetLevel changes the wrapper's level only
func (l *levelLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *levelLogger) Enabled(level Level) bool {
	current := Level(l.level.Load())
	return current != OFF && level >= current && l.inner.Enabled(level)
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}
func (discardLogger) Enabled(level Level) bool                 { return false }

var (
	defaultMu       sync.RWMutex
	defaultInstance = NewLogger(INFO, os.Stdout)
)

// SetDefault sets the global default logger. A nil logger restores the
// stdout logger at INFO.
func SetDefault(logger Logger) {
	if logger == nil {
		logger = NewLogger(INFO, os.Stdout)
	}
	defaultMu.Lock()
	defaultInstance = logger
	defaultMu.Unlock()
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultInstance
}

// 便捷的全局日志方法

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
