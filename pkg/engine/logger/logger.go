// Libretto: A read-only catalog adapter for Kavita-style media servers.
// Copyright (C) 2025 The Libretto Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger interface for logging operations
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	SetLevel(level Level)
}

// Service implements the Logger interface, writing to an optional log
// file and, when console output is enabled, to stderr
type Service struct {
	level   Level
	logFile string
	file    *os.File
	logger  *log.Logger
	console bool
	mu      sync.Mutex
	pid     int
}

// NewService creates a new logger service
func NewService(logFile string) *Service {
	s := &Service{
		level:   LevelInfo,
		logFile: logFile,
		pid:     os.Getpid(),
	}
	s.updateWriters()
	return s
}

// updateWriters configures the output writers based on current settings
func (s *Service) updateWriters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	writers := make([]io.Writer, 0, 2)

	if s.logFile != "" && s.file == nil {
		dir := filepath.Dir(s.logFile)
		if err := os.MkdirAll(dir, 0755); err == nil {
			if file, err := os.OpenFile(s.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				s.file = file
			}
		}
	}
	if s.file != nil {
		writers = append(writers, s.file)
	}
	if s.console {
		writers = append(writers, os.Stderr)
	}

	var output io.Writer = io.Discard
	if len(writers) > 0 {
		output = io.MultiWriter(writers...)
	}

	// Empty flags since we handle formatting ourselves
	s.logger = log.New(output, "", 0)
}

// SetConsoleOutput mirrors log entries to stderr
func (s *Service) SetConsoleOutput(enabled bool) {
	s.mu.Lock()
	s.console = enabled
	s.mu.Unlock()
	s.updateWriters()
}

// SetLevel sets the minimum log level
func (s *Service) SetLevel(level Level) {
	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
}

// Close closes the log file if open
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// Debug logs a debug message
func (s *Service) Debug(format string, args ...interface{}) {
	s.log(LevelDebug, format, args...)
}

// Info logs an info message
func (s *Service) Info(format string, args ...interface{}) {
	s.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func (s *Service) Warn(format string, args ...interface{}) {
	s.log(LevelWarn, format, args...)
}

// Error logs an error message
func (s *Service) Error(format string, args ...interface{}) {
	s.log(LevelError, format, args...)
}

func (s *Service) log(level Level, format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	now := time.Now()
	timestamp := fmt.Sprintf("%s,%03d",
		now.Format("2006-01-02 15:04:05"),
		now.Nanosecond()/1000000)

	message := fmt.Sprintf(format, args...)
	s.logger.Printf("%s [%d] %-5s - %s", timestamp, s.pid, levelString(level), message)
}

func levelString(level Level) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFile returns the path to the log file
func (s *Service) LogFile() string {
	return s.logFile
}
