// Copyright (c) 2021 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package logger defines the logging interface the hash map engine reports
// table growth and evictions through, without depending on a particular
// logging library.
package logger

import (
	"fmt"
	"log"
)

// Logger is an interface to pass a generic logger without depending on either golang/glog or
// aristanetworks/glog
type Logger interface {
	// Info logs at the info level
	Info(args ...interface{})
	// Infof logs at the info level, with format
	Infof(format string, args ...interface{})
	// Error logs at the error level
	Error(args ...interface{})
	// Errorf logs at the error level, with format
	Errorf(format string, args ...interface{})
}

// Std implements the logger interface using the stdlib "log" package.
var Std Logger = std{log.Default()}

// Discard drops everything. It is the default logger of a map.
var Discard Logger = discard{}

type std struct {
	*log.Logger
}

func (l std) Info(args ...interface{}) {
	l.Output(2, "I "+fmt.Sprint(args...))
}

func (l std) Infof(format string, args ...interface{}) {
	l.Output(2, "I "+fmt.Sprintf(format, args...))
}

func (l std) Error(args ...interface{}) {
	l.Output(2, "E "+fmt.Sprint(args...))
}

func (l std) Errorf(format string, args ...interface{}) {
	l.Output(2, "E "+fmt.Sprintf(format, args...))
}

type discard struct{}

func (discard) Info(args ...interface{})                  {}
func (discard) Infof(format string, args ...interface{})  {}
func (discard) Error(args ...interface{})                 {}
func (discard) Errorf(format string, args ...interface{}) {}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard
	}
	return l
}
