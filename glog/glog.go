// Copyright (c) 2021 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package glog adapts github.com/aristanetworks/glog to logger.Logger.
package glog

import (
	"bytes"
	"io"

	"github.com/aristanetworks/chainmap/logger"
	"github.com/aristanetworks/glog"
)

// Glog routes a map's log lines through glog, implementing logger.Logger.
// Info lines are only emitted when glog's verbosity is at least InfoLevel.
type Glog struct {
	// default value of glog.Level is 0
	InfoLevel glog.Level
}

// New returns a Glog logging info lines at the given verbosity.
func New(level glog.Level) *Glog {
	return &Glog{InfoLevel: level}
}

// Info logs at the info level
func (g *Glog) Info(args ...interface{}) {
	glog.V(g.InfoLevel).Info(args...)
}

// Infof logs at the info level, with format
func (g *Glog) Infof(format string, args ...interface{}) {
	glog.V(g.InfoLevel).Infof(format, args...)
}

// Error logs at the error level
func (g *Glog) Error(args ...interface{}) {
	glog.Error(args...)
}

// Errorf logs at the error level, with format
func (g *Glog) Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}

var _ logger.Logger = (*Glog)(nil)

// SuppressLines adds filtering to glog output so that all lines containing
// any of the supplied substrings are removed. It returns a function that
// reverts the glog output writer to the previous one (without filtering).
// A typical use case is test functions where certain warning or error messages
// are expected, so they only add noise to the output of `go test`.
//
// Example usage:
//
//	import aglog "github.com/aristanetworks/chainmap/glog"
//	func TestGrowth(t *testing.T) {
//		reset := aglog.SuppressLines(
//			`hashmap: resized table`,
//			`hashmap: evicted eldest entry`,
//		)
//		defer reset()
//		...
//	}
func SuppressLines(substrToSuppress ...string) func() {
	bytesToSuppress := make([][]byte, len(substrToSuppress))
	for i, substr := range substrToSuppress {
		bytesToSuppress[i] = []byte(substr)
	}
	fw := &filterWriter{bytesToSuppress: bytesToSuppress}
	prev := glog.SetOutput(fw)
	fw.writer = prev
	return func() {
		fw.flush()
		glog.SetOutput(prev)
	}
}

type filterWriter struct {
	writer          io.Writer
	buffer          bytes.Buffer
	bytesToSuppress [][]byte
	err             error
}

func (fw *filterWriter) Write(data []byte) (n int, err error) {
	if fw.err != nil {
		return 0, fw.err
	}

	fw.buffer.Write(data)
	for bytes.IndexByte(fw.buffer.Bytes(), '\n') != -1 {
		byteLine, readErr := fw.buffer.ReadBytes('\n')
		if readErr != nil {
			break
		}
		skipLine := false
		for _, subslice := range fw.bytesToSuppress {
			if bytes.Contains(byteLine, subslice) {
				skipLine = true
				break
			}
		}
		if !skipLine {
			_, err = fw.writer.Write(byteLine)
			if err != nil {
				fw.err = err
				return len(data), err
			}
		}
	}
	return len(data), nil
}

func (fw *filterWriter) flush() {
	if fw.err != nil {
		return
	}

	if fw.buffer.Available() > 0 {
		fw.buffer.WriteTo(fw.writer)
	}
}
