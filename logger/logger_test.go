// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package logger

import (
	"bytes"
	"log"
	"testing"
)

func TestStd(t *testing.T) {
	var buf bytes.Buffer
	l := std{log.New(&buf, "", 0)}
	l.Info("resized ", 2)
	l.Infof("resized %d", 4)
	l.Error("full")
	l.Errorf("full at %d", 8)
	want := "I resized 2\nI resized 4\nE full\nE full at 8\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) != Discard {
		t.Errorf("nil logger not replaced")
	}
	if OrDiscard(Std) != Std {
		t.Errorf("logger replaced")
	}
}
