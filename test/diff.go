// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package test

import (
	"github.com/kylelemons/godebug/pretty"
)

var diffConfig = &pretty.Config{
	Diffable:          true,
	IncludeUnexported: true,
	PrintStringers:    true,
	Formatter:         pretty.DefaultFormatter,
}

// Diff returns the difference of two objects in a human readable format.
// Empty string is returned when there is no difference. Values implementing
// fmt.Stringer are compared through their String method.
func Diff(a, b interface{}) string {
	return diffConfig.Compare(a, b)
}
