// Copyright (c) 2022 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monitor

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aristanetworks/glog"
)

// setGlogV raises or lowers glog's verbosity. Maps logging through a
// chainmap glog adapter emit their resize and eviction lines once the
// verbosity reaches the adapter's InfoLevel.
func setGlogV(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("setGlogV: invalid int: %q", v)
	}
	if n < 0 {
		return fmt.Errorf("setGlogV: negative verbosity: %d", n)
	}
	glog.SetVGlobal(strconv.Itoa(n))
	glog.Infof("monitor: set glog verbosity to %d", n)
	return nil
}

func logErr(w http.ResponseWriter, err string, code int) {
	err = fmt.Sprintf("loglevel error: %v (code %v)", err, code)
	glog.Error(err)
	http.Error(w, err, code)
}

func setLogVerbosity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		logErr(w, "only supports POST method", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		logErr(w, "could not parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	gv := r.Form.Get("glog")
	if gv == "" {
		logErr(w, "bad request: no change", http.StatusBadRequest)
		return
	}
	if err := setGlogV(gv); err != nil {
		logErr(w, "could not set glog: "+err.Error(), http.StatusBadRequest)
		return
	}
	fmt.Fprint(w, "OK\n")
}
