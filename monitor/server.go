// Copyright (C) 2015  Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package monitor exports the table statistics of hash maps to prometheus and
// expvar, and provides an embedded HTTP server to expose them.
package monitor

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/aristanetworks/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents a monitoring server
type Server interface {
	Run()
	Handler() http.Handler
}

// server contains information for the monitoring server
type server struct {
	// Server name e.g. host[:port]
	serverName string
	mux        *http.ServeMux
}

// NewMonitorServer creates a monitoring server serving the metrics gathered
// by g on /metrics, next to /debug/vars, /debug/pprof and /debug/loglevel.
func NewMonitorServer(serverName string, g prometheus.Gatherer) Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug", debugHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/loglevel", setLogVerbosity)
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return &server{
		serverName: serverName,
		mux:        mux,
	}
}

func debugHandler(w http.ResponseWriter, r *http.Request) {
	indexTmpl := `<html>
	<head>
	<title>/debug</title>
	</head>
	<body>
	<p>/debug</p>
	<div><a href="/debug/vars">vars</a></div>
	<div><a href="/debug/pprof/">pprof</a></div>
	<div><a href="/metrics">metrics</a></div>
	</body>
	</html>
	`
	fmt.Fprint(w, indexTmpl)
}

func (s *server) Handler() http.Handler {
	return s.mux
}

// Run sets up the HTTP server and any handlers
func (s *server) Run() {
	err := http.ListenAndServe(s.serverName, s.mux)
	if err != nil {
		glog.Errorf("Could not start monitor server: %s", err)
	}
}
