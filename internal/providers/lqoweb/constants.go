package lqoweb

import "time"

const (
	// Name tags log lines and metrics emitted for this provider.
	Name = "lqoweb"

	defaultHTTPTimeout = 15 * time.Second

	// cacheBusterParam defeats intermediary caches the way the page does,
	// by stamping each request with the current epoch milliseconds.
	cacheBusterParam = "ts"

	maxErrorBody = 512
)
