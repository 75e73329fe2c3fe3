package main

import (
	"net"
	"net/http"
	"time"

	"github.com/criptobot/gobot/pkg/logger"
)

func newLoopbackListener() (net.Listener, error) {
	return net.Listen("tcp", "127.0.0.1:0")
}

func serveHTTP(ln net.Listener, handler http.Handler) {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		logger.Errorf("embedded mock server: %v", err)
	}
}
