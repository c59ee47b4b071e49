// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"context"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config describes how to listen for admin/search HTTP traffic.
type Config struct {
	// Address is the "host:port" the server listens on.
	Address string
}

// Server wraps the admin/search mux.Router with combined access
// logging and a graceful Stop, mirroring the teacher's server.Config
// / NewDefaultServer / Start shape for its MySQL listener.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewServer builds a Server listening on cfg.Address, logging every
// request in the Apache combined log format to out.
func NewServer(cfg Config, searcher *Searcher, out *os.File) (*Server, error) {
	if out == nil {
		out = os.Stdout
	}

	router := NewRouter(searcher)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{Handler: handlers.CombinedLoggingHandler(out, router)},
		listener:   ln,
	}, nil
}

// Start serves until the listener is closed or Stop is called. It
// blocks the calling goroutine, same as the teacher's *server.Server.
func (s *Server) Start() error {
	err := s.httpServer.Serve(s.listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Addr is the server's bound "host:port", useful when Config.Address
// uses the ":0" ephemeral-port form.
func (s *Server) Addr() string { return s.listener.Addr().String() }

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
