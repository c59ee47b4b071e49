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

// Package web is a small HTTP admin/search surface over the Boolean
// query pipeline, replacing the teacher's MySQL wire server with an
// HTTP one: this engine has no SQL front-end, so "/search" is the
// network entry point instead of a "server.Server" wrapping a
// connection listener.
package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/PrytkovD/oip/boolquery"
	"github.com/PrytkovD/oip/boolquery/exec"
	"github.com/PrytkovD/oip/boolquery/plan"
	"github.com/PrytkovD/oip/boolquery/simplify"
)

// Searcher runs the full Boolean pipeline end to end: tokenize+parse,
// simplify, lower to a physical plan, execute against an index.
type Searcher struct {
	executor   *exec.Executor
	simplifier *simplify.Simplifier
	log        logrus.FieldLogger
}

// NewSearcher builds a Searcher. A nil simplifier uses the package's
// default, OS-entropy-seeded simplifier.
func NewSearcher(executor *exec.Executor, simplifier *simplify.Simplifier, log logrus.FieldLogger) *Searcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Searcher{executor: executor, simplifier: simplifier, log: log}
}

// Search runs query through parse -> simplify -> plan -> execute and
// returns the matching page URLs.
func (s *Searcher) Search(ctx context.Context, query string) ([]string, error) {
	ast, err := boolquery.Parse(query)
	if err != nil {
		return nil, err
	}

	if s.simplifier != nil {
		ast = s.simplifier.Simplify(ast)
	} else {
		ast = simplify.Simplify(ast)
	}

	physical := plan.Plan(ast)
	return s.executor.Execute(ctx, physical)
}

type searchResponse struct {
	Query string   `json:"query"`
	URLs  []string `json:"urls"`
	Count int      `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// searchHandler serves GET /search?q=<boolean query>.
func (s *Searcher) searchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required query parameter \"q\""})
		return
	}

	urls, err := s.Search(r.Context(), q)
	if err != nil {
		s.log.WithError(err).WithField("query", q).Warn("web: search failed")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Query: q, URLs: urls, Count: len(urls)})
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NewRouter builds the admin/search mux.Router: "/healthz" for
// liveness checks, "/search" for the Boolean query pipeline.
func NewRouter(s *Searcher) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", healthzHandler).Methods(http.MethodGet)
	r.HandleFunc("/search", s.searchHandler).Methods(http.MethodGet)
	return r
}
