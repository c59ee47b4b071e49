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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/boolquery/exec"
	"github.com/PrytkovD/oip/config"
)

func TestParseTypeAcceptsKnownTypes(t *testing.T) {
	for _, name := range []string{"int", "float", "string"} {
		_, err := parseType(name)
		require.NoError(t, err)
	}
}

func TestParseTypeRejectsUnknown(t *testing.T) {
	_, err := parseType("blob")
	require.Error(t, err)
}

func TestCreateTableThenInsertThenSelect(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Dir = t.TempDir()

	r := newREPL(cfg, nil)
	require.NoError(t, r.create([]string{"pages", "url:string", "hits:int"}))
	require.NoError(t, r.insert([]string{"pages", "url=http://a", "hits=3"}))
	require.NoError(t, r.selectAll([]string{"pages"}))
}

func TestCreateRejectsMissingArgs(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Dir = t.TempDir()
	r := newREPL(cfg, nil)
	require.Error(t, r.create(nil))
}

func TestInsertRejectsUnknownTable(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Dir = t.TempDir()
	r := newREPL(cfg, nil)
	require.Error(t, r.insert([]string{"nope", "a=1"}))
}

func TestBooleanSearchFindsCrawledToken(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Dir = t.TempDir()
	r := newREPL(cfg, nil)

	r.tokens = exec.NewMemTokenIndex()
	r.pages = exec.NewMemPageIndex()
	require.NoError(t, r.tokens.AddEntry("cat", "http://a"))
	require.NoError(t, r.pages.AddEntry("http://a", "pages/a"))

	require.NoError(t, r.booleanSearch("cat"))
}

func TestBooleanSearchRejectsEmptyQuery(t *testing.T) {
	cfg := config.Default()
	r := newREPL(cfg, nil)
	require.Error(t, r.booleanSearch(""))
}
