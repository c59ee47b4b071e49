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

// Package config loads the engine/REPL configuration described in
// spec §3: storage layout, the Boolean query simplifier's search
// bounds, and the admin/search HTTP listen address.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// StorageConfig controls the paginated CSV table store (storage.FilePageStorage).
type StorageConfig struct {
	// Dir is the base directory every table's CSV pages are written under.
	Dir string `yaml:"dir"`
	// PageSize is the default row count per page (table.WithPageSize).
	PageSize int `yaml:"page_size"`
	// CacheSize is the default resident-page cache size (table.WithCacheSize).
	CacheSize int `yaml:"cache_size"`
}

// IndexConfig controls the Boolean query inverted index.
type IndexConfig struct {
	// BoltPath names a bolt database file for the TokenIndex/PageIndex
	// pair (exec.OpenBoltTokenIndex/OpenBoltPageIndex). cmd/oipdb does
	// not read it: the REPL always uses the in-memory implementations.
	BoltPath string `yaml:"bolt_path"`
}

// SimplifierConfig bounds the Boolean AST simplifier's iterative search.
type SimplifierConfig struct {
	// Iterations is a configured search bound that simplify.Simplifier
	// does not read: the simplifier derives its per-round reorder and
	// resimplify count from the size of the input tree.
	Iterations int `yaml:"iterations"`
	// Seed, if non-zero, makes the simplifier's reordering laws
	// deterministic (simplify.NewSeeded). Zero uses OS entropy.
	Seed int64 `yaml:"seed"`
}

// WebConfig controls the admin/search HTTP surface.
type WebConfig struct {
	// Address is the "host:port" the server listens on.
	Address string `yaml:"address"`
}

// Config is the top-level engine/REPL configuration, loaded from a
// single YAML file by cmd/oipdb.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Index      IndexConfig      `yaml:"index"`
	Simplifier SimplifierConfig `yaml:"simplifier"`
	Web        WebConfig        `yaml:"web"`
	CrawlSeeds []string         `yaml:"crawl_seeds"`
}

// Default returns the configuration cmd/oipdb starts from absent a
// config file: an on-disk store under "./data", in-memory indexes, a
// non-deterministic simplifier, and the admin surface on :8080.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Dir:       "./data",
			PageSize:  1000,
			CacheSize: 4,
		},
		Simplifier: SimplifierConfig{
			Iterations: 5,
		},
		Web: WebConfig{
			Address: ":8080",
		},
	}
}

// Load reads and parses a YAML configuration file at path, starting
// from Default so a partial file only overrides what it sets.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
