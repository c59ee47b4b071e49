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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/config"
)

func TestDefaultHasSaneStorageAndWebDefaults(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "./data", cfg.Storage.Dir)
	require.Equal(t, 1000, cfg.Storage.PageSize)
	require.Equal(t, ":8080", cfg.Web.Address)
}

func TestLoadOverridesOnlyFieldsPresentInFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oip.yaml")
	contents := "storage:\n  dir: /tmp/oip-data\nweb:\n  address: :9090\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "/tmp/oip-data", cfg.Storage.Dir)
	require.Equal(t, ":9090", cfg.Web.Address)
	require.Equal(t, 1000, cfg.Storage.PageSize, "unset fields should keep the Default() value")
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
