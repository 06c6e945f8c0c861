// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "eodl.yaml", `
credentials:
  username: tester
  password: secret
downloads: dl
results: res
timeout_query: 30
max_results: 250
silent: true
exclude_fields:
  - "download*"
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "tester", cfg.Credentials.Username)
	assert.Equal(t, "secret", cfg.Credentials.Password)
	assert.Equal(t, "dl", cfg.Downloads)
	assert.Equal(t, "res", cfg.Results)
	assert.Equal(t, 30*time.Second, cfg.QueryTimeout())
	assert.Equal(t, 250, cfg.MaxResults)
	assert.True(t, cfg.Silent)
	assert.Equal(t, []string{"download*"}, cfg.ExcludeFields)
}

func TestLoad_HCL(t *testing.T) {
	path := writeConfig(t, "eodl.hcl", `
credentials {
  username = "tester"
  password = "secret"
}

downloads   = "dl"
max_results = 100
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "tester", cfg.Credentials.Username)
	assert.Equal(t, "dl", cfg.Downloads)
	assert.Equal(t, 100, cfg.MaxResults)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "eodl.yaml", `
credentials:
  username: tester
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "downloads", cfg.Downloads)
	assert.Equal(t, "results", cfg.Results)
	assert.Equal(t, 60*time.Second, cfg.QueryTimeout())
	assert.Equal(t, 180*time.Second, cfg.OrderTimeout())
	assert.Equal(t, 1000, cfg.MaxResults)
	assert.False(t, cfg.Silent)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := writeConfig(t, "eodl.toml", `whatever = true`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestLoad_UnknownYAMLField(t *testing.T) {
	path := writeConfig(t, "eodl.yaml", `not_a_field: 1`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
}
