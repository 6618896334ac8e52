package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
org: acme
repos:
  - acme/core
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "acme", cfg.Org)
	require.Equal(t, []string{"acme/core"}, cfg.Repos)
	require.Empty(t, cfg.Users)
	require.Equal(t, 25, cfg.MaxPRsPerRepo)
	require.Equal(t, 200, cfg.MaxTotalPRs)
	require.Equal(t, 500, cfg.MaxSearchResultsPerUser)
}

func TestLoadFullDocument(t *testing.T) {
	path := writeConfig(t, `
org: acme
repos:
  - acme/core
  - acme/tools
users:
  - bob
  - "@carol"
max_prs_per_repo: 5
max_total_prs: 50
max_search_results_per_user: 100
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []string{"acme/core", "acme/tools"}, cfg.Repos)
	require.Equal(t, []string{"bob", "@carol"}, cfg.Users)
	require.Equal(t, 5, cfg.MaxPRsPerRepo)
	require.Equal(t, 50, cfg.MaxTotalPRs)
	require.Equal(t, 100, cfg.MaxSearchResultsPerUser)
}

func TestLoadUsersOnly(t *testing.T) {
	path := writeConfig(t, `
org: acme
users:
  - bob
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Repos)
	require.Equal(t, []string{"bob"}, cfg.Users)
}

func TestLoadMissingOrg(t *testing.T) {
	path := writeConfig(t, `
repos:
  - acme/core
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "org is required")
}

func TestLoadNoSources(t *testing.T) {
	path := writeConfig(t, `
org: acme
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "at least one of repos or users")
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	require.ErrorContains(t, err, "config path is required")
}

func TestLoadUnreadablePath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config")
}

func TestLoadMalformedDocument(t *testing.T) {
	path := writeConfig(t, "org: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
}
