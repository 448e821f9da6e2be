package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeFixture(t *testing.T, target string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.md"),
		[]byte("[link]("+target+")\n"), 0o644))
	return dir
}

func TestStrictRunFailsOnDeadLink(t *testing.T) {
	srv := newStatusServer(t, http.StatusNotFound)
	dir := writeFixture(t, srv.URL+"/gone")

	cmd := newApp()
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.toml"),
		"--root", dir,
		"--timeout", "2s",
		"--strict",
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of the checked links failed")
}

func TestDefaultRunSucceedsDespiteDeadLink(t *testing.T) {
	srv := newStatusServer(t, http.StatusNotFound)
	dir := writeFixture(t, srv.URL+"/gone")

	cmd := newApp()
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.toml"),
		"--root", dir,
		"--timeout", "2s",
	})

	assert.NoError(t, cmd.Execute())
}

func TestStrictRunSucceedsWhenAllValid(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK)
	dir := writeFixture(t, srv.URL+"/ok")

	cmd := newApp()
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "absent.toml"),
		"--root", dir,
		"--timeout", "2s",
		"--strict",
	})

	assert.NoError(t, cmd.Execute())
}

func TestStrictFlagOverridesConfigFile(t *testing.T) {
	srv := newStatusServer(t, http.StatusNotFound)
	dir := writeFixture(t, srv.URL+"/gone")

	cfgPath := filepath.Join(dir, "linkrot.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[report]\nstrict = true\n"), 0o644))

	// The config file's strict setting applies on its own.
	cmd := newApp()
	cmd.SetArgs([]string{"--config", cfgPath, "--root", dir, "--timeout", "2s"})
	require.Error(t, cmd.Execute())

	// An explicit flag wins over the file.
	cmd = newApp()
	cmd.SetArgs([]string{"--config", cfgPath, "--root", dir, "--timeout", "2s", "--strict=false"})
	assert.NoError(t, cmd.Execute())
}
