package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gospec/internal/app"
	"github.com/specialistvlad/gospec/internal/cli"
	"github.com/specialistvlad/gospec/internal/specerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Passing(t *testing.T) {
	t.Parallel()

	path := writeSpec(t, "ok.hcl", `
spec "Queue" {
  it "enqueues" { run = "noop" }
}`)
	out := &bytes.Buffer{}

	err := run(out, []string{path})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Queue > enqueues")
	assert.Contains(t, out.String(), "PASS")
}

func TestRun_FailingExamples(t *testing.T) {
	t.Parallel()

	path := writeSpec(t, "bad.yaml", "spec: Queue\nchildren:\n  - it: dequeues\n    run: fail\n")
	out := &bytes.Buffer{}

	err := run(out, []string{path})

	var failed *app.FailedExamplesError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 1, failed.Failed)
	assert.Contains(t, out.String(), "FAIL")
	assert.Equal(t, 1, exitCode(err))
}

func TestRun_InvalidSpecFile(t *testing.T) {
	t.Parallel()

	path := writeSpec(t, "broken.hcl", `
spec "Queue" {
  it "never closed" {
`)
	err := run(&bytes.Buffer{}, []string{path})

	var initErr *specerr.SpecInitializationFailedError
	require.ErrorAs(t, err, &initErr)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitCode(err))
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
