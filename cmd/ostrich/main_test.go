package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mzk-ostrich-remover/internal/runner"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_InvalidPath(t *testing.T) {
	out, err := runCmd(t, "-s", t.TempDir())

	assert.ErrorIs(t, err, runner.ErrInvalidRoot)
	assert.Contains(t, out, "Invalid folder")
}

func TestRoot_MissingMode(t *testing.T) {
	out, err := runCmd(t, t.TempDir()+"/")

	assert.ErrorIs(t, err, errMissingMode)
	assert.Contains(t, out, "Missing mode")
}

func TestRoot_Scan(t *testing.T) {
	root := t.TempDir()
	album := filepath.Join(root, "A", "2020 - B")
	require.NoError(t, os.MkdirAll(album, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(album, "A - 2020 - B - Title.flac"), nil, 0644))

	config := filepath.Join(t.TempDir(), "settings.json")
	out, err := runCmd(t, "--scan", "--verbose", "--config", config, root+"/")
	require.NoError(t, err)

	assert.Contains(t, out, "MzkOstrichRemover "+version)
	assert.Contains(t, out, "Scan complete")
	assert.Contains(t, out, "[NamingConventionViolation] A - 2020 - B - Title.flac")
}

func TestOptions_ModePriority(t *testing.T) {
	mode, err := (&options{fill: true, clean: true}).mode()
	require.NoError(t, err)
	assert.Equal(t, runner.ModeFill, mode)

	mode, err = (&options{scan: true, fill: true}).mode()
	require.NoError(t, err)
	assert.Equal(t, runner.ModeScan, mode)
}
