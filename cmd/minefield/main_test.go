package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minefield/internal/config"
)

func TestRun(t *testing.T) {
	t.Setenv("MINEFIELD_THRESHOLD", "3")

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout))
	assert.Equal(t, "25\n", stdout.String())
}

func TestRunInvalidThreshold(t *testing.T) {
	t.Setenv("MINEFIELD_THRESHOLD", "-1")

	var stdout bytes.Buffer
	err := run(context.Background(), &stdout)
	assert.ErrorIs(t, err, config.ErrInvalidThreshold)
	assert.Empty(t, stdout.String())
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath = filepath.Join(dir, "minefield.yaml")
	renderPath = filepath.Join(dir, "region.png")
	t.Cleanup(func() { configPath, renderPath = "", "" })
	require.NoError(t, os.WriteFile(configPath, []byte("threshold: 10\nworkers: 4\nstrategy: breadth\n"), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout))
	assert.Equal(t, "1121\n", stdout.String())
	assert.FileExists(t, renderPath)
}

func TestRunCancelled(t *testing.T) {
	t.Setenv("MINEFIELD_THRESHOLD", "10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	assert.ErrorIs(t, run(ctx, &stdout), context.Canceled)
	assert.Empty(t, stdout.String())
}
