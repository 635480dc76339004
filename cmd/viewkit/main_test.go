package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/viewkit/views"
)

const testConfig = `
title_root: "View-Router"
routes:
  "": homeView
  projects: listView
  "projects/:id": itemView
titles:
  listView: " | Projects"
  itemView: " | <name>"
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveCmd(t *testing.T) {
	cfg := writeConfig(t, "views.yaml", testConfig)

	t.Run("with attributes", func(t *testing.T) {
		out, err := runCmd(t, "-c", cfg, "resolve", "itemView", "id=1234")
		require.NoError(t, err)
		assert.Equal(t, "projects/1234\n", out)
	})

	t.Run("static view", func(t *testing.T) {
		out, err := runCmd(t, "--config", cfg, "resolve", "listView")
		require.NoError(t, err)
		assert.Equal(t, "projects\n", out)
	})

	t.Run("missing parameter", func(t *testing.T) {
		_, err := runCmd(t, "-c", cfg, "resolve", "itemView")
		assert.ErrorIs(t, err, views.ErrUnmatchedParameter)
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := runCmd(t, "-c", cfg, "resolve", "nope")
		assert.ErrorIs(t, err, views.ErrUnknownView)
	})

	t.Run("bad attribute", func(t *testing.T) {
		_, err := runCmd(t, "-c", cfg, "resolve", "itemView", "1234")
		assert.Error(t, err)
	})

	t.Run("requires view", func(t *testing.T) {
		_, err := runCmd(t, "-c", cfg, "resolve")
		assert.Error(t, err)
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := runCmd(t, "-c", filepath.Join(t.TempDir(), "none.yaml"), "resolve", "listView")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTitleCmd(t *testing.T) {
	cfg := writeConfig(t, "views.yaml", testConfig)

	out, err := runCmd(t, "-c", cfg, "title", "itemView", "name=foobar")
	require.NoError(t, err)
	assert.Equal(t, "View-Router | foobar\n", out)

	out, err = runCmd(t, "-c", cfg, "title", "homeView")
	require.NoError(t, err)
	assert.Equal(t, "View-Router\n", out)

	t.Run("inactive", func(t *testing.T) {
		plain := writeConfig(t, "plain.toml", "[routes]\nprojects = \"listView\"\n")
		_, err := runCmd(t, "-c", plain, "title", "listView")
		assert.Error(t, err)
	})
}

func TestViewsCmd(t *testing.T) {
	cfg := writeConfig(t, "views.yaml", testConfig)

	out, err := runCmd(t, "-c", cfg, "views")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "VIEW"))
	assert.True(t, strings.HasPrefix(lines[1], "homeView"))
	assert.Contains(t, lines[2], "projects/:id")
	assert.Contains(t, lines[3], " | Projects")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Go version:")
}

func TestParseAttrs(t *testing.T) {
	m, err := parseAttrs([]string{"id=1", "q=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, views.Attrs{"id": "1", "q": "a=b", "empty": ""}, m)

	_, err = parseAttrs([]string{"=x"})
	assert.Error(t, err)
}
