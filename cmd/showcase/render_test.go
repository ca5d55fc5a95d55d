package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "--htmx-src", "/static/htmx.js"})

	require.NoError(t, cmd.Execute())

	html := out.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<script src="/static/htmx.js" defer></script>`)
	assert.Contains(t, html, `id="showcase-form"`)
}

func TestRenderCmd_Fragment(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "--fragment"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), `<form id="showcase-form"`))
}

func TestRenderCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.html")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "-o", path})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada Lovelace")
}

func TestServeCmd_RequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "short")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

func TestRenderCmd_FileWriteErrorReported(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "-o", "/dev/full"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "/dev/full")
}

func TestRenderCmd_MissingDirectory(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "-o", filepath.Join(t.TempDir(), "missing", "out.html")})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "create")
}
