package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"testResults":[
		{"kanjiChar":"水","rating":"forgot"},
		{"kanjiChar":"水","rating":"forgot"},
		{"kanjiChar":"木","rating":"good"}
	]}`), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"prompt", "--file", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "They completely forgot these kanji: 水.")
	assert.Contains(t, out.String(), "They found these kanji hard: None.")
	assert.Contains(t, out.String(), "They were good with: 木.")
}

func TestPromptCmd_InvalidBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"testResults":{}}`), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"prompt", "-f", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testResults")
}

func TestPromptCmd_MissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"prompt", "-f", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, cmd.Execute())
}
