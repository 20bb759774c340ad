package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// a nil slice would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.py")
	require.NoError(t, os.WriteFile(path, []byte("print('hi')"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("notes"), 0o644))

	out, _, err := execute(t, "-e", "py", dir)
	require.NoError(t, err)
	assert.Equal(t, path+"\n---\nprint('hi')\n---\n", out)
}

func TestRootCommandCXMLAndOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("A"), 0o644))
	target := filepath.Join(t.TempDir(), "prompt.xml")

	out, _, err := execute(t, "--cxml", "-o", target, path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "<documents>\n<document index=\"1\">\n<source>"+path+
		"</source>\n<document_content>\nA\n</document_content>\n</document>\n</documents>\n", string(data))
}

func TestRootCommandRequiresPath(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}

func TestRootCommandMissingPath(t *testing.T) {
	out, _, err := execute(t, filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, walker.ErrPathNotFound)
	assert.Empty(t, out)
}

func TestRootCommandFormatConflict(t *testing.T) {
	_, _, err := execute(t, "--cxml", "--markdown", ".")
	assert.ErrorIs(t, err, config.ErrFormatConflict)
}

func TestRootCommandVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "files-to-prompt version "+config.Version+"\n", out)
}
