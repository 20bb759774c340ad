package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/bethropolis/files-to-prompt/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// run executes one invocation and returns stdout and stderr
func run(t *testing.T, cfg *config.Config, paths ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	require.NoError(t, cfg.Finalize(paths, &stderr))
	err := New(cfg, &stdout, &stderr).Run()
	return stdout.String(), stderr.String(), err
}

func TestRunPlainTwoFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "file1.txt")
	f2 := filepath.Join(dir, "file2.txt")
	writeFile(t, f1, "A")
	writeFile(t, f2, "B")

	out, _, err := run(t, config.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, f1+"\n---\nA\n---\n"+f2+"\n---\nB\n---\n", out)
}

func TestRunGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "secret.txt\n")
	writeFile(t, filepath.Join(dir, "secret.txt"), "TOP SECRET")
	writeFile(t, filepath.Join(dir, "ok.txt"), "fine")

	out, _, err := run(t, config.New(), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "fine")
	assert.NotContains(t, out, "TOP SECRET")

	cfg := config.New()
	cfg.IgnoreGitignore = true
	out, _, err = run(t, cfg, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "TOP SECRET")
	assert.NotContains(t, out, ".gitignore", "hidden files stay excluded")
}

func TestRunCXML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "A")
	writeFile(t, filepath.Join(dir, "b.txt"), "B")

	cfg := config.New()
	cfg.CXML = true
	out, _, err := run(t, cfg, dir)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<documents>\n"))
	assert.True(t, strings.HasSuffix(out, "</documents>\n"))
	first := strings.Index(out, `<document index="1">`)
	second := strings.Index(out, `<document index="2">`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Equal(t, 1, strings.Count(out, "<documents>"))
}

func TestRunCXMLIndexSpansPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "one", "a.txt")
	b := filepath.Join(dir, "two", "b.txt")
	writeFile(t, a, "A")
	writeFile(t, b, "B")

	cfg := config.New()
	cfg.CXML = true
	out, _, err := run(t, cfg, filepath.Join(dir, "two"), a)
	require.NoError(t, err)

	want := "<documents>\n" +
		"<document index=\"1\">\n<source>" + b + "</source>\n<document_content>\nB\n</document_content>\n</document>\n" +
		"<document index=\"2\">\n<source>" + a + "</source>\n<document_content>\nA\n</document_content>\n</document>\n" +
		"</documents>\n"
	assert.Equal(t, want, out)
}

func TestRunInvalidTextIsSkippedWithWarning(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "binary.bin")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe, 0x00, 0x81}, 0o644))
	writeFile(t, filepath.Join(dir, "good.txt"), "readable")

	out, diag, err := run(t, config.New(), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "readable")
	assert.NotContains(t, out, bad)
	assert.Contains(t, diag, "Skipping file "+bad+" due to "+walker.ErrNotText.Error())
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "A")
	target := filepath.Join(dir, "out.txt")
	writeFile(t, target, "stale content that must be truncated")

	cfg := config.New()
	cfg.OutputFile = target
	out, _, err := run(t, cfg, src)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "a.txt")+"\n---\nA\n---\n", string(data))
}

func TestRunMissingPathWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "A")
	target := filepath.Join(dir, "out.txt")

	cfg := config.New()
	cfg.OutputFile = target
	out, _, err := run(t, cfg, dir, filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, walker.ErrPathNotFound)
	assert.Empty(t, out)
	assert.NoFileExists(t, target)
}

func TestRunJSONFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "A\n")

	cfg := config.New()
	cfg.JSON = true
	out, _, err := run(t, cfg, dir)
	require.NoError(t, err)

	var entries []printer.JSONFileEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []printer.JSONFileEntry{{Path: path, Content: "A\n"}}, entries)
}

func TestRunShowSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.py"), "k")
	writeFile(t, filepath.Join(dir, "drop.md"), "d")

	cfg := config.New()
	cfg.Extensions = []string{"py"}
	cfg.ShowSkipped = true
	out, diag, err := run(t, cfg, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "keep.py")
	assert.Contains(t, diag, "Skipped FILE: "+filepath.Join(dir, "drop.md"))
	assert.Contains(t, diag, string(walker.ReasonFilteredExtension))
}

func TestRunJSONDiagnostics(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.bin"), []byte{0xff}, 0o644))

	cfg := config.New()
	cfg.LogFormat = config.LogFormatJSON
	_, diag, err := run(t, cfg, dir)
	require.NoError(t, err)

	line := strings.TrimSpace(diag)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry["msg"], "bad.bin")
}
