package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "bionic test\n", out)
}

func TestWeight(t *testing.T) {
	out, _, err := run(t, "", "weight", "Regular", "Semi Bold", "Thin 250")
	require.NoError(t, err)
	assert.Equal(t, "Regular\t400\nSemi Bold\t600\nThin 250\t250\n", out)

	_, _, err = run(t, "", "weight")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	out, _, err := run(t, "", "contrast", "2")
	require.NoError(t, err)
	assert.Equal(t, "300 600 900\n", out)

	out, _, err = run(t, "", "contrast", "4")
	require.NoError(t, err)
	assert.Equal(t, "0 100 300 450 600 900\n", out)

	_, _, err = run(t, "", "contrast", "many")
	assert.Error(t, err)

	_, _, err = run(t, "", "contrast")
	assert.Error(t, err)
}

func TestFontsCatalog(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "catalog.json")

	_, stderr, err := run(t, "", "fonts", "--catalog", catalog)
	require.NoError(t, err)
	assert.Contains(t, stderr, "is empty")

	out, _, err := run(t, "", "fonts", "add", "Inter", "Regular", "Medium", "Bold", "Black", "--catalog", catalog)
	require.NoError(t, err)
	assert.Equal(t, "Inter: 4 styles\n", out)

	out, _, err = run(t, "", "fonts", "--catalog", catalog)
	require.NoError(t, err)
	assert.Equal(t, "Inter\t4 styles\t4 weights\n", out)

	out, _, err = run(t, "", "fonts", "Inter", "--catalog", catalog)
	require.NoError(t, err)
	assert.Contains(t, out, "Medium\t500\n")
	assert.Contains(t, out, "Black\t900\n")

	out, _, err = run(t, "", "contrast", "--family", "Inter", "--catalog", catalog)
	require.NoError(t, err)
	assert.Equal(t, "0 100 300 450 600 900\n", out)

	_, _, err = run(t, "", "fonts", "remove", "Inter", "Black", "--catalog", catalog)
	require.NoError(t, err)

	out, _, err = run(t, "", "fonts", "Inter", "--catalog", catalog)
	require.NoError(t, err)
	assert.NotContains(t, out, "Black")

	_, _, err = run(t, "", "fonts", "Roboto", "--catalog", catalog)
	assert.Error(t, err)
}

func TestFontsSyncRequiresKey(t *testing.T) {
	_, _, err := run(t, "", "fonts", "sync", "--api-key", "", "--catalog", filepath.Join(t.TempDir(), "c.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestConvertFragment(t *testing.T) {
	out, _, err := run(t, "", "convert", "hello", "world",
		"--styles", "Regular,Bold", "--format", "fragment")
	require.NoError(t, err)

	assert.Contains(t, out, `font-weight: 700;">hel</span>`)
	assert.Contains(t, out, `font-weight: 400;">lo </span>`)
	assert.Contains(t, out, `font-weight: 700;">wor</span>`)
	assert.Contains(t, out, `font-weight: 400;">ld</span>`)
}

func TestConvertJSONFromStdin(t *testing.T) {
	out, _, err := run(t, "hello world\n", "convert",
		"--styles", "Regular,Bold", "--format", "json")
	require.NoError(t, err)

	var result convertResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "hello world", result.Text)
	require.Len(t, result.Runs, 4)
	assert.Equal(t, "Bold", result.Runs[0].Font.Style)
	assert.Equal(t, 3, result.Runs[0].End)
	require.Len(t, result.Summary.Nodes, 1)
	assert.Equal(t, "Bold", result.Summary.Nodes[0].Bold.Style)
}

func TestConvertUsesCatalog(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "catalog.json")
	_, _, err := run(t, "", "fonts", "add", "Roboto", "Light", "Regular", "Bold", "--catalog", catalog)
	require.NoError(t, err)

	out, _, err := run(t, "", "convert", "reading", "--family", "Roboto", "--style", "Light",
		"--contrast", "600", "--format", "fragment", "--catalog", catalog)
	require.NoError(t, err)
	assert.Contains(t, out, `font-weight: 700;">read</span>`)
	assert.Contains(t, out, `font-weight: 300;">ing</span>`)
}

func TestConvertPageToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	_, stderr, err := run(t, "", "convert", "hello world",
		"--styles", "Regular,Bold", "--title", "Notes", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Converted to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!doctype html>"))
	assert.Contains(t, string(data), "<title>Notes</title>")
}

func TestConvertEmail(t *testing.T) {
	out, _, err := run(t, "", "convert", "hello world",
		"--styles", "Regular,Bold", "--format", "email", "--title", "Digest")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "<!doctype html>")
	assert.Contains(t, out, "font-weight: 700")
}

func TestConvertErrors(t *testing.T) {
	_, stderr, err := run(t, "", "convert", "hello world", "--styles", "Regular")
	require.Error(t, err)
	assert.Contains(t, stderr, "warning")

	_, _, err = run(t, "", "convert", "hello world", "--styles", "Regular,Bold", "--fixation", "0")
	assert.Error(t, err)

	_, _, err = run(t, "", "convert", "hello world", "--styles", "Regular,Bold", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, _, err = run(t, "", "convert", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><div style=\"display: flex\">x</div></body></html>"), 0644))

	out, _, err := run(t, "", "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "- Missing DOCTYPE declaration\n")
	assert.Contains(t, out, "flexbox")
}
