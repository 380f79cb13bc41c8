package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestParseJWCC(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`{
		// semicolons for Excel
		"delimiter": ";",
		"crlf": true,
	}`))
	require.NoError(t, err)
	require.Equal(t, Config{Delimiter: ";", CRLF: true}, cfg)

	_, err = Parse([]byte(`{"delimiter": `))
	require.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{"delimiter": ";", "drop_empty": true}`)
	writeFile(t, filepath.Join(dir, "explicit.json"), `{"delimiter": "|", "quote_all": true}`)

	cfg, sources, err := Load(dir, "")
	require.NoError(t, err)
	require.Equal(t, Config{Delimiter: ";", DropEmpty: true}, cfg)
	require.Equal(t, filepath.Join(dir, FileName), sources.Project)
	require.Empty(t, sources.Explicit)

	cfg, sources, err = Load(dir, "explicit.json")
	require.NoError(t, err)
	require.Equal(t, Config{Delimiter: "|", DropEmpty: true, QuoteAll: true}, cfg)
	require.Equal(t, filepath.Join(dir, "explicit.json"), sources.Explicit)
}

func TestLoadMissingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, sources, err := Load(dir, "")
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
	require.Equal(t, Sources{}, sources)

	_, _, err = Load(dir, "nope.json")
	require.ErrorIs(t, err, errConfigFileNotFound)
}

func TestLoadRejectsBadDelimiter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{"out_delimiter": "::"}`)

	_, _, err := Load(dir, "")
	require.ErrorIs(t, err, errConfigInvalid)
	require.ErrorIs(t, err, errDelimiterInvalid)
}

func TestRuneAndFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, rune(0), Rune(""))
	require.Equal(t, '§', Rune("§"))

	out, err := Format(Config{Delimiter: ";"})
	require.NoError(t, err)
	require.JSONEq(t, `{"delimiter": ";"}`, out)
}
