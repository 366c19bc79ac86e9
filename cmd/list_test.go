package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"book_browser/lang"
)

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	return buf.String(), err
}

// baseArgs points at a config file that does not exist, so defaults apply.
func baseArgs(t *testing.T, args ...string) []string {
	t.Helper()
	t.Cleanup(func() { lang.SetLocale(lang.LocaleEnglish) })
	cfg := filepath.Join(t.TempDir(), "config.toml")
	return append(args, "--config", cfg, "--log-level", "disabled")
}

func TestListCommand_SamplePage(t *testing.T) {
	out, err := executeCommand(newRootCmd(), baseArgs(t, "list", "--page-size", "4")...)
	require.NoError(t, err)

	require.Contains(t, out, "ID")
	require.Contains(t, out, "pride-and-prejudice")
	require.Contains(t, out, "Jane Austen")
	require.NotContains(t, out, "the-time-machine")
	require.Contains(t, out, "4 of 15 books")
	require.Contains(t, out, "Show more (11)")
}

func TestListCommand_Filtered(t *testing.T) {
	out, err := executeCommand(newRootCmd(), baseArgs(t, "list", "--author", "wells", "--genre", "scifi", "--title", "THE")...)
	require.NoError(t, err)

	require.Contains(t, out, "the-time-machine")
	require.Contains(t, out, "war-of-the-worlds")
	require.Contains(t, out, "the-invisible-man")
	require.Contains(t, out, "3 of 3 books")
	require.NotContains(t, out, "Show more")
}

func TestListCommand_SecondPageJSON(t *testing.T) {
	out, err := executeCommand(newRootCmd(), baseArgs(t, "list", "--page-size", "4", "--page", "2", "--json")...)
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, 2, payload.Page)
	require.Equal(t, 15, payload.Total)
	require.Equal(t, 7, payload.Remaining)
	require.Len(t, payload.Books, 4)
	require.Equal(t, "the-time-machine", payload.Books[0].ID)
}

func TestListCommand_NoResults(t *testing.T) {
	out, err := executeCommand(newRootCmd(), baseArgs(t, "list", "--genre", "zzz")...)
	require.NoError(t, err)
	require.Contains(t, out, "No results found.")
}

func TestListCommand_RejectsBadPage(t *testing.T) {
	_, err := executeCommand(newRootCmd(), baseArgs(t, "list", "--page", "0")...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--page")
}

func TestListCommand_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "books.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
books:
  - {id: "1", title: Dune, author: a1, genres: [scifi]}
  - {id: "2", title: Hobbit, author: a2, genres: [fantasy]}
  - {id: "3", title: Emma, author: a3, genres: [romance]}
authors: {a1: Frank Herbert, a2: J. R. R. Tolkien, a3: Jane Austen}
genres: {scifi: Science Fiction, fantasy: Fantasy, romance: Romance}
`), 0o644))

	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[catalog]
path = "`+filepath.ToSlash(catalogPath)+`"
page_size = 1

[log]
level = "disabled"
`), 0o644))

	out, err := executeCommand(newRootCmd(), "list", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Dune")
	require.NotContains(t, out, "Hobbit")
	require.Contains(t, out, "Show more (2)")

	out, err = executeCommand(newRootCmd(), "list", "--config", cfgPath, "--page-size", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Emma")
	require.Contains(t, out, "3 of 3 books")
}

func TestListCommand_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[ui]\ntheme = \"sepia\"\n"), 0o644))

	_, err := executeCommand(newRootCmd(), "list", "--config", cfgPath, "--log-level", "disabled")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Theme")
}

func TestListCommand_MissingCatalog(t *testing.T) {
	_, err := executeCommand(newRootCmd(), baseArgs(t, "list", "--catalog", filepath.Join(t.TempDir(), "nope.json"))...)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListCommand_Chinese(t *testing.T) {
	out, err := executeCommand(newRootCmd(), baseArgs(t, "list", "--lang", "zh", "--genre", "zzz")...)
	require.NoError(t, err)
	require.Contains(t, out, "没有找到结果")
}
