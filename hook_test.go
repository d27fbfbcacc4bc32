package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostSaveCommandReplacesFile(t *testing.T) {
	words, err := postSaveCommand(`cp %FILE% "%FILE%.copy"`, "my case.json")
	require.NoError(t, err)
	require.Equal(t, []string{"cp", "my case.json", "my case.json.copy"}, words)

	words, err = postSaveCommand("", "case.json")
	require.NoError(t, err)
	require.Empty(t, words)

	_, err = postSaveCommand(`echo "unterminated`, "case.json")
	require.Error(t, err)
}

func TestRunPostSaveCommand(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "case.json")
	writeFile(t, pathname, "{}")
	require.NoError(t, runPostSaveCommand("cp %FILE% %FILE%.copy", pathname))
	require.Equal(t, "{}", readFile(t, pathname+".copy"))
	require.Error(t, runPostSaveCommand("false", pathname))
	require.NoError(t, runPostSaveCommand("", pathname))
}
