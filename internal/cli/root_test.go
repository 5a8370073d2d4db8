package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "propctl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"encode", "decode", "compare", "load", "dump", "aggregate", "filter"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestDatabaseFlagRequired(t *testing.T) {
	for _, name := range []string{"load", "dump", "aggregate", "filter"} {
		t.Run(name, func(t *testing.T) {
			cmd := NewRootCommand()
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)

			dbFlag := sub.Flags().Lookup("db")
			require.NotNil(t, dbFlag)
			assert.Equal(t, "", dbFlag.DefValue)
		})
	}
}

func TestExecute_InvalidFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--format", "xml", "encode", "1"}, &stdout, &stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "invalid format")
	assert.Empty(t, stdout.String())
}

func TestExecute_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"frobnicate"}, &stdout, &stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "Error [E_COMMAND]")
}

func TestExecute_JSONErrorEnvelope(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--format", "json", "decode", "0700000009"}, &stdout, &stderr)

	assert.Equal(t, ExitFailure, code)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CORRUPT_PAYLOAD", resp.Error.Code)
}

func TestExecute_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"encode", "true"}, &stdout, &stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "01ff\n", stdout.String())
}

func TestExecute_VerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"-v", "load", "--db", dir + "/g.db", "../graph/testdata/community.yaml"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, stderr.String())
	assert.Contains(t, stderr.String(), "level=DEBUG")
	assert.Contains(t, stdout.String(), "3 vertices, 3 edges")
}
