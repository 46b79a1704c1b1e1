package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	rootCmd := NewRootCommand()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

func Test_Demo_PrintsTheScriptedSession(t *testing.T) {
	// act
	out, _, err := runRoot(t, "demo")

	// assert
	require.NoError(t, err)
	assert.Contains(t, out, "Book: 'Clean Code' by Robert C. Martin")
	assert.Regexp(t, `Member: Alice Johnson \(ID: [0-9a-f]{8}\) - Type: STUDENT`, out)
	assert.Contains(t, out, "Clean Code loaned to Alice Johnson.")
	assert.Contains(t, out, "Item is currently checked out.")
	assert.Contains(t, out, "To Kill a Mockingbird loaned to Bob Williams.")
	assert.Contains(t, out, "Handled error:")
	assert.Contains(t, out, "Standard loan period is 14 days.")
	assert.Contains(t, out, "held by Alice Johnson for 6 days, fine so far $0.60")
	assert.Contains(t, out, "Clean Code returned by Alice Johnson. Status: RETURNED.")
	assert.Contains(t, out, "Fine calculated: $0.60")
	assert.Contains(t, out, "Any title containing \"Comp\": true")
	assert.Contains(t, out, "Any title containing \"comp\": false")
	assert.NotContains(t, out, "--- Metrics ---")
}

func Test_Demo_WithTelemetry_PrintsMetricsSummary(t *testing.T) {
	// act
	out, _, err := runRoot(t, "demo", "--telemetry")

	// assert
	require.NoError(t, err)
	assert.Contains(t, out, "--- Metrics ---")
	assert.Contains(t, out, "loanmanager_operations_total{operation=loan_item,status=success} 2")
	assert.Contains(t, out, "loanmanager_fines_assessed_total{member_type=STUDENT} 1")
}

func Test_Demo_LogLevelFlagControlsLogging(t *testing.T) {
	// act
	_, quiet, err := runRoot(t, "demo", "--log-level", "error")
	require.NoError(t, err)

	_, verbose, err := runRoot(t, "demo", "--log-level", "info")
	require.NoError(t, err)

	// assert
	assert.NotContains(t, quiet, "operation completed")
	assert.Contains(t, verbose, "operation completed")
}

func Test_Demo_UsesConfigFile(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loan_period_days: 21\n"), 0o600))

	// act
	out, _, err := runRoot(t, "demo", "--config", path)

	// assert
	require.NoError(t, err)
	assert.Contains(t, out, "Standard loan period is 21 days.")
}

func Test_Demo_RejectsInvalidLogLevel(t *testing.T) {
	// act
	_, _, err := runRoot(t, "demo", "--log-level", "loud")

	// assert
	assert.Error(t, err)
}

func Test_Demo_RejectsMissingConfigFile(t *testing.T) {
	// act
	_, _, err := runRoot(t, "demo", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	// assert
	assert.Error(t, err)
}
