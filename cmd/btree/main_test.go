package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	code := Execute(context.Background())
	return out.String(), errOut.String(), code
}

func TestValidateCommand(t *testing.T) {
	out, errOut, code := execute(t, "validate", "../../examples/breakfast.json", "../../examples/bridge.yaml")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `breakfast.json: ok ("Breakfast", 3 nodes`)
	assert.Contains(t, out, `bridge.yaml: ok ("Bridge", 8 nodes`)
}

func TestValidateCommandReportsFailures(t *testing.T) {
	_, errOut, code := execute(t, "validate", "../../examples/breakfast.json", "../../examples/missing.json")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing.json")
	assert.Contains(t, errOut, "validation failed")
}

func TestGraphCommand(t *testing.T) {
	out, _, code := execute(t, "graph", "../../examples/breakfast.json")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "graph TD\n")
	assert.Contains(t, out, "MakeCoffee #1")
	assert.Contains(t, out, "ToastBread #2")
}

func TestRunCommand(t *testing.T) {
	out, errOut, code := execute(t, "run", "--seed", "3", "--log-level", "error", "--ticks", "2", "../../examples/breakfast.json")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Breakfast tick 1: true\n")
	assert.Contains(t, out, "Breakfast tick 2: true\n")
	assert.Contains(t, out, "2/2 ticks succeeded\n")
}

func TestRunCommandRejectsBadLogLevel(t *testing.T) {
	_, errOut, code := execute(t, "run", "--log-level", "loud", "../../examples/breakfast.json")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid config")
}
