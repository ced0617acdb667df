package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runExample(t *testing.T, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--log-level", "error", "--log-format", "json"}, args...)
	require.NoError(t, run(args, &stdout, &stderr), stderr.String())
	return stdout.String()
}

func TestRun_CRef(t *testing.T) {
	out := runExample(t, "--examples", "cref")
	assert.Equal(t, `----- immutable references -----
a is int 1
a is float64 2
a is string 3
a is float32
`, out)
}

func TestRun_Ref(t *testing.T) {
	out := runExample(t, "--examples", "ref")
	assert.Contains(t, out, "int res == 10\n")
	assert.Contains(t, out, "float64 res == 10\n")
	assert.Contains(t, out, "string res == abcde\n")
}

func TestRun_RRefLeavesSourcesEmpty(t *testing.T) {
	out := runExample(t, "--examples", "rref")
	assert.Contains(t, out, "a is []int 1 2 3 4 5\n[]int len = 0\n")
	assert.Contains(t, out, "a is map[int]int { 1 2 } { 2 4 } { 3 6 } { 4 8 } { 5 10 }\nmap[int]int len = 0\n")
}

func TestRun_Sequences(t *testing.T) {
	out := runExample(t, "--examples", "generics1")
	assert.Contains(t, out, "12345\n15\nscaled []int == [8 10 12 14 16]\n")
	assert.Contains(t, out, "678910\n40\nscaled []float64 == [18 20 22 24 26]\n")
	assert.Contains(t, out, "12345\n255\nscaled []byte == \"hjlnp\"\n")
}

func TestRun_AddAndVariadic(t *testing.T) {
	out := runExample(t, "--examples", "generics2,variadic")
	assert.Contains(t, out, "int res == 3\nstring res == 123456\n")
	assert.Contains(t, out, "sum of 3 of 16 slots == 6\n")
}

func TestRun_AllExamplesInOrder(t *testing.T) {
	out := runExample(t)
	for _, e := range examples {
		assert.Contains(t, out, "----- "+e.title+" -----")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anyref.yaml")
	require.NoError(t, os.WriteFile(path, []byte("examples: [variadic]\nsignature_cache:\n  size: 4\n"), 0o600))
	out := runExample(t, "--config", path)
	assert.Equal(t, "----- variadic sum -----\nsum of 3 of 16 slots == 6\n", out)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown example", []string{"--examples", "nope"}, `unknown example "nope"`},
		{"bad level", []string{"--log-level", "loud"}, "log.level"},
		{"extra argument", []string{"extra"}, "unexpected argument: extra"},
		{"unknown flag", []string{"--nope"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_ListAndHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--list"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "variadic")

	stdout.Reset()
	require.NoError(t, run([]string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "--examples")
	assert.Empty(t, stdout.String())
}
