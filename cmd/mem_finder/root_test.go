package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecuteInvalidPattern(t *testing.T) {
	code, stdout, stderr := execute("1234", "48 zz")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid hex token")
	assert.Contains(t, stderr, "zz")
}

func TestExecuteEmptyPattern(t *testing.T) {
	code, _, stderr := execute("1234", "   ")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "empty pattern")
}

func TestExecuteInvalidPID(t *testing.T) {
	for _, pid := range []string{"abc", "0", "-5"} {
		code, _, stderr := execute("--", pid, "90")
		assert.Equal(t, 1, code, pid)
		assert.Contains(t, stderr, "invalid pid", pid)
	}
}

func TestExecuteMissingArgs(t *testing.T) {
	code, _, stderr := execute("1234")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}

func TestExecuteUnknownName(t *testing.T) {
	code, _, stderr := execute("--name", "memfinder-no-such-process-4f1c2a", "90")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no process found")
}
