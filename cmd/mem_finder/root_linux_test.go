//go:build linux

package main

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// cliMarker gives the self scan something to find in the data segment.
var cliMarker = []byte{0x3F, 0xC1, 0x77, 0x08, 0xE5, 0x9B, 0x2D, 0x64, 0xAE, 0x13, 0xF0, 0x5C}

func TestExecuteMissingProcess(t *testing.T) {
	code, stdout, stderr := execute(strconv.Itoa(1<<30), "90 C3")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Attaching to PID")
	assert.Contains(t, stderr, "not found")
	assert.Contains(t, stderr, "ptrace_scope")
}

func TestExecuteSelf(t *testing.T) {
	_ = cliMarker[0]

	code, stdout, stderr := execute("--no-color", "-m", "5", strconv.Itoa(os.Getpid()), "3F C1 77 08 xx 9B 2D 64 AE 13 F0 5C")
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Pattern: 3F C1 77 08 xx 9B 2D 64 AE 13 F0 5C")
	assert.Contains(t, stdout, "3F C1 77 08 E5 9B 2D 64 AE 13 F0 5C")
	assert.NotContains(t, stdout, "Found 0 result(s)")
}
