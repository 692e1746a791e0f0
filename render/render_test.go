package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"memfinder/pattern"
	"memfinder/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	pat := pattern.MustCompile("48 8B xx")
	result := process.ScanResult{Address: 0x7ff6a1b2c3d4, MatchedBytes: []byte{0x48, 0x8B, 0x05}}

	assert.Equal(t, "  [3] 0x00007FF6A1B2C3D4 - 48 8B 05", Line(3, result, pat, Options{}))

	colored := Line(1, result, pat, Options{Color: true})
	assert.Contains(t, colored, "\033[")
	assert.Contains(t, colored, "0x00007FF6A1B2C3D4")
}

func TestResults(t *testing.T) {
	pat := pattern.MustCompile("AA")
	results := []process.ScanResult{
		{Address: 0x1000, MatchedBytes: []byte{0xAA}},
		{Address: 0x2000, MatchedBytes: []byte{0xAA}},
	}

	var buf bytes.Buffer
	require.NoError(t, Results(&buf, results, pat, Options{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Found 2 result(s):", lines[0])
	assert.Equal(t, "  [2] 0x0000000000002000 - AA", lines[2])
}

func TestResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Results(&buf, nil, pattern.MustCompile("AA"), Options{}))
	assert.Equal(t, "Found 0 result(s):\n", buf.String())
}

func TestAttachFailure(t *testing.T) {
	var buf bytes.Buffer
	AttachFailure(&buf, errors.New("process attach failed: denied"), 1234, "48 8B xx")

	assert.True(t, strings.HasPrefix(buf.String(), "Error: process attach failed: denied\n"))
	for _, hint := range Hints(1234, "48 8B xx") {
		assert.Contains(t, buf.String(), hint)
	}
}
