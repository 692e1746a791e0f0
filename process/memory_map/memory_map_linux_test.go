//go:build linux

package memory_map

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadMemoryMapSelf(t *testing.T) {
	items, err := ReadMemoryMap(os.Getpid())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	require.NotEmpty(t, Readable(items))
}

func TestReadMemoryMapMissing(t *testing.T) {
	_, err := ReadMemoryMap(1 << 30)
	require.Error(t, err)
}
