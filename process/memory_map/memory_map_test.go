package memory_map

import (
	"strings"
	"testing"

	"memfinder/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMaps = `00400000-0040b000 r-xp 00000000 08:02 173521      /usr/bin/dbus-daemon
0060a000-0060b000 rw-p 0000a000 08:02 173521      /usr/bin/dbus-daemon
00e03000-00e24000 ---p 00000000 00:00 0
garbage line
7ffd5c1d1000-7ffd5c1f2000 rw-p 00000000 00:00 0   [stack]
zzzz-0001 r--p 00000000 00:00 0
ffffffffff600000-ffffffffff601000 --xp 00000000 00:00 0 [vsyscall]
`

func TestParse(t *testing.T) {
	items, err := Parse(strings.NewReader(sampleMaps))
	require.NoError(t, err)
	require.Len(t, items, 5)

	assert.Equal(t, uint64(0x400000), items[0].Address)
	assert.Equal(t, uint64(0xb000), items[0].Size)
	assert.Equal(t, "r-xp", items[0].Perms)
	assert.Equal(t, "rw-p", items[1].Perms)
	assert.False(t, items[2].IsReadable())
}

func TestReadable(t *testing.T) {
	items, err := Parse(strings.NewReader(sampleMaps))
	require.NoError(t, err)

	regions := Readable(items)
	assert.Equal(t, []process.MemoryRegion{
		{Start: 0x400000, Size: 0xb000},
		{Start: 0x60a000, Size: 0x1000},
		{Start: 0x7ffd5c1d1000, Size: 0x21000},
	}, regions)
}

func TestPerms(t *testing.T) {
	assert.False(t, IsReadablePerms(""))
	assert.True(t, IsReadablePerms("r"))
	assert.False(t, IsReadablePerms("-w-p"))
	assert.False(t, IsReadablePerms("---p"))
}
