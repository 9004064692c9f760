//go:build linux

package weights

import (
	"bufio"
	"fmt"
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mappingPerms returns the permission column of the /proc/self/maps entry
// that contains addr.
func mappingPerms(t *testing.T, addr uintptr) string {
	t.Helper()

	f, err := os.Open("/proc/self/maps")
	require.NoError(t, err)
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var lo, hi uintptr
		var perms string
		if _, err := fmt.Sscanf(sc.Text(), "%x-%x %s", &lo, &hi, &perms); err != nil {
			continue
		}
		if addr >= lo && addr < hi {
			return perms
		}
	}
	require.NoError(t, sc.Err())
	t.Fatalf("address %#x not mapped", addr)
	return ""
}

func TestShare_MappingIsShared(t *testing.T) {
	p := newTable(t, 1<<12, 1)
	require.NoError(t, p.Share(1<<12))

	addr := uintptr(unsafe.Pointer(p.At(0)))
	perms := mappingPerms(t, addr)

	assert.Equal(t, "rw-s", perms, "table must live in a writable MAP_SHARED region")
}
