//go:build 386 || arm || mips || mipsle

package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRejectsOpSizeBeyondAddressSize(t *testing.T) {
	// 4 GiB per operation cannot be expressed in a 32-bit uintptr.
	cfg := Config{TotalBytes: 8 << 30, Ops: 2, Threads: 2}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrKindConfig))
}
