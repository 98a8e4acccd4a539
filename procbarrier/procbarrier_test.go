package procbarrier

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrnoMapping(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		want  ErrorCode
	}{
		{syscall.ENOSYS, ErrCodeUnsupported},
		{syscall.EPERM, ErrCodeNotRegistered},
		{syscall.EINVAL, ErrCodeInvalidCommand},
		{syscall.EIO, ErrCodeSyscallFailed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapErrnoToCode(tt.errno), "errno %d", int(tt.errno))
	}
}

func TestErrorIs(t *testing.T) {
	err := newErrno("QUERY", syscall.ENOSYS)
	assert.True(t, errors.Is(err, ErrUnsupported))

	err = newErrno("PRIVATE_EXPEDITED", syscall.EPERM)
	assert.False(t, errors.Is(err, ErrUnsupported))

	// The wrapped errno stays reachable.
	assert.True(t, errors.Is(err, syscall.EPERM))
}

func TestErrorString(t *testing.T) {
	err := newErrno("GLOBAL", syscall.ENOSYS)
	assert.Contains(t, err.Error(), "membarrier:")
	assert.Contains(t, err.Error(), "op=GLOBAL")
	assert.Contains(t, err.Error(), "errno=")
}

// TestQueryAndPrivateExpedited runs the real syscall paths where the
// kernel provides them and verifies graceful degradation where it does not.
func TestQueryAndPrivateExpedited(t *testing.T) {
	mask, err := Query()
	if err != nil {
		require.ErrorIs(t, err, ErrUnsupported, "Query may only fail as unsupported")
		assert.False(t, Supported())
		t.Skip("membarrier(2) not available")
	}

	assert.Equal(t, mask != 0, Supported())

	if mask&cmdRegisterPrivateExpedited == 0 {
		t.Skip("kernel does not support private expedited barriers")
	}

	require.NoError(t, RegisterPrivateExpedited())
	require.NoError(t, PrivateExpedited())
}

func TestGlobal(t *testing.T) {
	mask, err := Query()
	if err != nil || mask&cmdGlobal == 0 {
		t.Skip("global membarrier not available")
	}
	require.NoError(t, Global())
}
