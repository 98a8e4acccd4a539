package procbarrier

import (
	"fmt"
	"syscall"
)

// ErrorCode is a high-level category for membarrier failures.
type ErrorCode string

const (
	ErrCodeUnsupported    ErrorCode = "membarrier not supported"
	ErrCodeNotRegistered  ErrorCode = "process not registered for expedited barriers"
	ErrCodeInvalidCommand ErrorCode = "invalid membarrier command"
	ErrCodeSyscallFailed  ErrorCode = "membarrier syscall failed"
)

// ErrUnsupported matches, via errors.Is, any error caused by the platform
// or kernel lacking membarrier support.
var ErrUnsupported = &Error{Code: ErrCodeUnsupported, Msg: string(ErrCodeUnsupported)}

// Error is a structured membarrier error with the failing command and the
// kernel errno attached.
type Error struct {
	Op    string        // membarrier command name (e.g. "PRIVATE_EXPEDITED")
	Code  ErrorCode     // high-level category
	Errno syscall.Errno // kernel errno (0 if not applicable)
	Msg   string        // human-readable message
	Inner error         // wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Op != "" {
		if e.Errno != 0 {
			return fmt.Sprintf("membarrier: %s (op=%s errno=%d)", msg, e.Op, int(e.Errno))
		}
		return fmt.Sprintf("membarrier: %s (op=%s)", msg, e.Op)
	}
	return fmt.Sprintf("membarrier: %s", msg)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is matches two Errors by category, so callers can compare against
// sentinels like ErrUnsupported without caring about op or errno.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	return ok && e.Code == te.Code
}

// newErrno builds an Error for a failed command from its errno.
func newErrno(op string, errno syscall.Errno) *Error {
	return &Error{
		Op:    op,
		Code:  mapErrnoToCode(errno),
		Errno: errno,
		Msg:   errno.Error(),
		Inner: errno,
	}
}

// mapErrnoToCode maps a membarrier(2) errno to an error category.
func mapErrnoToCode(errno syscall.Errno) ErrorCode {
	switch errno {
	case syscall.ENOSYS:
		return ErrCodeUnsupported
	case syscall.EPERM:
		// The expedited commands fail with EPERM until registered.
		return ErrCodeNotRegistered
	case syscall.EINVAL:
		return ErrCodeInvalidCommand
	default:
		return ErrCodeSyscallFailed
	}
}
