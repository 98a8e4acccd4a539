//go:build !linux

package procbarrier

func query() (uint32, error) {
	return 0, &Error{Op: "QUERY", Code: ErrCodeUnsupported, Msg: "membarrier(2) requires Linux"}
}

func barrier(op string, cmd uintptr) error {
	_ = cmd
	return &Error{Op: op, Code: ErrCodeUnsupported, Msg: "membarrier(2) requires Linux"}
}
