//go:build !purego && !amd64 && !386 && !arm64 && !riscv64

package fence

// This GOARCH has no assembly backend. The declaration below has no body
// and no assembly behind it, so the build fails here instead of silently
// degrading to a weaker or no-op barrier. Either add a backend for the
// target or build with the purego tag to use the sync/atomic fallback.
func Fence(kind Kind, op Op)
