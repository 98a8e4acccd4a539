//go:build 386 && !purego

package fence

// Fence executes the x86 fence instruction for op.
//
// As on amd64, kind is accepted and discarded: x86 fences do not
// distinguish observer classes, and the instruction used is MMIO-strength
// for every kind. MFENCE/LFENCE require SSE2 and SFENCE requires SSE; the
// Go 386 port assumes SSE2 (GO386=sse2 is the baseline, and softfloat only
// relaxes floating point). Toolchains targeting older silicon should build
// with the purego tag instead.
func Fence(kind Kind, op Op) {
	_ = kind
	switch op {
	case Read:
		lfence()
	case Write:
		sfence()
	default:
		mfence()
	}
}

// Implemented in fence_386.s.

//go:noescape
func mfence()

//go:noescape
func lfence()

//go:noescape
func sfence()
