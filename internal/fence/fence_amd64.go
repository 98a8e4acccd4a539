//go:build amd64 && !purego

package fence

// Fence executes the x86-64 fence instruction for op.
//
// x86 fences do not distinguish observer classes, so kind is accepted and
// discarded: MFENCE/LFENCE/SFENCE already order accesses with respect to
// devices, other processors, and DMA alike. The strength contract holds
// because the instruction chosen for every kind is the one MMIO requires.
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

// Implemented in fence_amd64.s.

//go:noescape
func mfence()

//go:noescape
func lfence()

//go:noescape
func sfence()
