//go:build arm64 && !purego

package fence

// Fence executes the arm64 barrier instruction for (kind, op).
//
// MMIO barriers need DSB: device I/O completion must be synchronized, not
// just ordered. SMP barriers use DMB limited to the inner shareable domain,
// which covers all processors sharing memory. DMA barriers use DMB over the
// outer shareable domain so DMA-capable devices outside the inner domain
// observe the ordering too.
func Fence(kind Kind, op Op) {
	switch kind {
	case SMP:
		switch op {
		case Read:
			dmbISHLD()
		case Write:
			dmbISHST()
		default:
			dmbISH()
		}
	case DMA:
		switch op {
		case Read:
			dmbOSHLD()
		case Write:
			dmbOSHST()
		default:
			dmbOSH()
		}
	default: // MMIO
		switch op {
		case Read:
			dsbLD()
		case Write:
			dsbST()
		default:
			dsbSY()
		}
	}
}

// Implemented in fence_arm64.s.

//go:noescape
func dsbSY()

//go:noescape
func dsbLD()

//go:noescape
func dsbST()

//go:noescape
func dmbISH()

//go:noescape
func dmbISHLD()

//go:noescape
func dmbISHST()

//go:noescape
func dmbOSH()

//go:noescape
func dmbOSHLD()

//go:noescape
func dmbOSHST()
