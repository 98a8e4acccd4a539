//go:build riscv64 && !purego

package fence

// Fence executes the riscv64 FENCE instruction for (kind, op).
//
// RISC-V expresses device I/O ordering directly in the FENCE
// predecessor/successor sets (I/O vs R/W), so MMIO and DMA collapse onto
// the same encodings: both need ordering against device-visible accesses,
// and the ISA has no finer distinction between the two. SMP barriers order
// plain memory reads and writes only.
func Fence(kind Kind, op Op) {
	if kind == SMP {
		switch op {
		case Read:
			fenceR()
		case Write:
			fenceW()
		default:
			fenceRW()
		}
		return
	}
	// MMIO and DMA.
	switch op {
	case Read:
		fenceIR()
	case Write:
		fenceOW()
	default:
		fenceIORW()
	}
}

// Implemented in fence_riscv64.s.

//go:noescape
func fenceIORW()

//go:noescape
func fenceIR()

//go:noescape
func fenceOW()

//go:noescape
func fenceRW()

//go:noescape
func fenceR()

//go:noescape
func fenceW()
