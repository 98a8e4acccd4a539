// Package membarrier provides cross-architecture memory barriers for
// low-level Go code that shares memory with agents outside the Go memory
// model: memory-mapped device registers, DMA-capable hardware, other
// processors polling mmap'd rings, or an SMP host observing a guest.
//
// When compiling with optimizations the compiler may reorder independent
// memory accesses, and modern CPUs reorder them again at execution time.
// A memory barrier restricts that reordering at a program point, relative
// to a chosen class of observer. To insert one, call [Barrier]:
//
//	membarrier.Barrier(membarrier.KindMMIO, membarrier.TypeGeneral)
//
// The API mirrors the Linux kernel memory barrier wrappers. [Kind] selects
// the class of observer being synchronized with (the kernel's mb/virt_mb/
// dma_mb/barrier families) and [Type] selects which access directions are
// ordered (the mb/rmb/wmb suffixes). The [MB], [RMB], [WMB] and related
// convenience functions name the common combinations directly.
//
// # Choosing a kind
//
// The kind must match the actual hardware relationship being synchronized:
// use KindDMA, not KindSMP, when handing a buffer descriptor to a
// DMA-capable device, and KindMMIO when ordering device register accesses.
// KindMMIO is the strongest kind and the zero value, so it is also the safe
// choice when no weaker kind clearly applies. The library cannot detect a
// wrong kind or a barrier placed at the wrong program point; misuse shows up
// only as rare, timing-dependent reordering elsewhere.
//
// # Supported architectures
//
// Instruction selection is fixed at build time by GOARCH; runtime CPU
// detection is never used.
//
//	GOARCH   Instructions
//	amd64    MFENCE / LFENCE / SFENCE
//	386      MFENCE / LFENCE / SFENCE
//	arm64    DSB (MMIO), DMB ISH* (SMP), DMB OSH* (DMA)
//	riscv64  FENCE with per-kind predecessor/successor sets
//
// Building with the purego tag replaces the assembly backends with a
// portable fallback built on sync/atomic. The fallback issues a full
// read-modify-write fence for every combination, so it is never weaker than
// the requested barrier, only possibly stronger. Any other GOARCH fails to
// compile unless purego is set; an unsupported target is a build error, not
// a silent no-op.
//
// Every call executes at most one fence instruction, preserves all flags
// and registers, never allocates, and is safe from any execution context.
package membarrier
