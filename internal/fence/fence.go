// Package fence holds the per-architecture fence instruction tables.
//
// Exactly one backend is compiled per build, selected by GOARCH file
// suffixes and the purego build tag. Each backend implements Fence: an
// exhaustive mapping from (Kind, Op) to one fence instruction. Compiler-only
// barriers never reach this package; the dispatcher handles them itself.
package fence

// Kind is the architecture-facing barrier kind. It is narrower than the
// public kind: the compiler-only case is resolved before dispatch, so
// backends only ever see an observer class that requires a CPU fence.
type Kind uint8

const (
	// MMIO orders memory and memory-mapped device I/O. Strongest.
	MMIO Kind = iota
	// SMP orders memory across processors sharing memory.
	SMP
	// DMA orders memory between the CPU and DMA-capable devices.
	DMA
)

// Op selects which access directions the fence orders.
type Op uint8

const (
	// General orders reads and writes.
	General Op = iota
	// Read orders reads only.
	Read
	// Write orders writes only.
	Write
)
