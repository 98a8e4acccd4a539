package membarrier

// Kind identifies the class of observer a barrier synchronizes with.
//
// The set of kinds is open: future versions may add variants, so callers
// switching over Kind should keep a default case. [Barrier] normalizes any
// value it does not recognize to KindMMIO, the strongest kind, rather than
// weakening to a no-op.
type Kind int

const (
	// KindMMIO orders memory accesses as well as MMIO-based device I/O.
	// This is the strongest kind and the zero value, making it the default
	// and the safe choice when no weaker kind clearly applies. Corresponds
	// to the mandatory mb/rmb/wmb Linux functions.
	KindMMIO Kind = iota

	// KindSMP orders memory accesses across an SMP system. Also suitable
	// for memory shared from a single-CPU VM guest with an SMP host.
	// Corresponds to the virt_mb/virt_rmb/virt_wmb Linux functions, which
	// match smp_mb/smp_rmb/smp_wmb on SMP-enabled kernels; unlike those,
	// this kind does not change behavior based on build configuration.
	KindSMP

	// KindDMA orders memory accesses between the CPU and DMA-capable
	// devices sharing memory, such as a NIC descriptor ring. Corresponds
	// to the dma_mb/dma_rmb/dma_wmb Linux functions.
	KindDMA

	// KindCompiler issues no CPU instruction. It only prevents the
	// compiler from moving memory accesses through the barrier.
	// Corresponds to the barrier() Linux function.
	KindCompiler
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindMMIO:
		return "mmio"
	case KindSMP:
		return "smp"
	case KindDMA:
		return "dma"
	case KindCompiler:
		return "compiler"
	default:
		return "unknown"
	}
}

// Type identifies which access directions a barrier orders.
//
// Like [Kind], the set is open; unrecognized values are normalized to
// TypeGeneral, never to something weaker.
type Type int

const (
	// TypeGeneral orders both read and write accesses. The zero value.
	// Corresponds to the *_mb family of Linux functions.
	TypeGeneral Type = iota

	// TypeRead orders read accesses only.
	// Corresponds to the *_rmb family of Linux functions.
	TypeRead

	// TypeWrite orders write accesses only.
	// Corresponds to the *_wmb family of Linux functions.
	TypeWrite
)

// String returns the type name for diagnostics.
func (t Type) String() string {
	switch t {
	case TypeGeneral:
		return "general"
	case TypeRead:
		return "read"
	case TypeWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Kinds returns all currently defined kinds, in declaration order.
// Useful for exercising every barrier combination in tests and tools.
func Kinds() []Kind {
	return []Kind{KindMMIO, KindSMP, KindDMA, KindCompiler}
}

// Types returns all currently defined types, in declaration order.
func Types() []Type {
	return []Type{TypeGeneral, TypeRead, TypeWrite}
}
