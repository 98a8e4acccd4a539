package membarrier

import "github.com/behrlich/membarrier/internal/fence"

// Barrier enforces the memory ordering described by kind and ty at the
// call site, as perceived by kind's class of observer.
//
// The call executes at most one fence instruction (none for KindCompiler),
// preserves all flags and registers, never allocates, never blocks, and is
// safe to invoke from any execution context. Every currently defined
// (kind, ty) pair is valid and the call cannot fail; unrecognized values
// are normalized to the strongest interpretation (KindMMIO, TypeGeneral).
//
// The instruction selected for a given pair is fixed at build time by
// GOARCH and the purego tag; see the package documentation for the
// per-architecture tables.
func Barrier(kind Kind, ty Type) {
	var fk fence.Kind
	switch kind {
	case KindCompiler:
		compilerBarrier()
		return
	case KindSMP:
		fk = fence.SMP
	case KindDMA:
		fk = fence.DMA
	default:
		// KindMMIO, and any kind this build does not know about.
		// Unknown kinds get the strongest barrier, never a weaker one.
		fk = fence.MMIO
	}

	var op fence.Op
	switch ty {
	case TypeRead:
		op = fence.Read
	case TypeWrite:
		op = fence.Write
	default:
		op = fence.General
	}

	fence.Fence(fk, op)
}

// compilerBarrier prevents the compiler from reordering or eliminating
// memory accesses across the call without emitting any fence instruction.
//
// A call the inliner is barred from flattening is opaque to the compiler:
// it must assume the callee may read or write any memory visible to it, so
// pending stores cannot be sunk past the call and later loads cannot be
// hoisted above it. The CPU remains free to reorder; that is the contract.
//
//go:noinline
func compilerBarrier() {}
