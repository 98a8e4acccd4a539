package membarrier

// Convenience wrappers named after the Linux kernel barrier functions they
// correspond to. Each is exactly Barrier with the matching kind and type.

// MB is a general MMIO-strength barrier (Linux mb).
func MB() { Barrier(KindMMIO, TypeGeneral) }

// RMB is a read MMIO-strength barrier (Linux rmb).
func RMB() { Barrier(KindMMIO, TypeRead) }

// WMB is a write MMIO-strength barrier (Linux wmb).
func WMB() { Barrier(KindMMIO, TypeWrite) }

// SMPMB is a general SMP barrier (Linux virt_mb / smp_mb).
func SMPMB() { Barrier(KindSMP, TypeGeneral) }

// SMPRMB is a read SMP barrier (Linux virt_rmb / smp_rmb).
func SMPRMB() { Barrier(KindSMP, TypeRead) }

// SMPWMB is a write SMP barrier (Linux virt_wmb / smp_wmb).
func SMPWMB() { Barrier(KindSMP, TypeWrite) }

// DMAMB is a general DMA barrier (Linux dma_mb).
func DMAMB() { Barrier(KindDMA, TypeGeneral) }

// DMARMB is a read DMA barrier (Linux dma_rmb).
func DMARMB() { Barrier(KindDMA, TypeRead) }

// DMAWMB is a write DMA barrier (Linux dma_wmb).
func DMAWMB() { Barrier(KindDMA, TypeWrite) }

// CompilerBarrier constrains only the compiler (Linux barrier).
func CompilerBarrier() { Barrier(KindCompiler, TypeGeneral) }
