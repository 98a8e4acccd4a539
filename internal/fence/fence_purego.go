//go:build purego

package fence

import "sync/atomic"

// dummy exists only to give the fallback fence an address to operate on.
var dummy int64

// Fence is the portable fallback backend, selected by the purego build tag.
//
// An atomic read-modify-write compiles to a sequentially consistent
// operation on every Go port (LOCK XADD on x86, LDADDAL or an
// acquire-release LL/SC loop on arm64, an AMO bracketed by fences on
// riscv64). That is a full fence for every (kind, op) pair: stronger than
// some requests need, never weaker. The delta of zero leaves dummy
// unchanged, so the only effect is the ordering.
func Fence(kind Kind, op Op) {
	_, _ = kind, op
	atomic.AddInt64(&dummy, 0)
}
