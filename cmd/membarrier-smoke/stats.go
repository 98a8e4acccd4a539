package main

import (
	"sync/atomic"
	"time"
)

// latencyBuckets defines the latency histogram buckets in nanoseconds.
// Barriers cost a handful of cycles, so buckets cover 50ns to 100us.
var latencyBuckets = []uint64{
	50,
	100,
	250,
	500,
	1_000,
	2_500,
	10_000,
	100_000,
}

const numLatencyBuckets = 8

// pairStats tracks invocation statistics for one (kind, type) pair.
type pairStats struct {
	Ops     atomic.Uint64 // Total barrier invocations
	TotalNs atomic.Uint64 // Cumulative latency in nanoseconds
	MaxNs   atomic.Uint64 // Maximum observed latency

	// Latency histogram (cumulative counts): Buckets[i] counts
	// invocations with latency <= latencyBuckets[i].
	Buckets [numLatencyBuckets]atomic.Uint64
}

// record records one barrier invocation.
func (s *pairStats) record(d time.Duration) {
	ns := uint64(d.Nanoseconds())
	s.Ops.Add(1)
	s.TotalNs.Add(ns)

	for {
		current := s.MaxNs.Load()
		if ns <= current {
			break
		}
		if s.MaxNs.CompareAndSwap(current, ns) {
			break
		}
	}

	for i, bound := range latencyBuckets {
		if ns <= bound {
			s.Buckets[i].Add(1)
		}
	}
}

// AvgNs returns the average invocation latency in nanoseconds.
func (s *pairStats) AvgNs() uint64 {
	ops := s.Ops.Load()
	if ops == 0 {
		return 0
	}
	return s.TotalNs.Load() / ops
}
