// membarrier-smoke exercises every (kind, type) barrier combination on the
// host architecture, mirroring the reference demonstration loop. With
// -bench it also reports per-pair invocation latency.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/behrlich/membarrier"
	"github.com/behrlich/membarrier/internal/logging"
	"github.com/behrlich/membarrier/procbarrier"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "Verbose output")
		iters   = flag.Int("n", 1, "Iterations over the full kind/type matrix")
		bench   = flag.Bool("bench", false, "Measure per-pair invocation latency")
		proc    = flag.Bool("proc", false, "Also exercise process-wide membarrier(2) barriers")
	)
	flag.Parse()

	logConfig := logging.DefaultConfig()
	if *verbose {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.NewLogger(logConfig).WithArch(runtime.GOARCH)
	logging.SetDefault(logger)

	logger.Info("starting barrier smoke exercise",
		"goarch", runtime.GOARCH,
		"iterations", *iters)
	logCPUFeatures(logger)

	kinds := membarrier.Kinds()
	types := membarrier.Types()

	stats := make(map[[2]int]*pairStats, len(kinds)*len(types))
	for ki := range kinds {
		for ti := range types {
			stats[[2]int{ki, ti}] = &pairStats{}
		}
	}

	start := time.Now()
	for i := 0; i < *iters; i++ {
		for ki, kind := range kinds {
			for ti, ty := range types {
				if *bench {
					t0 := time.Now()
					membarrier.Barrier(kind, ty)
					stats[[2]int{ki, ti}].record(time.Since(t0))
				} else {
					membarrier.Barrier(kind, ty)
				}
				if *verbose && i == 0 {
					logger.WithBarrier(kind.String(), ty.String()).Debug("barrier executed")
				}
			}
		}
	}
	elapsed := time.Since(start)

	total := *iters * len(kinds) * len(types)
	logger.Info("smoke exercise complete",
		"barriers", total,
		"elapsed", elapsed.String())
	fmt.Printf("Executed %d barriers (%d kinds x %d types x %d iterations) on %s in %s\n",
		total, len(kinds), len(types), *iters, runtime.GOARCH, elapsed)

	if *bench {
		printStats(kinds, types, stats)
	}

	if *proc {
		if err := exerciseProcBarriers(logger); err != nil {
			logger.WithError(err).Error("process-wide barrier exercise failed")
			os.Exit(1)
		}
	}
}

// logCPUFeatures logs feature bits for diagnostics. Feature bits never
// influence instruction selection; that is fixed at build time by GOARCH.
func logCPUFeatures(logger *logging.Logger) {
	switch runtime.GOARCH {
	case "amd64", "386":
		logger.Debug("cpu features",
			"sse2", cpu.X86.HasSSE2,
			"avx", cpu.X86.HasAVX)
	case "arm64":
		logger.Debug("cpu features",
			"atomics", cpu.ARM64.HasATOMICS)
	}
}

func printStats(kinds []membarrier.Kind, types []membarrier.Type, stats map[[2]int]*pairStats) {
	fmt.Printf("\n%-10s %-8s %10s %10s %10s\n", "KIND", "TYPE", "OPS", "AVG(ns)", "MAX(ns)")
	for ki, kind := range kinds {
		for ti, ty := range types {
			s := stats[[2]int{ki, ti}]
			fmt.Printf("%-10s %-8s %10d %10d %10d\n",
				kind, ty, s.Ops.Load(), s.AvgNs(), s.MaxNs.Load())
		}
	}
}

// exerciseProcBarriers runs the process-wide barrier paths the kernel
// supports, registering first where required.
func exerciseProcBarriers(logger *logging.Logger) error {
	plog := logger.WithComponent("procbarrier")

	if !procbarrier.Supported() {
		plog.Warn("membarrier(2) not supported, skipping")
		return nil
	}

	mask, err := procbarrier.Query()
	if err != nil {
		return err
	}
	plog.Info("membarrier(2) supported", "commands", fmt.Sprintf("%#x", mask))

	if err := procbarrier.RegisterPrivateExpedited(); err != nil {
		return err
	}
	if err := procbarrier.PrivateExpedited(); err != nil {
		return err
	}
	plog.Info("private expedited barrier executed")

	// Global barriers may be unavailable on some configurations; treat
	// unsupported as a skip, anything else as a failure.
	if err := procbarrier.Global(); err != nil {
		if errors.Is(err, procbarrier.ErrUnsupported) {
			plog.Warn("global barrier unsupported, skipping")
			return nil
		}
		return err
	}
	plog.Info("global barrier executed")
	return nil
}
