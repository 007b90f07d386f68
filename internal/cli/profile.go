package cli

import (
	"bytes"
	"fmt"
	"lsbsteg/internal/logging"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
)

// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
// having to sort through too many dump files
var MemorySampleRate = 0.5

// startCPUProfiler writes a CPU profile to profilePath until the returned teardown is called
func startCPUProfiler(profilePath string) (func() error, error) {
	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return nil, err
	}

	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		_ = profileOutput.Close()
		return nil, fmt.Errorf("starting CPU profiler: %w", err)
	}

	return func() error {
		pprof.StopCPUProfile()
		return profileOutput.Close()
	}, nil
}

type memProfiler struct {
	dumpPath           string
	heapDumps          [][]byte
	shouldProfilerStop chan struct{}
	stopped            chan struct{}
	logger             *logging.Logger
}

// startMemoryProfiler samples the heap at MemorySampleRate and writes every sample to dumpPath when the returned
// teardown is called
func startMemoryProfiler(dumpPath string, logger *logging.Logger) func() error {
	if MemorySampleRate <= 0 {
		return func() error { return nil }
	}

	p := &memProfiler{
		dumpPath:           dumpPath,
		shouldProfilerStop: make(chan struct{}),
		stopped:            make(chan struct{}),
		logger:             logger,
	}

	go func() {
		defer close(p.stopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.shouldProfilerStop:
				return
			case <-ticker.C:
				p.dump()
			}
		}
	}()
	return p.stop
}

func (p *memProfiler) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		p.logger.WithError(err).Warn("Error writing heap profile")
		return
	}
	p.heapDumps = append(p.heapDumps, w.Bytes())
}

func (p *memProfiler) stop() error {
	close(p.shouldProfilerStop)
	<-p.stopped
	p.dump()

	if err := os.MkdirAll(p.dumpPath, os.ModePerm); err != nil {
		return err
	}
	for dIdx, dump := range p.heapDumps {
		if err := os.WriteFile(filepath.Join(p.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644); err != nil {
			return err
		}
	}
	p.logger.Debug("Wrote memory profiles", "dir", p.dumpPath, "count", len(p.heapDumps))
	return nil
}
