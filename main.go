package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

type options struct {
	chunkLen int64
	overlap  int64
	workers  int
}

// compute runs the full pipeline over r and writes the report to w. The
// pool is created once and joined once; each worker drains the shared
// cursor until it passes size. A worker's read failure is diagnostic only:
// the survivors finish their share and the run still reports.
func compute(r io.ReaderAt, size int64, opts options, w io.Writer) error {
	src := &chunkSource{r: r, size: size, chunkLen: opts.chunkLen, overlap: opts.overlap}
	stats := newGlobalStats()

	g := new(errgroup.Group)
	for i := 0; i < opts.workers; i++ {
		g.Go(func() error {
			return src.worker(stats)
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("worker stopped early: %v", err)
	}

	return writeReport(w, stats.finalize())
}

func main() {
	inputFile := flag.String("inputfile", "measurements.txt", "input file of station;temperature lines")
	chunkLen := flag.Int64("chunksize", 16*1024*1024, "chunk size in bytes")
	overlap := flag.Int64("overlap", 64, "look-back margin in bytes for boundary correction")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	useMmap := flag.Bool("mmap", false, "memory-map the input instead of pread")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	var (
		r    io.ReaderAt
		size int64
	)
	if *useMmap {
		m, err := mmap.Open(*inputFile)
		if err != nil {
			log.Fatalf("mmap %s: %v", *inputFile, err)
		}
		defer m.Close()
		r, size = m, int64(m.Len())
	} else {
		f, err := os.Open(*inputFile)
		if err != nil {
			log.Fatalf("open %s: %v", *inputFile, err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			log.Fatalf("stat %s: %v", *inputFile, err)
		}
		r, size = f, info.Size()
	}

	opts := options{chunkLen: *chunkLen, overlap: *overlap, workers: *workers}
	if err := compute(r, size, opts, os.Stdout); err != nil {
		log.Fatalf("write report: %v", err)
	}
}
