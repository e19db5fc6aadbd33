package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"onebrc/internal/fastbrc"
)

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	nworkers := flag.Int("n", runtime.NumCPU(), "number of parallel workers")
	inputFile := flag.String("f", "data/measurements.txt", "input file")
	var loglevel slog.Level
	flag.TextVar(&loglevel, "loglevel", slog.LevelInfo, "loglevel")

	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: loglevel,
	})))

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	data, unmap, err := fastbrc.Mmap(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer unmap()

	slog.Debug("mapped input", "bytes", len(data), "workers", *nworkers)

	table, err := fastbrc.Run(data, *nworkers)
	if err != nil {
		log.Fatalf("aggregate: %s", err)
	}

	if err := fastbrc.WriteSummary(os.Stdout, table); err != nil {
		log.Fatalf("write summary: %s", err)
	}
	slog.Debug("all done", "stations", table.Len())
}
