package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/dropbox/godropbox/math2/rand2"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LyricLy/minefair/encoding/stream"
	"github.com/LyricLy/minefair/executor"
	"github.com/LyricLy/minefair/logging"
)

var cmd = &cobra.Command{
	Use:   "scan_benchmark",
	Short: "Generate a random puzzles file and time a full density count",
	Args:  cobra.NoArgs,
	Run:   runBenchmark,
}

var flagBenchmark = struct {
	NumRecords int
	MaxSide    int
	Compress   bool
	Keep       bool
}{}

func init() {
	cmd.Flags().IntVar(&flagBenchmark.NumRecords, "num_records", 100000, "number of records to generate")
	cmd.Flags().IntVar(&flagBenchmark.MaxSide, "max_side", 16, "largest grid width or height")
	cmd.Flags().BoolVar(&flagBenchmark.Compress, "compress", false, "write the records as a zstd stream")
	cmd.Flags().BoolVar(&flagBenchmark.Keep, "keep", false, "keep the generated file")
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// The densities the puzzle generator picks between.
var densities = []float32{0.45, 0.55}

func runBenchmark(_ *cobra.Command, _ []string) {
	logger, err := logging.NewLogger(os.Stderr, logging.FormatPlain, "info")
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot configure logging")
	}
	log.Logger = logger
	go func() {
		log.Info().Err(http.ListenAndServe("localhost:6060", nil)).Msg("pprof server stopped")
	}()

	dir, err := os.MkdirTemp("", "scan_benchmark")
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot create temp dir")
	}
	if !flagBenchmark.Keep {
		defer func() {
			_ = os.RemoveAll(dir)
		}()
	}
	path := filepath.Join(dir, "puzzles")

	start := time.Now()
	err = generate(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot generate puzzles file")
	}
	stat, err := os.Stat(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot stat puzzles file")
	}
	log.Info().
		Int("records", flagBenchmark.NumRecords).
		Str("size", humanize.IBytes(uint64(stat.Size()))).
		Dur("elapsed", time.Since(start)).
		Str("path", path).
		Msg("Done generating")

	start = time.Now()
	scan, err := stream.NewScan(path, stream.Options{})
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot open puzzles file")
	}
	table, err := executor.CountDensities(scan, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Scan failed")
	}
	elapsed := time.Since(start)
	log.Info().
		Int("records", table.Total()).
		Int("densities", table.Len()).
		Str("scanned", humanize.IBytes(uint64(scan.Offset()))).
		Dur("elapsed", elapsed).
		Str("rate", humanize.IBytes(uint64(float64(scan.Offset())/elapsed.Seconds()))+"/s").
		Msg("Done scanning")
	err = scan.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot close puzzles file")
	}
}

func generate(path string) error {
	open := stream.NewWrite
	if flagBenchmark.Compress {
		open = stream.NewCompressedWrite
	}
	w, err := open(path)
	if err != nil {
		return err
	}
	for i := 0; i < flagBenchmark.NumRecords; i++ {
		width := rand2.Intn(flagBenchmark.MaxSide) + 1
		height := rand2.Intn(flagBenchmark.MaxSide) + 1
		cells := make([]float32, width*height)
		for j := range cells {
			// Unrevealed cells hold -1; revealed ones hold their number + 2.
			cells[j] = float32(rand2.Intn(11) - 1)
		}
		density := densities[rand2.Intn(len(densities))]
		_, err = w.WriteRecord(float32(width), float32(height), density, cells)
		if err != nil {
			_ = w.Close()
			return err
		}
	}
	return w.Close()
}
