package main

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/dropbox/godropbox/errors"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LyricLy/minefair"
	"github.com/LyricLy/minefair/encoding/stream"
	"github.com/LyricLy/minefair/executor"
	"github.com/LyricLy/minefair/logging"
)

var cmd = &cobra.Command{
	Use:   "count_densities",
	Short: "Count how often each density occurs in a puzzles file",
	Args:  cobra.NoArgs,
	Run:   countDensities,
}

var flagCount = struct {
	File      string
	Quiet     bool
	Lenient   bool
	Limit     int
	Top       int
	LogLevel  string
	LogFormat string
}{}

func init() {
	cmd.Flags().StringVarP(&flagCount.File, "file", "f", "puzzles", "Puzzles file to scan")
	cmd.Flags().BoolVarP(&flagCount.Quiet, "quiet", "q", false, "Do not print per-record diagnostics")
	cmd.Flags().BoolVar(&flagCount.Lenient, "lenient", false, "Accept a final record whose cells are cut short")
	cmd.Flags().IntVar(&flagCount.Limit, "limit", 0, "Stop after this many records (0 for no limit)")
	cmd.Flags().IntVar(&flagCount.Top, "top", 0, "Only report the N most common densities (0 for all)")
	cmd.Flags().StringVar(&flagCount.LogLevel, "log-level", "info", "Log level")
	cmd.Flags().StringVar(&flagCount.LogFormat, "log-format", logging.FormatPlain, "Log format (plain or json)")
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func countDensities(_ *cobra.Command, _ []string) {
	logger, err := logging.NewLogger(os.Stderr, flagCount.LogFormat, flagCount.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot configure logging")
	}
	log.Logger = logger

	err = count(os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Str("file", flagCount.File).Msg("Count failed")
	}
}

// count scans the puzzles file named by the flags, writing diagnostics and
// the report to stdout.  Nothing but the diagnostics read so far is written
// if the scan fails.
func count(stdout io.Writer) error {
	scan, err := stream.NewScan(flagCount.File, stream.Options{Lenient: flagCount.Lenient})
	if err != nil {
		return err
	}
	log.Debug().Str("file", flagCount.File).Bool("lenient", flagCount.Lenient).Msg("Scanning")

	var iter minefair.Iterator = scan
	if flagCount.Limit > 0 {
		iter = executor.NewLimit(iter, flagCount.Limit)
	}
	defer func() {
		_ = iter.Close()
	}()
	out := bufio.NewWriter(stdout)
	var observe minefair.Observer
	if !flagCount.Quiet {
		observe = executor.NewDiagnosticPrinter(out)
	}

	start := time.Now()
	table, err := executor.CountDensities(iter, observe)
	if err != nil {
		// Keep the diagnostics printed so far; they locate the bad record.
		_ = out.Flush()
		return errors.Wrapf(err, "scan failed after %d bytes", scan.Offset())
	}
	err = executor.WriteReport(out, table.MostCommon(flagCount.Top))
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		return errors.Wrap(err, "cannot write report")
	}

	log.Info().
		Int("records", table.Total()).
		Int("densities", table.Len()).
		Str("scanned", humanize.IBytes(uint64(scan.Offset()))).
		Dur("elapsed", time.Since(start)).
		Msg("Done")
	return iter.Close()
}
