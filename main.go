// ABOUTME: Entry point for the wave2dpcm converter
// ABOUTME: Parses CLI flags and converts audio files into DPCM C headers
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/flashvoice/wave2dpcm/internal/app"
	"github.com/flashvoice/wave2dpcm/internal/config"
	"github.com/flashvoice/wave2dpcm/internal/ui"
	"github.com/flashvoice/wave2dpcm/internal/version"
)

// Environment variables supply the defaults; flags override them
var cfg = config.Load()

var (
	mode          = flag.String("mode", cfg.Mode, "Symbol width: 1bit or 2bit")
	thresholds    = flag.String("thresholds", cfg.Thresholds, "Comma-separated thresholds overriding the mode preset (2^w-1 ascending values)")
	outDir        = flag.String("out", cfg.OutDir, "Output directory for headers (default: next to each input)")
	resampler     = flag.String("resampler", cfg.Resampler, "Conversion to 8 kHz mono: internal, sox or auto")
	soxBinary     = flag.String("sox", cfg.SoxBinary, "sox executable")
	keepConformed = flag.Bool("keep-conformed", cfg.KeepConformed, "Also save the conformed clip as <name>_8000.wav")
	verify        = flag.Bool("verify", cfg.Verify, "Unpack each result and check the symbol count")
	jobs          = flag.Int("jobs", cfg.Jobs, "Files converted in parallel")
	opusChannels  = flag.Int("opus-channels", cfg.OpusChannels, "Channel count of .opus/.ogg inputs (1 or 2)")
	toneFreq      = flag.Float64("tone", 0, "Encode a generated sine tone of this frequency instead of files")
	toneDuration  = flag.Duration("tone-duration", time.Second, "Length of the generated tone")
	logFile       = flag.String("log-file", cfg.LogFile, "Log file path")
	debug         = flag.Bool("debug", cfg.Debug, "Include source locations in log lines")
	noTUI         = flag.Bool("no-tui", cfg.NoTUI, "Disable TUI, use streaming logs instead")
	showVersion   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input.wav [more inputs...]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Converts audio clips into packed DPCM C headers.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return 0
	}

	inputs := flag.Args()
	if *toneFreq > 0 && len(inputs) == 0 {
		inputs = []string{fmt.Sprintf("tone_%.0fhz", *toneFreq)}
	}
	if len(inputs) == 0 {
		flag.Usage()
		return 2
	}

	cfg.Mode = *mode
	cfg.Thresholds = *thresholds
	cfg.OutDir = *outDir
	cfg.Resampler = *resampler
	cfg.SoxBinary = *soxBinary
	cfg.KeepConformed = *keepConformed
	cfg.Verify = *verify
	cfg.Jobs = *jobs
	cfg.OpusChannels = *opusChannels
	cfg.LogFile = *logFile
	cfg.Debug = *debug
	cfg.NoTUI = *noTUI

	// TUI only when stdout is a terminal
	useTUI := !cfg.NoTUI && isatty.IsTerminal(os.Stdout.Fd())

	// Set up logging
	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		return 1
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.New().String()[:8]))

	log.Printf("Starting %s: %d input(s)", version.String(), len(inputs))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var opts []app.Option
	if *toneFreq > 0 {
		opts = append(opts, app.WithTone(*toneFreq, *toneDuration))
	}

	var tui *ui.TUI
	if useTUI {
		tui = ui.New(inputs, cfg.Mode)
		opts = append(opts, app.WithProgress(tui.Progress))
	}

	converter, err := app.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	var reports []app.Report
	if tui == nil {
		reports, err = converter.Run(ctx, inputs)
	} else {
		reports, err = runWithTUI(ctx, cancel, converter, tui, inputs)
	}

	printSummary(reports)
	if err != nil {
		log.Printf("Finished with errors: %v", err)
		return 1
	}
	return 0
}

// runWithTUI runs the batch in the background while the TUI owns the terminal
func runWithTUI(ctx context.Context, cancel context.CancelFunc, converter *app.App, tui *ui.TUI, inputs []string) ([]app.Report, error) {
	type result struct {
		reports []app.Report
		err     error
	}
	done := make(chan result, 1)

	go func() {
		reports, err := converter.Run(ctx, inputs)
		tui.Finish()
		done <- result{reports, err}
	}()

	go func() {
		select {
		case <-tui.QuitChan():
			log.Printf("Received quit signal from TUI")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := tui.Run(); err != nil {
		log.Printf("TUI error: %v", err)
	}

	res := <-done
	return res.reports, res.err
}

func printSummary(reports []app.Report) {
	var converted, failed int
	for _, r := range reports {
		if r.State == app.StateDone {
			converted++
			continue
		}
		failed++
		fmt.Fprintf(os.Stderr, "%s: %v\n", r.Input, r.Err)
	}
	fmt.Printf("%d converted, %d failed\n", converted, failed)
}
