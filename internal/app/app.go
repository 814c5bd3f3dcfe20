// ABOUTME: Batch conversion orchestration
// ABOUTME: Runs each input through decode, conform, encode and header emission
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flashvoice/wave2dpcm/internal/config"
	"github.com/flashvoice/wave2dpcm/internal/sox"
	"github.com/flashvoice/wave2dpcm/pkg/audio"
	"github.com/flashvoice/wave2dpcm/pkg/audio/decode"
	"github.com/flashvoice/wave2dpcm/pkg/audio/encode"
	"github.com/flashvoice/wave2dpcm/pkg/audio/resample"
	"github.com/flashvoice/wave2dpcm/pkg/dpcm"
	"github.com/flashvoice/wave2dpcm/pkg/emit"
)

// State is where a job is in the pipeline
type State string

const (
	StateQueued     State = "queued"
	StateDecoding   State = "decoding"
	StateConforming State = "conforming"
	StateEncoding   State = "encoding"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Report describes one job. A copy is passed to the progress callback on
// every state change.
type Report struct {
	Index     int
	Input     string
	State     State
	Source    audio.Format  // format as decoded
	Duration  time.Duration // clip length
	Header    string        // written header path
	Conformed string        // written conformed WAV path, if kept
	Symbols   int
	Packed    int // bytes
	Dropped   int
	Err       error
}

// ErrOutputCollision is reported for inputs whose header, array name or
// conformed WAV would be the same as another input's
var ErrOutputCollision = errors.New("output collides with another input")

// Option configures an App
type Option func(*App)

// WithProgress registers a callback for job updates. It is called from
// worker goroutines and must be safe for concurrent use.
func WithProgress(fn func(Report)) Option {
	return func(a *App) {
		a.onProgress = fn
	}
}

// WithTone replaces file decoding with a generated sine tone, so each input
// names a clip instead of a file
func WithTone(freq float64, duration time.Duration) Option {
	return func(a *App) {
		a.open = func(string) (decode.Source, error) {
			return decode.NewToneSource(freq, 48000, duration), nil
		}
	}
}

// App converts audio files into DPCM headers
type App struct {
	cfg        config.Config
	dpcm       dpcm.Config
	useSox     bool
	onProgress func(Report)
	open       func(path string) (decode.Source, error)
}

// New validates cfg and resolves which resampler to use
func New(cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	dcfg, err := cfg.DPCM()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:  cfg,
		dpcm: dcfg,
	}
	a.open = func(path string) (decode.Source, error) {
		return decode.Open(path, decode.Options{OpusChannels: cfg.OpusChannels})
	}

	switch cfg.Resampler {
	case config.ResamplerSox:
		if err := sox.Available(cfg.SoxBinary); err != nil {
			return nil, err
		}
		a.useSox = true
	case config.ResamplerAuto:
		a.useSox = sox.Available(cfg.SoxBinary) == nil
	}

	for _, opt := range opts {
		opt(a)
	}

	log.Printf("Encoder: %d-bit symbols, thresholds %s, resampler %s (sox: %v), %d jobs",
		dcfg.BitWidth, dcfg.Thresholds, cfg.Resampler, a.useSox, cfg.Jobs)

	return a, nil
}

// Run converts every input. A failing input does not stop the others; the
// returned error joins every per-input failure.
func (a *App) Run(ctx context.Context, inputs []string) ([]Report, error) {
	reports := make([]Report, len(inputs))
	for i, input := range inputs {
		reports[i] = Report{Index: i, Input: input, State: StateQueued}
		a.progress(reports[i])
	}

	clashes := a.collisions(inputs)

	var g errgroup.Group
	g.SetLimit(a.cfg.Jobs)

	for i := range reports {
		r := &reports[i]
		if err, ok := clashes[i]; ok {
			a.fail(r, err)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				a.fail(r, err)
				return nil
			}
			a.process(ctx, r)
			return nil
		})
	}
	g.Wait()

	var errs []error
	for _, r := range reports {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Input, r.Err))
		}
	}
	return reports, errors.Join(errs...)
}

// collisions finds inputs that would write the same header file, declare the
// same array or save the same conformed WAV. Every input in a clashing group
// is reported, so nothing is silently overwritten.
func (a *App) collisions(inputs []string) map[int]error {
	type output struct {
		kind string
		key  func(string) string
	}
	outputs := []output{
		{"header", func(in string) string { return filepath.Clean(emit.HeaderPath(in, a.cfg.OutDir)) }},
		{"array name", emit.SymbolName},
	}
	if a.cfg.KeepConformed {
		outputs = append(outputs, output{"conformed WAV", func(in string) string {
			return filepath.Clean(ConformedPath(in, a.cfg.OutDir))
		}})
	}

	clashes := make(map[int]error)
	for _, o := range outputs {
		owners := make(map[string][]int)
		for i, in := range inputs {
			k := o.key(in)
			owners[k] = append(owners[k], i)
		}
		for k, idx := range owners {
			if len(idx) < 2 {
				continue
			}
			names := make([]string, len(idx))
			for j, i := range idx {
				names[j] = inputs[i]
			}
			for _, i := range idx {
				if _, seen := clashes[i]; !seen {
					clashes[i] = fmt.Errorf("%w: %s %s shared by %s", ErrOutputCollision, o.kind, k, strings.Join(names, ", "))
				}
			}
		}
	}
	return clashes
}

func (a *App) process(ctx context.Context, r *Report) {
	a.setState(r, StateDecoding)
	buf, err := a.decode(r.Input)
	if err != nil {
		a.fail(r, err)
		return
	}
	r.Source = buf.Format
	r.Duration = buf.Duration()

	a.setState(r, StateConforming)
	buf, err = a.conform(ctx, buf)
	if err != nil {
		a.fail(r, fmt.Errorf("failed to conform audio: %w", err))
		return
	}

	if a.cfg.KeepConformed {
		path := ConformedPath(r.Input, a.cfg.OutDir)
		if err := encode.WriteWAV(path, *buf); err != nil {
			a.fail(r, err)
			return
		}
		r.Conformed = path
	}

	a.setState(r, StateEncoding)
	enc, err := encode.NewDPCM(buf.Format, a.dpcm)
	if err != nil {
		a.fail(r, err)
		return
	}
	defer enc.Close()

	packed, err := enc.Encode(buf.Samples)
	if err != nil {
		a.fail(r, fmt.Errorf("failed to encode: %w", err))
		return
	}
	res := enc.LastResult()
	r.Symbols = res.Symbols
	r.Packed = len(packed)
	r.Dropped = res.Dropped

	if a.cfg.Verify {
		if err := Verify(packed, res, a.dpcm.BitWidth); err != nil {
			a.fail(r, err)
			return
		}
	}

	header := emit.HeaderPath(r.Input, a.cfg.OutDir)
	if err := emit.WriteHeaderFile(header, emit.SymbolName(r.Input), packed); err != nil {
		a.fail(r, err)
		return
	}
	r.Header = header

	log.Printf("Wrote %s: %d bytes from %d symbols (%s, %v)", header, r.Packed, r.Symbols, r.Source, r.Duration)
	a.setState(r, StateDone)
}

func (a *App) decode(input string) (*audio.Buffer, error) {
	src, err := a.open(input)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return decode.ReadAll(src)
}

func (a *App) conform(ctx context.Context, buf *audio.Buffer) (*audio.Buffer, error) {
	if !resample.NeedsConversion(buf.Format, audio.TargetFormat) {
		return resample.Conform(buf, audio.TargetFormat)
	}
	if a.useSox {
		return sox.Converter{Binary: a.cfg.SoxBinary}.Convert(ctx, buf, audio.TargetFormat)
	}
	return resample.Conform(buf, audio.TargetFormat)
}

func (a *App) setState(r *Report, s State) {
	r.State = s
	a.progress(*r)
}

func (a *App) fail(r *Report, err error) {
	r.Err = err
	log.Printf("Failed %s: %v", r.Input, err)
	a.setState(r, StateFailed)
}

func (a *App) progress(r Report) {
	if a.onProgress != nil {
		a.onProgress(r)
	}
}

// Verify unpacks packed and checks it accounts for every symbol that was
// not dropped
func Verify(packed []byte, res *dpcm.Result, width int) error {
	symbols, err := dpcm.Unpack(packed, width)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	if want := res.Symbols - res.Dropped; len(symbols) != want {
		return fmt.Errorf("verification failed: unpacked %d symbols, expected %d", len(symbols), want)
	}
	return nil
}

// ConformedPath returns where the 8 kHz copy of input is saved
func ConformedPath(input, outDir string) string {
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+"_8000.wav")
}
