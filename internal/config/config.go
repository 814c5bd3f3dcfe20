// ABOUTME: Runtime configuration for the converter
// ABOUTME: Loads defaults from WAVE2DPCM_* environment variables; flags override them
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/flashvoice/wave2dpcm/pkg/dpcm"
)

// Resampler choices
const (
	ResamplerInternal = "internal"
	ResamplerSox      = "sox"
	ResamplerAuto     = "auto"
)

// Config holds all runtime configuration
type Config struct {
	// Encoding
	Mode       string // 1bit or 2bit
	Thresholds string // comma-separated override, empty for the mode's preset

	// Output
	OutDir        string // empty writes headers next to their inputs
	KeepConformed bool   // also save the 8 kHz mono clip as <base>_8000.wav
	Verify        bool   // unpack each result and check the symbol count

	// Conformance
	Resampler string // internal, sox or auto
	SoxBinary string

	// Decoding
	OpusChannels int

	// Execution
	Jobs int

	// Logging and display
	LogFile string
	Debug   bool
	NoTUI   bool
}

// Load reads configuration from environment variables with defaults
func Load() Config {
	return Config{
		Mode:          envStr("WAVE2DPCM_MODE", "2bit"),
		Thresholds:    envStr("WAVE2DPCM_THRESHOLDS", ""),
		OutDir:        envStr("WAVE2DPCM_OUT_DIR", ""),
		KeepConformed: envBool("WAVE2DPCM_KEEP_CONFORMED", false),
		Verify:        envBool("WAVE2DPCM_VERIFY", false),
		Resampler:     envStr("WAVE2DPCM_RESAMPLER", ResamplerAuto),
		SoxBinary:     envStr("WAVE2DPCM_SOX", "sox"),
		OpusChannels:  envInt("WAVE2DPCM_OPUS_CHANNELS", 1),
		Jobs:          envInt("WAVE2DPCM_JOBS", runtime.NumCPU()),
		LogFile:       envStr("WAVE2DPCM_LOG_FILE", "wave2dpcm.log"),
		Debug:         envBool("WAVE2DPCM_DEBUG", false),
		NoTUI:         envBool("WAVE2DPCM_NO_TUI", false),
	}
}

// Validate checks everything except the encoder settings, which DPCM checks
func (c Config) Validate() error {
	switch c.Resampler {
	case ResamplerInternal, ResamplerSox, ResamplerAuto:
	default:
		return fmt.Errorf("unknown resampler %q (supported: internal, sox, auto)", c.Resampler)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.OpusChannels != 1 && c.OpusChannels != 2 {
		return fmt.Errorf("opus channels must be 1 or 2, got %d", c.OpusChannels)
	}
	_, err := c.DPCM()
	return err
}

// DPCM returns the validated encoder configuration: the mode's preset, with
// its thresholds replaced when an override is set
func (c Config) DPCM() (dpcm.Config, error) {
	mode, err := dpcm.ParseMode(c.Mode)
	if err != nil {
		return dpcm.Config{}, err
	}

	cfg := mode.Config()
	if strings.TrimSpace(c.Thresholds) != "" {
		t, err := dpcm.ParseThresholds(c.Thresholds)
		if err != nil {
			return dpcm.Config{}, fmt.Errorf("invalid thresholds: %w", err)
		}
		cfg.Thresholds = t
	}

	if err := cfg.Validate(); err != nil {
		return dpcm.Config{}, err
	}
	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
