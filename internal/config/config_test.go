// ABOUTME: Tests for configuration loading and validation
// ABOUTME: Covers environment defaults, overrides and encoder settings
package config

import (
	"errors"
	"testing"

	"github.com/flashvoice/wave2dpcm/pkg/dpcm"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"WAVE2DPCM_MODE", "WAVE2DPCM_RESAMPLER", "WAVE2DPCM_JOBS", "WAVE2DPCM_VERIFY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Mode != "2bit" {
		t.Errorf("expected mode 2bit, got %s", cfg.Mode)
	}
	if cfg.Resampler != ResamplerAuto {
		t.Errorf("expected resampler auto, got %s", cfg.Resampler)
	}
	if cfg.Jobs < 1 {
		t.Errorf("expected at least one job, got %d", cfg.Jobs)
	}
	if cfg.Verify {
		t.Error("expected verify off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WAVE2DPCM_MODE", "1bit")
	t.Setenv("WAVE2DPCM_JOBS", "3")
	t.Setenv("WAVE2DPCM_VERIFY", "true")
	t.Setenv("WAVE2DPCM_OUT_DIR", "/tmp/headers")

	cfg := Load()
	if cfg.Mode != "1bit" {
		t.Errorf("expected mode 1bit, got %s", cfg.Mode)
	}
	if cfg.Jobs != 3 {
		t.Errorf("expected 3 jobs, got %d", cfg.Jobs)
	}
	if !cfg.Verify {
		t.Error("expected verify on")
	}
	if cfg.OutDir != "/tmp/headers" {
		t.Errorf("expected out dir /tmp/headers, got %s", cfg.OutDir)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("WAVE2DPCM_OPUS_CHANNELS", "two")

	if cfg := Load(); cfg.OpusChannels != 1 {
		t.Errorf("expected fallback of 1 opus channel, got %d", cfg.OpusChannels)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Mode: "2bit", Resampler: ResamplerInternal, Jobs: 1, OpusChannels: 1}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown resampler", func(c *Config) { c.Resampler = "ffmpeg" }, true},
		{"zero jobs", func(c *Config) { c.Jobs = 0 }, true},
		{"three opus channels", func(c *Config) { c.OpusChannels = 3 }, true},
		{"unknown mode", func(c *Config) { c.Mode = "4bit" }, true},
		{"bad thresholds", func(c *Config) { c.Thresholds = "0.1,0" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDPCM(t *testing.T) {
	cfg := Config{Mode: "1bit"}
	got, err := cfg.DPCM()
	if err != nil {
		t.Fatalf("DPCM failed: %v", err)
	}
	if got.BitWidth != 1 || len(got.Thresholds) != 1 {
		t.Errorf("expected 1-bit preset, got %+v", got)
	}

	cfg = Config{Mode: "2bit", Thresholds: "-0.1, 0, 0.1"}
	got, err = cfg.DPCM()
	if err != nil {
		t.Fatalf("DPCM failed: %v", err)
	}
	if got.Thresholds[0] != -0.1 || got.Thresholds[2] != 0.1 {
		t.Errorf("expected threshold override, got %v", got.Thresholds)
	}
}

func TestDPCM_ThresholdCountMismatch(t *testing.T) {
	cfg := Config{Mode: "1bit", Thresholds: "-0.05,0,0.05"}

	_, err := cfg.DPCM()
	if !errors.Is(err, dpcm.ErrMisconfiguredThresholds) {
		t.Errorf("expected ErrMisconfiguredThresholds, got %v", err)
	}
}
