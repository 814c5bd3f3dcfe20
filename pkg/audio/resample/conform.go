// ABOUTME: In-process format conformance
// ABOUTME: Downmixes, resamples and requantizes a clip to a target format
package resample

import (
	"fmt"
	"log"

	"github.com/flashvoice/wave2dpcm/pkg/audio"
)

// NeedsConversion reports whether f differs from target in rate, channels or depth
func NeedsConversion(f, target audio.Format) bool {
	return !f.Matches(target)
}

// Downmix averages interleaved channels into one
func Downmix(samples []int32, channels int) []int32 {
	if channels <= 1 {
		out := make([]int32, len(samples))
		copy(out, samples)
		return out
	}

	frames := len(samples) / channels
	mono := make([]int32, frames)
	for i := 0; i < frames; i++ {
		var sum int64
		for ch := 0; ch < channels; ch++ {
			sum += int64(samples[i*channels+ch])
		}
		mono[i] = int32(sum / int64(channels))
	}
	return mono
}

// Requantize drops the precision below bitDepth from 24-bit-range samples
func Requantize(samples []int32, bitDepth int) []int32 {
	out := make([]int32, len(samples))
	if bitDepth >= 24 {
		copy(out, samples)
		return out
	}

	shift := 24 - bitDepth
	for i, s := range samples {
		out[i] = (s >> shift) << shift
	}
	return out
}

// Conform converts buf to target's sample rate, channel count and bit depth.
// A buffer that already matches keeps its samples; only its codec is
// relabelled pcm, since decoded samples are raw PCM whatever the container.
func Conform(buf *audio.Buffer, target audio.Format) (*audio.Buffer, error) {
	if !NeedsConversion(buf.Format, target) {
		if buf.Format.Codec == "pcm" {
			return buf, nil
		}
		out := *buf
		out.Format.Codec = "pcm"
		return &out, nil
	}
	if target.Channels != 1 {
		return nil, fmt.Errorf("unsupported target channel count: %d (supported: 1)", target.Channels)
	}
	if buf.Format.Channels <= 0 || buf.Format.SampleRate <= 0 || target.SampleRate <= 0 {
		return nil, fmt.Errorf("cannot conform %v to %v", buf.Format, target)
	}

	samples := Downmix(buf.Samples, buf.Format.Channels)

	if buf.Format.SampleRate != target.SampleRate {
		samples = Linear(samples, buf.Format.SampleRate, target.SampleRate)
	}

	samples = Requantize(samples, target.BitDepth)

	log.Printf("Conformed %v (%d frames) to %v (%d frames)",
		buf.Format, buf.Frames(), target, len(samples))

	return &audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			Codec:      "pcm",
			SampleRate: target.SampleRate,
			Channels:   1,
			BitDepth:   target.BitDepth,
		},
	}, nil
}
