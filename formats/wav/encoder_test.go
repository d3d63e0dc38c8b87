// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/pianoseq/audio"
	"github.com/ik5/pianoseq/internal/audiotest"
)

func monoClip(rate int, samples []int16) *audio.Clip {
	return &audio.Clip{
		Params: audio.Params{
			Channels:    1,
			SampleWidth: audio.SampleWidth16,
			FrameRate:   rate,
			Frames:      len(samples),
		},
		Samples: samples,
	}
}

func TestEncodeFile_ValidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []int16{0, 100, -100, 200, -200}

	params, err := EncodeFile(path, monoClip(8000, samples), DefaultSpeed)
	if err != nil {
		t.Fatalf("EncodeFile() error = %v, want nil", err)
	}

	if params.Frames != len(samples) {
		t.Errorf("Frames = %d, want %d", params.Frames, len(samples))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) < 44 {
		t.Fatalf("WAV file too small: %d bytes", len(data))
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestEncodeFile_TriplesFrameRate(t *testing.T) {
	t.Parallel()

	rates := []int{8000, 16000, 22050, 44100, 48000}

	for _, rate := range rates {
		path := filepath.Join(t.TempDir(), "out.wav")

		params, err := EncodeFile(path, monoClip(rate, []int16{1, 2, 3, 4}), DefaultSpeed)
		if err != nil {
			t.Fatalf("EncodeFile(rate=%d) error = %v", rate, err)
		}

		if params.FrameRate != 3*rate {
			t.Errorf("params.FrameRate = %d, want %d", params.FrameRate, 3*rate)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		stored := binary.LittleEndian.Uint32(data[24:28])
		if int(stored) != 3*rate {
			t.Errorf("stored frame rate = %d, want %d", stored, 3*rate)
		}
	}
}

func TestEncodeFile_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	original := []int16{0, 100, -100, 32767, -32768, 12345, -6789}

	if _, err := EncodeFile(path, monoClip(16000, original), 1); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	clip, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	if clip.Params.FrameRate != 16000 {
		t.Errorf("FrameRate = %d, want 16000", clip.Params.FrameRate)
	}

	if clip.Params.Channels != 1 {
		t.Errorf("Channels = %d, want 1", clip.Params.Channels)
	}

	if len(clip.Samples) != len(original) {
		t.Fatalf("len(Samples) = %d, want %d", len(clip.Samples), len(original))
	}

	for i := range original {
		if clip.Samples[i] != original[i] {
			t.Errorf("Samples[%d] = %d, want %d", i, clip.Samples[i], original[i])
		}
	}
}

func TestEncodeFile_StereoDownmix(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	clip := &audio.Clip{
		Params: audio.Params{
			Channels:    2,
			SampleWidth: audio.SampleWidth16,
			FrameRate:   44100,
			Frames:      99, // not trusted
		},
		Samples: []int16{0, 0, 100, -100, 32767, 32767},
	}

	params, err := EncodeFile(path, clip, DefaultSpeed)
	if err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	if params.Channels != 1 {
		t.Errorf("Channels = %d, want 1", params.Channels)
	}

	if params.Frames != 3 {
		t.Errorf("Frames = %d, want 3", params.Frames)
	}

	got, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	want := []int16{0, 0, 32767}
	if got.Params.Channels != 1 {
		t.Errorf("decoded Channels = %d, want 1", got.Params.Channels)
	}

	if got.Params.FrameRate != 3*44100 {
		t.Errorf("decoded FrameRate = %d, want %d", got.Params.FrameRate, 3*44100)
	}

	if len(got.Samples) != len(want) {
		t.Fatalf("decoded len = %d, want %d", len(got.Samples), len(want))
	}

	for i := range want {
		if got.Samples[i] != want[i] {
			t.Errorf("decoded[%d] = %d, want %d", i, got.Samples[i], want[i])
		}
	}
}

func TestEncodeFile_UnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "dir", "out.wav")

	_, err := EncodeFile(path, monoClip(8000, []int16{1, 2}), DefaultSpeed)
	if !errors.Is(err, ErrWrite) {
		t.Errorf("EncodeFile() error = %v, want ErrWrite", err)
	}
}

func TestEncodeFile_Truncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	audiotest.WriteFile(t, path, make([]byte, 4096))

	if _, err := EncodeFile(path, monoClip(8000, []int16{7, 8}), 1); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	clip, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	if len(clip.Samples) != 2 {
		t.Errorf("len(Samples) = %d, want 2", len(clip.Samples))
	}
}

func TestPrepare_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		clip    *audio.Clip
		speed   int
		wantErr error
	}{
		{
			name:    "zero speed",
			clip:    monoClip(8000, []int16{1}),
			speed:   0,
			wantErr: ErrInvalidSpeed,
		},
		{
			name:    "empty buffer",
			clip:    monoClip(8000, nil),
			speed:   DefaultSpeed,
			wantErr: ErrNoSampleData,
		},
		{
			name: "8-bit width",
			clip: &audio.Clip{
				Params:  audio.Params{Channels: 1, SampleWidth: 1, FrameRate: 8000},
				Samples: []int16{1},
			},
			speed:   DefaultSpeed,
			wantErr: ErrOnlyPCM16bitSupported,
		},
		{
			name: "no channels",
			clip: &audio.Clip{
				Params:  audio.Params{Channels: 0, SampleWidth: 2, FrameRate: 8000},
				Samples: []int16{1},
			},
			speed:   DefaultSpeed,
			wantErr: audio.ErrInvalidChannels,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Prepare(tt.clip, tt.speed)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Prepare() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrepare_WidthClamped(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{
		Params:  audio.Params{Channels: 1, SampleWidth: 4, FrameRate: 8000},
		Samples: []int16{1, 2},
	}

	params, _, err := Prepare(clip, DefaultSpeed)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if params.SampleWidth != 2 {
		t.Errorf("SampleWidth = %d, want 2", params.SampleWidth)
	}
}

func TestEncodeFile_InvalidClipLeavesNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")

	_, err := EncodeFile(path, monoClip(8000, nil), DefaultSpeed)
	if !errors.Is(err, ErrNoSampleData) {
		t.Fatalf("EncodeFile() error = %v, want ErrNoSampleData", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output file exists after failed encode: %v", err)
	}
}

// BenchmarkEncodeFile benchmarks writing one second of 44.1kHz stereo.
func BenchmarkEncodeFile(b *testing.B) {
	samples := audiotest.Sine(44100, 2, 44100, 440)
	clip := &audio.Clip{
		Params:  audio.Params{Channels: 2, SampleWidth: 2, FrameRate: 44100},
		Samples: samples,
	}
	path := filepath.Join(b.TempDir(), "bench.wav")

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = EncodeFile(path, clip, DefaultSpeed)
	}
}
