// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/pianoseq/audio"
	"github.com/ik5/pianoseq/utils"
)

// WAVE format tags accepted as uncompressed PCM.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decode reads a whole PCM 16-bit WAV stream into a clip in one pass.
func Decode(r io.ReadSeeker) (*audio.Clip, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSampleData, err)
	}

	channels := int(dec.NumChans)
	data := buf.Data
	// drop a trailing partial frame
	data = data[:len(data)-len(data)%channels]

	samples := utils.IntsToInt16(data)

	return &audio.Clip{
		Params: audio.Params{
			Channels:    channels,
			SampleWidth: audio.SampleWidth16,
			FrameRate:   int(dec.SampleRate),
			Frames:      audio.FrameCount(samples, channels),
			CompType:    audio.CompTypeNone,
			CompName:    audio.CompNameNone,
		},
		Samples: samples,
	}, nil
}

// DecodeFile opens path and decodes it. A path that does not exist or is
// not a regular file yields ErrSampleMissing.
func DecodeFile(path string) (*audio.Clip, error) {
	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrSampleMissing, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	clip, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}
