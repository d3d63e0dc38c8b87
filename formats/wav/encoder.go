// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/pianoseq/audio"
	"github.com/ik5/pianoseq/utils"
)

// DefaultSpeed is the frame rate multiplier applied on encode.
const DefaultSpeed = 3

// Prepare applies the output transform to clip without writing anything:
// multi-channel audio is down-mixed to mono, the sample width is capped at
// 16 bits and the frame rate is multiplied by speed. No resampling is done,
// so pitch and duration both shift. The returned params describe the
// returned buffer.
func Prepare(clip *audio.Clip, speed int) (audio.Params, []int16, error) {
	if speed < 1 {
		return audio.Params{}, nil, ErrInvalidSpeed
	}

	p := clip.Params
	samples := clip.Samples

	if p.Channels > 1 {
		mono, err := audio.DownmixToMono(samples, p.Channels)
		if err != nil {
			return audio.Params{}, nil, fmt.Errorf("%w", err)
		}
		samples = mono
	} else if p.Channels < 1 {
		return audio.Params{}, nil, audio.ErrInvalidChannels
	}

	width := min(p.SampleWidth, audio.SampleWidth16)
	if width != audio.SampleWidth16 {
		return audio.Params{}, nil, ErrOnlyPCM16bitSupported
	}

	if len(samples) == 0 {
		return audio.Params{}, nil, ErrNoSampleData
	}

	return audio.Params{
		Channels:    1,
		SampleWidth: width,
		FrameRate:   p.FrameRate * speed,
		Frames:      len(samples),
		CompType:    audio.CompTypeNone,
		CompName:    audio.CompNameNone,
	}, samples, nil
}

// Encode writes clip to w as a mono PCM 16-bit WAV sped up by speed.
// The header is written by go-audio once all frames are in, so w must
// support seeking.
func Encode(w io.WriteSeeker, clip *audio.Clip, speed int) (audio.Params, error) {
	params, samples, err := Prepare(clip, speed)
	if err != nil {
		return audio.Params{}, err
	}

	enc := gowav.NewEncoder(w, params.FrameRate, params.SampleWidth*8, params.Channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: params.Channels,
			SampleRate:  params.FrameRate,
		},
		Data:           utils.Int16sToInts(samples),
		SourceBitDepth: params.SampleWidth * 8,
	}

	if err := enc.Write(buf); err != nil {
		return audio.Params{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := enc.Close(); err != nil {
		return audio.Params{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return params, nil
}

// EncodeFile creates or truncates path and encodes clip into it.
func EncodeFile(path string, clip *audio.Clip, speed int) (audio.Params, error) {
	// validate before touching the filesystem
	if _, _, err := Prepare(clip, speed); err != nil {
		return audio.Params{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return audio.Params{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	params, err := Encode(f, clip, speed)
	if err != nil {
		_ = f.Close()
		return audio.Params{}, err
	}

	if err := f.Close(); err != nil {
		return audio.Params{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return params, nil
}
