// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM data model and channel mixing.
//
// # Data Model
//
// Params describes a PCM stream the way the WAV header does:
//
//	type Params struct {
//	    Channels    int
//	    SampleWidth int
//	    FrameRate   int
//	    Frames      int
//	    CompType    string
//	    CompName    string
//	}
//
// A Clip pairs Params with an interleaved []int16 buffer. A frame is one
// instant across all channels, so a stereo frame holds two samples.
//
// # Channel Mixing
//
// DownmixToMono converts multi-channel audio to mono by averaging each frame:
//
//	mono, err := audio.DownmixToMono(samples, 2)
//
// The mean is rounded to nearest with ties away from zero, so the mix has no
// systematic bias toward zero.
//
// # Sample Format
//
// Samples are signed 16-bit integers:
//   - 0 represents silence
//   - 32767 represents maximum positive amplitude
//   - -32768 represents maximum negative amplitude
package audio
