// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM 16-bit WAV files.
//
// It uses github.com/go-audio/wav for the RIFF container and exchanges
// samples with the rest of the module as audio.Clip values.
//
// # Decoding
//
// Decode reads a whole stream in one pass:
//
//	clip, err := wav.DecodeFile("sounds/piano_a.wav")
//	if errors.Is(err, wav.ErrSampleMissing) {
//	    // no such file
//	} else if wav.IsFormatError(err) {
//	    // not a PCM 16-bit WAV
//	}
//
// # Encoding
//
// EncodeFile writes a clip as mono PCM 16-bit. Multi-channel clips are
// down-mixed, and the frame rate is multiplied by the speed factor without
// resampling, which raises pitch and shortens duration together:
//
//	params, err := wav.EncodeFile("out.wav", clip, wav.DefaultSpeed)
//
// The frame count in the header always comes from the written buffer.
//
// # Error Handling
//
// The package defines several sentinel errors:
//   - ErrSampleMissing: the path does not exist (also matches fs.ErrNotExist)
//   - ErrNotWavFile: the input is not a WAV file
//   - ErrUnsupportedWavLayout: the WAV is not uncompressed PCM
//   - ErrOnlyPCM16bitSupported: only 16-bit samples are supported
//   - ErrNoSampleData: the data chunk is unreadable or empty
//   - ErrWrite: the output could not be created or written
package wav
