// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV fixtures for tests.
package audiotest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Header describes the fmt chunk of a canonical 44-byte WAV header.
type Header struct {
	Format        uint16 // 1 = PCM
	Channels      int
	SampleRate    int
	BitsPerSample int
}

// PCM16 returns the header of a PCM 16-bit stream.
func PCM16(sampleRate, channels int) Header {
	return Header{
		Format:        1,
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: 16,
	}
}

// Bytes builds a canonical WAV file: RIFF header, 16 byte fmt chunk, data chunk.
func Bytes(h Header, samples []int16) []byte {
	numChannels := uint16(h.Channels)
	bits := uint16(h.BitsPerSample)
	byteRate := uint32(h.SampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	buf := make([]byte, 44, 44+len(samples)*2)

	// RIFF header (12 bytes)
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], riffSize)
	copy(buf[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], h.Format)
	binary.LittleEndian.PutUint16(buf[22:24], numChannels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(h.SampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], byteRate)
	binary.LittleEndian.PutUint16(buf[32:34], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:36], bits)

	// data chunk header (8 bytes)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)

	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}

	return buf
}

// WriteWAV writes a PCM 16-bit WAV file at path, creating parent directories.
func WriteWAV(tb testing.TB, path string, sampleRate, channels int, samples []int16) {
	tb.Helper()

	WriteFile(tb, path, Bytes(PCM16(sampleRate, channels), samples))
}

// WriteFile writes raw bytes at path, creating parent directories.
func WriteFile(tb testing.TB, path string, data []byte) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("creating fixture dir: %v", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing fixture %s: %v", path, err)
	}
}

// Sine generates frames of a sine tone, duplicated across channels.
func Sine(sampleRate, channels, frames int, frequency float64) []int16 {
	out := make([]int16, frames*channels)
	for f := range frames {
		t := float64(f) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*frequency*t) * 16000)
		for c := range channels {
			out[f*channels+c] = v
		}
	}

	return out
}

// Ramp generates n samples counting up from start.
func Ramp(start int16, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = start + int16(i)
	}

	return out
}
