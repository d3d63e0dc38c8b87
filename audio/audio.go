// SPDX-License-Identifier: EPL-2.0

package audio

// Compression tags reported for uncompressed PCM.
const (
	CompTypeNone = "NONE"
	CompNameNone = "not compressed"
)

// SampleWidth16 is the byte width of a 16-bit PCM sample.
const SampleWidth16 = 2

// Params describes a PCM stream.
type Params struct {
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SampleWidth in bytes per sample.
	SampleWidth int
	// FrameRate in frames per second.
	FrameRate int
	// Frames is the number of frames, each holding Channels samples.
	Frames int

	CompType string
	CompName string
}

// Clip is a decoded sample buffer with the parameters it was recorded with.
// Samples are interleaved; len(Samples) is a multiple of Params.Channels.
type Clip struct {
	Params  Params
	Samples []int16
}

// FrameCount returns the number of whole frames held in samples for the
// given channel count.
func FrameCount(samples []int16, channels int) int {
	if channels < 1 {
		return 0
	}

	return len(samples) / channels
}

// Validate checks the clip's buffer against its parameters.
func (c *Clip) Validate() error {
	if c.Params.Channels < 1 {
		return ErrInvalidChannels
	}

	if len(c.Samples)%c.Params.Channels != 0 {
		return ErrUnalignedBuffer
	}

	return nil
}
