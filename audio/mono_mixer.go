// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/pianoseq/utils"
)

// DownmixToMono averages interleaved frames of the given channel count
// into a single channel. The mean is rounded to the nearest integer, ties
// away from zero, and saturated to the int16 range. A trailing partial
// frame is dropped. Mono input is returned as is.
func DownmixToMono(samples []int16, channels int) ([]int16, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	if channels == 1 {
		return samples, nil
	}

	frames := len(samples) / channels
	dst := make([]int16, frames)

	// Unrolled loop for the common case
	switch channels {
	case 2: // Stereo
		for f := range frames {
			idx := f << 1
			dst[f] = utils.ClampInt16(utils.RoundDiv(int(samples[idx])+int(samples[idx+1]), 2))
		}
	default: // Generic path
		for f := range frames {
			sum := 0
			baseIdx := f * channels
			for c := range channels {
				sum += int(samples[baseIdx+c])
			}
			dst[f] = utils.ClampInt16(utils.RoundDiv(sum, channels))
		}
	}

	return dst, nil
}
