// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampInt16 saturates v into the signed 16-bit range.
func ClampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// RoundDiv divides sum by n and rounds to the nearest integer,
// ties away from zero. n must be positive.
func RoundDiv(sum, n int) int {
	q := sum / n
	r := sum % n
	if r < 0 {
		r = -r
	}

	if 2*r >= n {
		if sum < 0 {
			q--
		} else {
			q++
		}
	}

	return q
}

// IntsToInt16 converts go-audio integer samples to int16, saturating
// anything outside the 16-bit range.
func IntsToInt16(src []int) []int16 {
	out := make([]int16, len(src))
	for i, v := range src {
		out[i] = ClampInt16(v)
	}

	return out
}

// Int16sToInts widens int16 samples into the int slice go-audio buffers use.
func Int16sToInts(src []int16) []int {
	out := make([]int, len(src))
	for i, v := range src {
		out[i] = int(v)
	}

	return out
}
