// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannels = errors.New("channel count must be at least 1")
	ErrUnalignedBuffer = errors.New("buffer size must be multiple of channels")
)
