// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io/fs"
)

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrNoSampleData          = errors.New("no sample data")

	ErrSampleMissing = &missingError{}
	ErrWrite         = errors.New("write failed")
	ErrInvalidSpeed  = errors.New("speed factor must be at least 1")
)

// missingError matches fs.ErrNotExist so callers can use either sentinel.
type missingError struct{}

func (*missingError) Error() string        { return "sample file not found" }
func (*missingError) Is(target error) bool { return target == fs.ErrNotExist }

// IsFormatError reports whether err means the input exists but is not a
// readable PCM 16-bit WAV stream.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrNotWavFile) ||
		errors.Is(err, ErrUnsupportedWavLayout) ||
		errors.Is(err, ErrOnlyPCM16bitSupported) ||
		errors.Is(err, ErrNoSampleData)
}
