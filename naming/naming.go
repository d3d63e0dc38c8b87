// SPDX-License-Identifier: EPL-2.0

// Package naming picks output file names that do not clash with earlier runs.
package naming

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultBase = "user_piano_sequence"
	DefaultExt  = ".wav"
)

// NextAvailable probes dir/<base>_<n><ext> for n = 1, 2, ... and returns the
// first path that does not exist. There is no upper bound on n. Probing is
// not atomic: two processes may pick the same name.
func NextAvailable(dir, base, ext string) (string, error) {
	for counter := 1; ; counter++ {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))

		_, err := os.Lstat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}

		if err != nil {
			return "", fmt.Errorf("probing %s: %w", path, err)
		}
	}
}
