// SPDX-License-Identifier: EPL-2.0

// Package samples maps letters to their single-note recordings on disk.
package samples

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDir is where the note recordings live, relative to the working directory.
	DefaultDir = "sounds"
	// Alphabet is the full set of letters a store covers by default.
	Alphabet = "abcdefghijklmnopqrstuvwxyz"

	filePrefix = "piano_"
	fileExt    = ".wav"
)

var ErrSoundsDirMissing = errors.New("sound directory does not exist")

// Store is an immutable letter to path table. It performs no I/O when built;
// whether a file exists is found out when it is decoded.
type Store struct {
	dir   string
	paths map[rune]string
}

// New builds a store covering a-z under dir.
func New(dir string) Store {
	return NewWithLetters(dir, Alphabet)
}

// NewWithLetters builds a store covering only the lowercase a-z letters
// found in letters. Anything else is ignored.
func NewWithLetters(dir string, letters string) Store {
	paths := make(map[rune]string, len(Alphabet))
	for _, r := range letters {
		if r < 'a' || r > 'z' {
			continue
		}
		paths[r] = filepath.Join(dir, filePrefix+string(r)+fileExt)
	}

	return Store{dir: dir, paths: paths}
}

// Dir returns the directory the store points into.
func (s Store) Dir() string { return s.dir }

// PathFor returns the sample path for letter, or false if the store has no
// entry for it.
func (s Store) PathFor(letter rune) (string, bool) {
	p, ok := s.paths[letter]
	return p, ok
}

// Contains reports whether letter has a sample entry.
func (s Store) Contains(letter rune) bool {
	_, ok := s.paths[letter]
	return ok
}

// Len returns the number of letters in the store.
func (s Store) Len() int { return len(s.paths) }

// Letters returns the covered letters in alphabetical order.
func (s Store) Letters() string {
	var b strings.Builder
	for _, r := range Alphabet {
		if s.Contains(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// CheckDir verifies the backing directory exists.
func (s Store) CheckDir() error {
	st, err := os.Stat(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSoundsDirMissing, s.dir)
		}
		return fmt.Errorf("checking sound directory %s: %w", s.dir, err)
	}

	if !st.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSoundsDirMissing, s.dir)
	}

	return nil
}
