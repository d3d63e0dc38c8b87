// SPDX-License-Identifier: EPL-2.0

// Package sequence turns typed text into one concatenated sample buffer.
package sequence

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ik5/pianoseq/audio"
	"github.com/ik5/pianoseq/formats/wav"
	"github.com/ik5/pianoseq/samples"
)

// DefaultMaxChars caps how many letters are kept from the input.
const DefaultMaxChars = 1000

// Loader decodes the sample at path.
type Loader func(path string) (*audio.Clip, error)

// Sequencer resolves letters through a sample store and concatenates their
// clips. It holds no state between Build calls.
type Sequencer struct {
	store    samples.Store
	load     Loader
	logger   *log.Logger
	maxChars int
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithLoader replaces wav.DecodeFile as the sample decoder.
func WithLoader(l Loader) Option {
	return func(s *Sequencer) { s.load = l }
}

// WithLogger sets the logger diagnostics go to.
func WithLogger(l *log.Logger) Option {
	return func(s *Sequencer) { s.logger = l }
}

// WithMaxChars sets how many letters are kept. Values below 1 are ignored.
func WithMaxChars(n int) Option {
	return func(s *Sequencer) {
		if n > 0 {
			s.maxChars = n
		}
	}
}

// New creates a sequencer over store.
func New(store samples.Store, opts ...Option) *Sequencer {
	s := &Sequencer{
		store:    store,
		load:     wav.DecodeFile,
		maxChars: DefaultMaxChars,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.Default()
	}

	return s
}

// Combined is the result of a Build: the samples of every decoded letter in
// input order, and the parameters of the first one decoded.
type Combined struct {
	// Letters kept after normalization.
	Letters string
	// Used lists the letters whose samples made it into Samples.
	Used string
	// Skipped lists the letters whose samples could not be decoded.
	Skipped string

	Samples []int16
	// Params is nil when nothing decoded.
	Params *audio.Params
}

// Empty reports whether there is nothing to write.
func (c *Combined) Empty() bool {
	return c.Params == nil || len(c.Samples) == 0
}

// Clip returns the combined buffer as a clip, or nil when Empty. The frame
// count reflects the concatenated buffer, not the first sample.
func (c *Combined) Clip() *audio.Clip {
	if c.Empty() {
		return nil
	}

	p := *c.Params
	p.Frames = audio.FrameCount(c.Samples, p.Channels)

	return &audio.Clip{Params: p, Samples: c.Samples}
}

// Normalize lower-cases raw, trims surrounding whitespace and keeps at most
// maxChars of the characters store has samples for, in their original order.
func Normalize(raw string, store samples.Store, maxChars int) string {
	if maxChars < 1 {
		return ""
	}

	text := strings.TrimSpace(strings.ToLower(raw))

	var b strings.Builder
	b.Grow(min(len(text), maxChars))

	kept := 0
	for _, r := range text {
		if kept >= maxChars {
			break
		}
		if !store.Contains(r) {
			continue
		}
		b.WriteRune(r)
		kept++
	}

	return b.String()
}

type decoded struct {
	clip *audio.Clip
	ok   bool
}

// Build normalizes raw and concatenates the sample of every kept letter.
// Letters whose sample is missing or unreadable are reported and skipped.
// Each distinct letter is decoded once per Build.
func (s *Sequencer) Build(raw string) *Combined {
	letters := Normalize(raw, s.store, s.maxChars)
	out := &Combined{Letters: letters}

	cache := make(map[rune]decoded)
	var used, skipped strings.Builder

	for _, r := range letters {
		d, seen := cache[r]
		if !seen {
			d = s.decode(r)
			cache[r] = d
		}

		if !d.ok {
			skipped.WriteRune(r)
			continue
		}

		if out.Params == nil {
			p := d.clip.Params
			out.Params = &p
		} else if !seen && !sameFormat(*out.Params, d.clip.Params) {
			s.logger.Warn("sample format differs from the first sample, using the first",
				"letter", string(r),
				"channels", d.clip.Params.Channels,
				"rate", d.clip.Params.FrameRate,
			)
		}

		out.Samples = append(out.Samples, d.clip.Samples...)
		used.WriteRune(r)
	}

	out.Used = used.String()
	out.Skipped = skipped.String()

	s.logger.Debug("sequence built",
		"letters", len(out.Letters),
		"used", len(out.Used),
		"skipped", len(out.Skipped),
		"samples", len(out.Samples),
	)

	return out
}

func (s *Sequencer) decode(r rune) decoded {
	path, ok := s.store.PathFor(r)
	if !ok {
		return decoded{}
	}

	clip, err := s.load(path)
	switch {
	case err == nil:
		if verr := clip.Validate(); verr != nil {
			s.logger.Warn("Error reading sample", "letter", string(r), "path", path, "err", verr)
			return decoded{}
		}
		return decoded{clip: clip, ok: true}
	case errors.Is(err, wav.ErrSampleMissing):
		s.logger.Warn("File not found", "letter", string(r), "path", path)
	case wav.IsFormatError(err):
		s.logger.Warn("Error reading sample", "letter", string(r), "path", path, "err", err)
	default:
		s.logger.Warn("Could not read sample", "letter", string(r), "path", path, "err", err)
	}

	return decoded{}
}

func sameFormat(a, b audio.Params) bool {
	return a.Channels == b.Channels &&
		a.SampleWidth == b.SampleWidth &&
		a.FrameRate == b.FrameRate
}
