// SPDX-License-Identifier: EPL-2.0

package pianoseq

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ik5/pianoseq/audio"
	"github.com/ik5/pianoseq/formats/wav"
	"github.com/ik5/pianoseq/naming"
	"github.com/ik5/pianoseq/samples"
	"github.com/ik5/pianoseq/sequence"
)

// Options configures Render. Zero values fall back to the defaults of the
// respective packages.
type Options struct {
	Store samples.Store

	// OutputDir is where the output file is created. Defaults to ".".
	OutputDir  string
	OutputBase string
	OutputExt  string

	// Speed multiplies the frame rate of the written file.
	Speed    int
	MaxChars int

	Logger *log.Logger
	// Loader overrides wav.DecodeFile, mostly for tests.
	Loader sequence.Loader
}

// Result describes one Render call.
type Result struct {
	// Saved is false when there was nothing to write.
	Saved bool
	Path  string

	Letters string
	Used    string
	Skipped string

	// Params of the written file.
	Params audio.Params
	// Size of the written file in bytes.
	Size int64
}

// Duration is the playback length of the written file.
func (r *Result) Duration() time.Duration {
	if r.Params.FrameRate <= 0 {
		return 0
	}

	return time.Duration(r.Params.Frames) * time.Second / time.Duration(r.Params.FrameRate)
}

func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.OutputBase == "" {
		o.OutputBase = naming.DefaultBase
	}
	if o.OutputExt == "" {
		o.OutputExt = naming.DefaultExt
	}
	if o.Speed == 0 {
		o.Speed = wav.DefaultSpeed
	}
	if o.MaxChars == 0 {
		o.MaxChars = sequence.DefaultMaxChars
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}

	return o
}

// Render builds the note sequence for input and writes it to the next free
// output name. When no letter produces audio nothing is written and the
// result has Saved set to false; this is not an error. Only failures to
// name or write the output file are returned.
func Render(input string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	seqOpts := []sequence.Option{
		sequence.WithLogger(opts.Logger),
		sequence.WithMaxChars(opts.MaxChars),
	}
	if opts.Loader != nil {
		seqOpts = append(seqOpts, sequence.WithLoader(opts.Loader))
	}

	combined := sequence.New(opts.Store, seqOpts...).Build(input)
	res := &Result{
		Letters: combined.Letters,
		Used:    combined.Used,
		Skipped: combined.Skipped,
	}

	if combined.Empty() {
		opts.Logger.Debug("nothing to save", "letters", len(combined.Letters))
		return res, nil
	}

	path, err := naming.NextAvailable(opts.OutputDir, opts.OutputBase, opts.OutputExt)
	if err != nil {
		return res, fmt.Errorf("choosing output name: %w", err)
	}

	params, err := wav.EncodeFile(path, combined.Clip(), opts.Speed)
	if err != nil {
		return res, fmt.Errorf("writing %s: %w", path, err)
	}

	res.Saved = true
	res.Path = path
	res.Params = params

	if st, err := os.Stat(path); err == nil {
		res.Size = st.Size()
	}

	opts.Logger.Debug("sequence written",
		"path", path,
		"frames", params.Frames,
		"rate", params.FrameRate,
		"bytes", res.Size,
	)

	return res, nil
}
