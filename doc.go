// SPDX-License-Identifier: EPL-2.0

// Package pianoseq renders typed letters as a sequence of piano notes.
//
// Every lowercase letter a-z is bound to a single-note recording,
// sounds/piano_<letter>.wav. The letters of the input are looked up in
// order, their samples are concatenated, and the result is written as one
// mono 16-bit WAV whose frame rate is three times the source rate.
//
// # Quick Start
//
//	res, err := pianoseq.Render("hello", pianoseq.Options{
//	    Store: samples.New("sounds"),
//	})
//	if err != nil {
//	    // the output file could not be written
//	}
//	if !res.Saved {
//	    // nothing to save
//	}
//	fmt.Println(res.Path) // user_piano_sequence_1.wav
//
// # Pipeline
//
// Render runs these steps, each available on its own:
//   - sequence.Normalize lower-cases and filters the input
//   - sequence.Sequencer decodes each letter via wav.DecodeFile and concatenates
//   - naming.NextAvailable picks user_piano_sequence_<n>.wav
//   - wav.EncodeFile down-mixes to mono and multiplies the frame rate
//
// A missing or unreadable sample is logged and skipped; it never aborts the
// sequence. The parameters of the first sample that decodes govern the whole
// output, so all samples are expected to share one format.
//
// See the individual subpackages for more detailed documentation.
package pianoseq
