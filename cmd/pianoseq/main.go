// SPDX-License-Identifier: EPL-2.0

// Command pianoseq asks for a line of text and saves it as a piano note
// sequence, one note per letter.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/ik5/pianoseq"
	"github.com/ik5/pianoseq/formats/wav"
	"github.com/ik5/pianoseq/internal/config"
	"github.com/ik5/pianoseq/naming"
	"github.com/ik5/pianoseq/samples"
	"github.com/ik5/pianoseq/sequence"
	"github.com/spf13/cobra"
)

// Version as provided by the build.
var Version = ""

func newRootCmd() *cobra.Command {
	var configFile string

	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "pianoseq",
		Short:         "Turn typed letters into a piano note sequence",
		Long:          "Reads one line of text and writes the piano note of every letter a-z, in order, to user_piano_sequence_<n>.wav at triple speed.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			return execute(cmd, cfg)
		},
	}

	cmd.Version = Version
	if cmd.Version == "" {
		cmd.Version = "unknown (built from source)"
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	cmd.Flags().String(config.KeySoundsDir, samples.DefaultDir, "directory holding piano_<letter>.wav samples")
	cmd.Flags().String(config.KeyOutputDir, ".", "directory the sequence is written to")
	cmd.Flags().String(config.KeyOutputBase, naming.DefaultBase, "base name of the output file")
	cmd.Flags().Int(config.KeySpeed, wav.DefaultSpeed, "frame rate multiplier of the output")
	cmd.Flags().Int(config.KeyMaxChars, sequence.DefaultMaxChars, "maximum number of letters used")
	cmd.Flags().String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")

	// Config bindings
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

func execute(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	logger := log.NewWithOptions(out, log.Options{
		Level:  cfg.Level(),
		Prefix: "pianoseq",
	})

	store := samples.New(cfg.SoundsDir)
	if err := store.CheckDir(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Enter a sequence of up to %d characters (a-z): ", cfg.MaxChars)

	line, err := readLine(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(out)

	res, err := pianoseq.Render(line, pianoseq.Options{
		Store:      store,
		OutputDir:  cfg.OutputDir,
		OutputBase: cfg.OutputBase,
		Speed:      cfg.Speed,
		MaxChars:   cfg.MaxChars,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if !res.Saved {
		fmt.Fprintln(out, "No valid audio data found. Nothing to save.")
		return nil
	}

	fmt.Fprintf(out, "Your piano sequence has been saved as '%s'.\n", res.Path)
	fmt.Fprintf(out, "%s notes, %s frames at %s Hz, %s, %s\n",
		humanize.Comma(int64(len(res.Used))),
		humanize.Comma(int64(res.Params.Frames)),
		humanize.Comma(int64(res.Params.FrameRate)),
		res.Duration().Round(time.Millisecond),
		humanize.Bytes(uint64(res.Size)),
	)

	return nil
}

// readLine returns the first line of r without its line ending. Input that
// ends without a newline is still a line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return line, nil
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger := log.New(stderr)
		if errors.Is(err, samples.ErrSoundsDirMissing) {
			logger.Error("Configuration error", "err", err)
		} else {
			logger.Error("pianoseq failed", "err", err)
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
