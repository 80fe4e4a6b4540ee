package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/panyam/wordmode"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

const prompt = "Please enter the path to the file containing the text to be analyzed: "

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default signal handling once cancelled so a second signal kills
	// the process even if the run is slow to wind down.
	context.AfterFunc(ctx, stop)

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "wordmode [path]",
		Short:         "Print the most frequent word in a text file",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reports go to stdout, so stay quiet on stderr unless asked.
			logLevel := slog.LevelWarn
			if debug {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
				Level: logLevel,
			}))

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				if path, err = promptPath(stdin, stdout); err != nil {
					fmt.Fprintf(stderr, "Error: %v\n", err)
					return err
				}
			}

			pipeline := wordmode.NewPipeline(wordmode.FileSource(path),
				wordmode.WithLogger(logger),
				wordmode.WithReporter(wordmode.NewTextReporter(stdout)))
			_, err := pipeline.Run(cmd.Context())
			return err
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}

// promptPath asks for the input path and reads one line from in.
func promptPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading path: %w", err)
	}
	path := strings.TrimRight(line, "\r\n")
	if path == "" {
		return "", errors.New("no path given")
	}
	return path, nil
}
