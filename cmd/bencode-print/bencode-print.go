package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bencode-tools/bencoding/pkg/bencode"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var verbosity = 0
var maxDepth = 0
var maxString = 0

var cmd = &cobra.Command{
	Use:              "bencode-print <file>",
	Short:            "Decode a Bencoded file and print it in a human readable format",
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: logging,
	RunE:             run,
}

func main() {
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth, 0 for no limit")
	cmd.Flags().IntVar(&maxString, "max-string", 0, "maximum string length in bytes, 0 for the default")

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cc *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("unable to open input: %w", err)
	}
	defer f.Close()

	var opts []bencode.Option
	if maxDepth > 0 {
		opts = append(opts, bencode.MaxDepth(maxDepth))
	}
	if maxString > 0 {
		opts = append(opts, bencode.MaxStringLength(maxString))
	}

	start := time.Now()
	v, err := bencode.NewDecoder(bufio.NewReader(f), opts...).Decode()
	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", args[0], err)
	}
	slog.Debug("decoded", "file", args[0], "duration", time.Since(start))

	fmt.Println(render(v))
	return nil
}

func logging(cmd *cobra.Command, args []string) {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
		level = slog.LevelWarn
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})))
}
