package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renproject/tinymt64"
)

// Emits a TinyMT64 output stream on stdout for external statistical test
// harnesses, e.g.
//
//	stream --seed 1 | RNG_test stdin64
//	stream --format u64 --count 1000
var (
	streamOpts = struct {
		seed   uint64
		key    string
		count  uint64
		format string
	}{}

	streamCmd = &cobra.Command{
		Use:   "stream",
		Short: "Write a TinyMT64 output stream to stdout",
		Long:  "Write a TinyMT64 output stream to stdout, as raw little-endian bytes or as one value per line, for piping into statistical test harnesses such as PractRand or dieharder.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := newRng()
			if err != nil {
				return err
			}

			out := bufio.NewWriterSize(os.Stdout, 1<<16)
			defer out.Flush()

			unlimited := streamOpts.count == 0
			var word [8]byte
			for n := uint64(0); unlimited || n < streamOpts.count; n++ {
				switch streamOpts.format {
				case "raw":
					binary.LittleEndian.PutUint64(word[:], rng.Uint64())
					if _, err := out.Write(word[:]); err != nil {
						return err
					}
				case "u64":
					if _, err := fmt.Fprintln(out, rng.Uint64()); err != nil {
						return err
					}
				case "f64":
					if _, err := fmt.Fprintln(out, rng.Float64()); err != nil {
						return err
					}
				default:
					return fmt.Errorf("unexpected format %q, want raw, u64 or f64", streamOpts.format)
				}
			}

			return nil
		},
	}
)

func newRng() (*tinymt64.Rng, error) {
	if streamOpts.key == "" {
		return tinymt64.NewFromSeed(streamOpts.seed), nil
	}

	parts := strings.Split(streamOpts.key, ",")
	key := make([]uint64, 0, len(parts))
	for _, part := range parts {
		word, err := strconv.ParseUint(strings.TrimSpace(part), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid key word %q: %v", part, err)
		}
		key = append(key, word)
	}

	return tinymt64.NewFromKey(key), nil
}

func init() {
	streamCmd.Flags().Uint64Var(&streamOpts.seed, "seed", 1, "scalar seed")
	streamCmd.Flags().StringVar(&streamOpts.key, "key", "", "comma-separated 64-bit key words; overrides --seed")
	streamCmd.Flags().Uint64Var(&streamOpts.count, "count", 0, "number of 64-bit values to emit (0 = unlimited)")
	streamCmd.Flags().StringVar(&streamOpts.format, "format", "raw", "output format: raw, u64 or f64")
}

func main() {
	if err := streamCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
