package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Neumenon/relic/config"
	"github.com/Neumenon/relic/relic"
)

var showStats bool

func init() {
	encodeCmd.Flags().BoolVar(&showStats, "stats", false, "Print run statistics to stderr")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(convertCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode [TEXT]",
	Short: "Encode text as a run-length stream",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		start := time.Now()
		encoded, stats, err := encodeAs(currentProfile.Codec, text)
		if err != nil {
			return err
		}
		logger.Debug().Str("codec", currentProfile.Codec).Dur("took", time.Since(start)).Msg("encode")

		fmt.Fprintln(outWriter, encoded)
		if showStats || currentProfile.ShowStats {
			printStats(stats)
		}
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [STREAM]",
	Short: "Decode a run-length stream back to text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stream, err := readInput(args)
		if err != nil {
			return err
		}

		start := time.Now()
		decoded, err := decodeAs(currentProfile.Codec, stream)
		if err != nil {
			return err
		}
		logger.Debug().Str("codec", currentProfile.Codec).Dur("took", time.Since(start)).Msg("decode")

		fmt.Fprintln(outWriter, decoded)
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [INPUT]",
	Short: "Encode or decode based on the input's shape",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}

		output, mode, err := convertAs(currentProfile.Codec, input)
		if err != nil {
			return err
		}
		logger.Debug().Str("codec", currentProfile.Codec).Stringer("mode", mode).Msg("convert")

		fmt.Fprintln(outWriter, output)
		return nil
	},
}

func encodeAs(codec, text string) (string, relic.Stats, error) {
	if codec == config.CodecAlpha {
		return relic.EncodeAlphaWithStats(text)
	}
	return relic.EncodeWithStats(text)
}

func decodeAs(codec, stream string) (string, error) {
	if codec == config.CodecAlpha {
		return relic.DecodeAlpha(stream)
	}
	return relic.Decode(stream)
}

func convertAs(codec, input string) (string, relic.Mode, error) {
	if codec == config.CodecAlpha {
		return relic.ConvertAlpha(input)
	}
	return relic.Convert(input)
}

// printStats writes the run accounting to stderr so stdout stays pipeable.
func printStats(stats relic.Stats) {
	fmt.Fprintf(errWriter, "\n--- Run Stats ---\n")
	fmt.Fprintf(errWriter, "Original size: %d bytes\n", stats.OriginalBytes)
	fmt.Fprintf(errWriter, "Encoded size: %d bytes\n", stats.EncodedBytes)
	fmt.Fprintf(errWriter, "Savings: %d bytes (%.1f%%)\n", stats.BytesSaved, stats.SavingsPercent)
	fmt.Fprintf(errWriter, "Runs: %d (%d escaped)\n", stats.Runs, stats.EscapedRuns)
	fmt.Fprintf(errWriter, "Longest run: %d\n", stats.LongestRun)
}
