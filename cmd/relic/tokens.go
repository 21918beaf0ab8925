package main

import (
	"encoding/json"
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/Neumenon/relic/config"
	"github.com/Neumenon/relic/relic"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// tokenView is the display shape of one parsed token.
type tokenView struct {
	Literal string `json:"literal"`
	Count   int    `json:"count"`
	Escaped bool   `json:"escaped"`
	Offset  int    `json:"offset"`
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [STREAM]",
	Short: "Parse a stream and print its token list as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if currentProfile.Codec == config.CodecAlpha {
			return fmt.Errorf("tokens supports only the %s codec", config.CodecEscaped)
		}

		stream, err := readInput(args)
		if err != nil {
			return err
		}

		tokens, err := relic.Tokens(stream)
		if err != nil {
			return err
		}
		logger.Debug().Int("tokens", len(tokens)).Msg("parsed stream")

		views := make([]tokenView, 0, len(tokens))
		for _, tok := range tokens {
			views = append(views, tokenView{
				Literal: string(tok.Literal),
				Count:   tok.Count,
				Escaped: tok.Escaped,
				Offset:  tok.Offset,
			})
		}

		buf, err := json.Marshal(views)
		if err != nil {
			return fmt.Errorf("marshal tokens: %w", err)
		}
		formatted, err := prettyjson.Format(buf)
		if err != nil {
			return fmt.Errorf("format tokens: %w", err)
		}

		_, _ = colorableOut.Write(formatted)
		fmt.Fprintln(outWriter)
		return nil
	},
}
