package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Neumenon/relic/relic"
)

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Encode and decode lines interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		validate := func(input string) error {
			if input == "" {
				return errors.New("input must not be empty")
			}
			return nil
		}

		for {
			prompt := promptui.Prompt{
				Label:    "relic",
				Validate: validate,
			}

			input, err := prompt.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			output, mode, err := convertAs(currentProfile.Codec, input)
			if err != nil {
				fmt.Fprintf(outWriter, "Error: %v\n", err)
				continue
			}
			if mode == relic.ModeDecode {
				fmt.Fprintf(outWriter, "Decoded => %s\n", output)
			} else {
				fmt.Fprintf(outWriter, "Encoded => %s\n", output)
			}
		}
	},
}
