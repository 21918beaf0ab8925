package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Neumenon/relic/config"
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = 0
)

var (
	addProfileCodec string
	addProfileStats bool
)

func init() {
	configAddProfileCmd.Flags().StringVar(&addProfileCodec, "codec", config.CodecEscaped, "Codec for the new profile, escaped or alpha")
	configAddProfileCmd.Flags().BoolVar(&addProfileStats, "stats", false, "Always print run statistics under this profile")

	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configUseProfileCmd)
	configCmd.AddCommand(configSelectProfileCmd)
	configCmd.AddCommand(configAddProfileCmd)
	configCmd.AddCommand(configRemoveProfileCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Handle relic configuration",
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display profiles in the configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(outWriter, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)
		fmt.Fprintln(w, "  NAME\tCODEC\tSHOW-STATS")
		for _, profile := range cfg.Profiles {
			marker := "  "
			if profile.Name == cfg.CurrentProfile {
				marker = "* "
			}
			codec := profile.Codec
			if codec == "" {
				codec = config.CodecEscaped
			}
			fmt.Fprintf(w, "%s%s\t%s\t%v\n", marker, profile.Name, codec, profile.ShowStats)
		}
		w.Flush()
	},
}

var configUseProfileCmd = &cobra.Command{
	Use:   "use-profile [NAME]",
	Short: "Set the current profile in the configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := cfg.SetCurrentProfile(name); err != nil {
			return fmt.Errorf("profile with name %v not found", name)
		}
		fmt.Fprintf(outWriter, "Switched to profile \"%v\".\n", name)
		return nil
	},
}

var configSelectProfileCmd = &cobra.Command{
	Use:   "select-profile",
	Short: "Interactively select a profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var profileNames []string
		pos := 0
		for k, profile := range cfg.Profiles {
			profileNames = append(profileNames, profile.Name)
			if profile.Name == cfg.CurrentProfile {
				pos = k
			}
		}

		searcher := func(input string, index int) bool {
			name := strings.ReplaceAll(strings.ToLower(profileNames[index]), " ", "")
			input = strings.ReplaceAll(strings.ToLower(input), " ", "")
			return strings.Contains(name, input)
		}

		p := promptui.Select{
			Label:     "Select profile",
			Items:     profileNames,
			Searcher:  searcher,
			Size:      10,
			CursorPos: pos,
		}

		_, selected, err := p.Run()
		if err != nil {
			// User cancelled (e.g. Ctrl-C). Not an error.
			return nil
		}

		if err := cfg.SetCurrentProfile(selected); err != nil {
			return fmt.Errorf("profile with name %v not found", selected)
		}
		fmt.Fprintf(outWriter, "Switched to profile \"%v\".\n", selected)
		return nil
	},
}

var configAddProfileCmd = &cobra.Command{
	Use:   "add-profile [NAME]",
	Short: "Add a codec profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := cfg.AddProfile(&config.Profile{
			Name:      args[0],
			Codec:     addProfileCodec,
			ShowStats: addProfileStats,
		})
		if err != nil {
			return fmt.Errorf("could not add profile: %w", err)
		}
		fmt.Fprintln(outWriter, "Added profile.")
		return nil
	},
}

var configRemoveProfileCmd = &cobra.Command{
	Use:   "remove-profile [NAME]",
	Short: "Remove a codec profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.DeleteProfile(args[0]); err != nil {
			return fmt.Errorf("could not delete profile: %w", err)
		}
		fmt.Fprintln(outWriter, "Removed profile.")
		return nil
	},
}
