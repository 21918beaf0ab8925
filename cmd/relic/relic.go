package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Neumenon/relic/config"
)

var (
	outWriter io.Writer = os.Stdout
	errWriter io.Writer = os.Stderr
	inReader  io.Reader = os.Stdin

	colorableOut io.Writer = colorable.NewColorableStdout()
)

// logger stays silent unless --verbose flips it to a console writer.
var logger = zerolog.New(io.Discard).Level(zerolog.Disabled)

var rootCmd = &cobra.Command{
	Use:          "relic",
	Short:        "Run-length codec for escaped text streams",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		outWriter = cmd.OutOrStdout()
		errWriter = cmd.ErrOrStderr()
		inReader = cmd.InOrStdin()

		if outWriter != os.Stdout {
			colorableOut = outWriter
		}

		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: errWriter}).With().Timestamp().Logger()
		} else {
			logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
		}

		return initConfig()
	},
}

var cfg config.Config
var currentProfile *config.Profile

var (
	cfgFile         string
	profileOverride string
	codecFlag       string
	verbose         bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.relic/config)")
	rootCmd.PersistentFlags().StringVarP(&profileOverride, "profile", "p", "", "set a temporary current profile")
	rootCmd.PersistentFlags().StringVarP(&codecFlag, "codec", "c", "", "codec to use, escaped or alpha (overrides the profile)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Whether to turn on debug logging")
}

// initConfig reads the config file and resolves the active profile.
// Called by PersistentPreRunE on the root command.
func initConfig() error {
	var err error
	cfg, err = config.ReadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg.ProfileOverride = profileOverride

	profile := cfg.ActiveProfile()
	if profile != nil {
		currentProfile = profile
	} else {
		// A typoed override must not fall back silently, the wrong codec
		// would produce wrong output without any hint.
		if profileOverride != "" {
			return fmt.Errorf("profile %q not found in config", profileOverride)
		}
		currentProfile = config.DefaultProfile()
	}

	// Any set flags override the configuration
	if codecFlag != "" {
		if !config.ValidCodec(codecFlag) {
			return fmt.Errorf("unknown codec %q (want %s or %s)", codecFlag, config.CodecEscaped, config.CodecAlpha)
		}
		currentProfile.Codec = codecFlag
	}

	logger.Debug().
		Str("profile", currentProfile.Name).
		Str("codec", currentProfile.Codec).
		Msg("resolved configuration")

	return nil
}

// readInput returns the command operand, or reads all of stdin when no
// operand is given. One trailing newline is trimmed so that shell-piped
// input round-trips.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(inReader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	logger.Debug().Int("bytes", len(text)).Msg("read stdin")
	return text, nil
}
