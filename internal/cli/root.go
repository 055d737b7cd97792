package cli

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the qrecc command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qrecc",
		Short: "Reed-Solomon correction codewords for QR-style data",
		Long: `qrecc computes Reed-Solomon error correction bytes over GF(2^8), the
same codewords QR codes append to their data blocks.

Features:
- Correction bytes for any data and any positive correction count
- Input as text, hex, base64 or decimal byte lists
- Codeword checks by recomputing correction bytes
- Generator polynomial inspection
- Named profiles for common QR version/level block sizes`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				setLogLevel(slog.LevelDebug)
			}
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.AddCommand(
		NewEncodeCommand(),
		NewCheckCommand(),
		NewGeneratorCommand(),
		NewProfileCommand(),
		NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	return rootCmd
}

func setLogLevel(level slog.Level) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
