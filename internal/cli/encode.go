package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type EncodeResult struct {
	Data            string `json:"data"`
	DataLength      int    `json:"data_length"`
	CorrectionBytes int    `json:"correction_bytes"`
	Profile         string `json:"profile,omitempty"`
	Correction      string `json:"correction"`
	Codeword        string `json:"codeword,omitempty"`
	Format          string `json:"format"`
}

func NewEncodeCommand() *cobra.Command {
	var (
		k            int
		profile      string
		inputFormat  string
		outputFormat string
		full         bool
		useStdin     bool
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "encode [data]",
		Short: "Compute Reed-Solomon correction bytes for data",
		Long: `Compute the Reed-Solomon correction bytes for a block of data over
GF(2^8), as appended to QR code data blocks.

The correction byte count comes from --ecc, else from --profile, else from
the configured defaults.`,
		Example: `  # Four correction bytes for four decimal data bytes
  qrecc encode -k 4 -f decimal "64 134 54 67"

  # QR version 1-M block from hex, printing data followed by correction bytes
  qrecc encode -p 1-M -f hex --full 205b0b78d172dc4d4340ec11ec11ec11

  # Read text from stdin and print JSON
  echo -n "hello" | qrecc encode --stdin -k 7 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}
			defaults := cm.GetConfig().Defaults

			if !cmd.Flags().Changed("format") {
				inputFormat = defaults.InputFormat
			}
			if !cmd.Flags().Changed("output-format") {
				outputFormat = defaults.OutputFormat
			}
			if !cmd.Flags().Changed("full") {
				full = defaults.FullCodeword
			}
			if err := validation.ValidateFormat(inputFormat); err != nil {
				return err
			}
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			correctionBytes, err := resolveCorrectionBytes(cm, k, profile)
			if err != nil {
				return err
			}

			data, err := parseInput(cmd, args, useStdin, inputFormat, "Enter data: ")
			if err != nil {
				return err
			}

			slog.Debug("Encoding", "data_length", len(data), "k", correctionBytes, "format", inputFormat)

			encoder := reedsolomon.NewEncoder(reedsolomon.WithLogger(slog.Default()))
			correction, err := encoder.Encode(data, correctionBytes)
			if err != nil {
				return fmt.Errorf("failed to encode: %w", err)
			}

			result, err := newEncodeResult(data, correction, outputFormat, full)
			if err != nil {
				return err
			}
			result.CorrectionBytes = correctionBytes
			result.Profile = profile

			if outputFile != "" {
				return saveToFile(cmd.OutOrStdout(), result, outputFile)
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}

			return outputEncodeText(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVarP(&k, "ecc", "k", 0, "Number of correction bytes")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Named profile supplying the correction byte count")
	cmd.Flags().StringVarP(&inputFormat, "format", "f", validation.FormatText, "Input format (text, hex, base64, decimal)")
	cmd.Flags().StringVar(&outputFormat, "output-format", validation.FormatHex, "Output format (hex, base64, decimal)")
	cmd.Flags().BoolVar(&full, "full", false, "Also print the full codeword (data followed by correction bytes)")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read data from stdin")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the JSON result to a file")

	return cmd
}

func newEncodeResult(data, correction []byte, format string, full bool) (EncodeResult, error) {
	dataStr, err := validation.FormatBytes(data, format)
	if err != nil {
		return EncodeResult{}, err
	}
	correctionStr, err := validation.FormatBytes(correction, format)
	if err != nil {
		return EncodeResult{}, err
	}

	result := EncodeResult{
		Data:       dataStr,
		DataLength: len(data),
		Correction: correctionStr,
		Format:     format,
	}

	if full {
		codeword := make([]byte, 0, len(data)+len(correction))
		codeword = append(codeword, data...)
		codeword = append(codeword, correction...)
		result.Codeword, _ = validation.FormatBytes(codeword, format)
	}

	return result, nil
}

func outputEncodeText(w io.Writer, result EncodeResult) error {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	yellow.Fprintln(w, "=== REED-SOLOMON CORRECTION BYTES ===")
	fmt.Fprintln(w)

	green.Fprintf(w, "%d data bytes, %d correction bytes", result.DataLength, result.CorrectionBytes)
	if result.Profile != "" {
		fmt.Fprintf(w, " (profile %s)", result.Profile)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	cyan.Fprint(w, "  Correction: ")
	fmt.Fprintln(w, result.Correction)

	if result.Codeword != "" {
		cyan.Fprint(w, "  Codeword:   ")
		fmt.Fprintln(w, result.Codeword)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Format: %s\n", result.Format)
	return nil
}
