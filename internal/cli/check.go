package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrCodewordMismatch is returned when a codeword's correction bytes are wrong.
var ErrCodewordMismatch = errors.New("correction bytes do not match data")

type CheckResult struct {
	Valid           bool   `json:"valid"`
	CorrectionBytes int    `json:"correction_bytes"`
	DataLength      int    `json:"data_length"`
	Expected        string `json:"expected"`
	Actual          string `json:"actual"`
}

// NewCheckCommand creates a command that checks a full codeword
func NewCheckCommand() *cobra.Command {
	var (
		k           int
		profile     string
		inputFormat string
		useStdin    bool
	)

	cmd := &cobra.Command{
		Use:   "check [codeword]",
		Short: "Check that a codeword ends with the right correction bytes",
		Long: `Split a codeword into data and its last k correction bytes, recompute
the correction bytes from the data, and compare.

This detects corruption but does not locate or repair it.`,
		Example: `  # Check a QR version 1-M block
  qrecc check -p 1-M -f hex 205b0b78d172dc4d4340ec11ec11ec11c4232777ebd7e7e25d17

  # Check decimal bytes
  qrecc check -k 4 -f decimal "64 134 54 67 115 138 155 209"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			correctionBytes, err := resolveCorrectionBytes(cm, k, profile)
			if err != nil {
				return err
			}

			codeword, err := parseInput(cmd, args, useStdin, inputFormat, "Enter codeword: ")
			if err != nil {
				return err
			}

			result, err := checkCodeword(codeword, correctionBytes)
			if err != nil {
				return err
			}

			slog.Debug("Checked codeword", "length", len(codeword), "k", correctionBytes, "valid", result.Valid)

			if jsonOutput(cmd) {
				if err := printJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				outputCheckText(cmd.OutOrStdout(), result)
			}

			if !result.Valid {
				return ErrCodewordMismatch
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "ecc", "k", 0, "Number of correction bytes at the end of the codeword")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Named profile supplying the correction byte count")
	cmd.Flags().StringVarP(&inputFormat, "format", "f", validation.FormatHex, "Input format (text, hex, base64, decimal)")
	cmd.Flags().BoolVar(&useStdin, "stdin", false, "Read the codeword from stdin")

	return cmd
}

func checkCodeword(codeword []byte, k int) (CheckResult, error) {
	encoder := reedsolomon.NewEncoder(reedsolomon.WithLogger(slog.Default()))
	valid, err := encoder.Check(codeword, k)
	if err != nil {
		return CheckResult{}, err
	}

	split := len(codeword) - k
	expected, err := encoder.Encode(codeword[:split], k)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to encode: %w", err)
	}

	expectedHex, _ := validation.FormatBytes(expected, validation.FormatHex)
	actualHex, _ := validation.FormatBytes(codeword[split:], validation.FormatHex)

	return CheckResult{
		Valid:           valid,
		CorrectionBytes: k,
		DataLength:      split,
		Expected:        expectedHex,
		Actual:          actualHex,
	}, nil
}

func outputCheckText(w io.Writer, result CheckResult) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	if result.Valid {
		green.Fprintln(w, "✓ Codeword is consistent")
	} else {
		red.Fprintln(w, "✗ Codeword is corrupted")
	}
	fmt.Fprintln(w)

	yellow.Fprintln(w, "Details:")
	fmt.Fprintf(w, "  Data bytes:       %d\n", result.DataLength)
	fmt.Fprintf(w, "  Correction bytes: %d\n", result.CorrectionBytes)
	fmt.Fprintf(w, "  Expected:         %s\n", result.Expected)
	fmt.Fprintf(w, "  Actual:           %s\n", result.Actual)
}
