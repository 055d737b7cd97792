package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Davincible/qrecc/pkg/gf256"
	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type GeneratorResult struct {
	CorrectionBytes int    `json:"correction_bytes"`
	Polynomial      string `json:"polynomial"`
	Coefficients    []int  `json:"coefficients"`
	Exponents       []int  `json:"exponents"`
	Roots           []int  `json:"roots"`
}

func NewGeneratorCommand() *cobra.Command {
	var (
		k       int
		profile string
	)

	cmd := &cobra.Command{
		Use:   "generator",
		Short: "Show the generator polynomial for a correction byte count",
		Long: `Print the Reed-Solomon generator polynomial (x - 2^0)(x - 2^1)...(x - 2^(k-1))
with its coefficients, highest power first, and each coefficient as a power of 2.`,
		Example: `  qrecc generator -k 7
  qrecc generator -p 1-H --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			correctionBytes, err := resolveCorrectionBytes(cm, k, profile)
			if err != nil {
				return err
			}

			result, err := buildGeneratorResult(correctionBytes)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}

			outputGeneratorText(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "ecc", "k", 0, "Number of correction bytes")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Named profile supplying the correction byte count")

	return cmd
}

func buildGeneratorResult(k int) (GeneratorResult, error) {
	generator, err := reedsolomon.BuildGeneratorPolynomial(k)
	if err != nil {
		return GeneratorResult{}, err
	}

	coefficients := generator.Coefficients(k + 1)
	exponents := make([]int, len(coefficients))
	for i, c := range coefficients {
		// -1 marks a zero coefficient
		exponents[i] = -1
		if l, err := gf256.Log(c); err == nil {
			exponents[i] = l
		}
	}

	roots := make([]int, k)
	for i := range roots {
		roots[i] = int(gf256.Pow(2, i))
	}

	return GeneratorResult{
		CorrectionBytes: k,
		Polynomial:      generator.String(),
		Coefficients:    toInts(coefficients),
		Exponents:       exponents,
		Roots:           roots,
	}, nil
}

func outputGeneratorText(w io.Writer, result GeneratorResult) {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	yellow.Fprintf(w, "=== GENERATOR POLYNOMIAL (k=%d) ===\n", result.CorrectionBytes)
	fmt.Fprintln(w)

	cyan.Fprint(w, "  g(x) = ")
	fmt.Fprintln(w, result.Polynomial)
	fmt.Fprintln(w)

	cyan.Fprint(w, "  Coefficients: ")
	fmt.Fprintln(w, joinInts(result.Coefficients))
	cyan.Fprint(w, "  As 2^e:       ")
	fmt.Fprintln(w, joinInts(result.Exponents))
	cyan.Fprint(w, "  Roots:        ")
	fmt.Fprintln(w, joinInts(result.Roots))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
