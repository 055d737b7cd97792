package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loadConfig opens the config manager and applies its UI settings
func loadConfig() (*config.ConfigManager, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ui := cm.GetConfig().UI
	if !ui.UseColor {
		color.NoColor = true
	}
	if ui.Verbosity == "verbose" {
		setLogLevel(slog.LevelDebug)
	}

	slog.Debug("Loaded config", "path", cm.Path())
	return cm, nil
}

// readInput returns the raw input for a command: the joined arguments, the
// whole of stdin, or a line typed at an interactive prompt
func readInput(cmd *cobra.Command, args []string, useStdin bool, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if !useStdin && in == os.Stdin && term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		reader := bufio.NewReader(in)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// parseInput reads and decodes the command input in the given format
func parseInput(cmd *cobra.Command, args []string, useStdin bool, format, prompt string) ([]byte, error) {
	raw, err := readInput(cmd, args, useStdin, prompt)
	if err != nil {
		return nil, err
	}

	data, err := validation.ParseBytes(raw, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s input: %w", format, err)
	}
	return data, nil
}

// resolveCorrectionBytes applies flags and config defaults, then validates k
func resolveCorrectionBytes(cm *config.ConfigManager, k int, profile string) (int, error) {
	resolved, err := cm.ResolveCorrectionBytes(k, profile)
	if err != nil {
		return 0, err
	}
	if err := validation.ValidateCorrectionCount(resolved); err != nil {
		return 0, err
	}
	return resolved, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	outputJSON, _ := cmd.Flags().GetBool("json")
	return outputJSON
}

func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func saveToFile(w io.Writer, data interface{}, filename string) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(filename, encoded, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Fprintf(w, "Result saved to %s\n", filename)
	return nil
}

func toInts(data []byte) []int {
	out := make([]int, len(data))
	for i, b := range data {
		out[i] = int(b)
	}
	return out
}
