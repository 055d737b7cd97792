package validation

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Input and output byte encodings understood by the CLI.
const (
	FormatText    = "text"
	FormatHex     = "hex"
	FormatBase64  = "base64"
	FormatDecimal = "decimal"
)

// MaxCorrectionBytes bounds k at the CLI boundary: a GF(256) Reed-Solomon
// codeword holds at most 255 symbols.
const MaxCorrectionBytes = 255

var (
	// ErrByteOutOfRange is returned for decimal values outside 0..255.
	ErrByteOutOfRange = errors.New("byte value out of range 0..255")

	// ErrEmptyInput is returned when there is nothing to parse.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrUnknownFormat is returned for an unsupported encoding name.
	ErrUnknownFormat = errors.New("unknown format")
)

var (
	hexPattern       = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	decimalSeparator = regexp.MustCompile(`[\s,;]+`)
	profilePattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
)

func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}

	return nil
}

// ValidateFormat checks that format names a supported input encoding.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatHex, FormatBase64, FormatDecimal:
		return nil
	}
	return fmt.Errorf("%w %q (expected text, hex, base64 or decimal)", ErrUnknownFormat, format)
}

// ValidateOutputFormat checks that format names a supported output encoding.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatHex, FormatBase64, FormatDecimal:
		return nil
	}
	return fmt.Errorf("%w %q (expected hex, base64 or decimal)", ErrUnknownFormat, format)
}

// ParseBytes decodes input according to format.
func ParseBytes(input, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	if format == FormatText {
		if input == "" {
			return nil, ErrEmptyInput
		}
		return []byte(input), nil
	}

	input = SanitizeInput(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	switch format {
	case FormatHex:
		input = strings.Join(strings.Fields(input), "")
		if err := ValidateHex(input); err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return hex.DecodeString(input)
	case FormatBase64:
		data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(input), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return data, nil
	default:
		return ParseDecimalList(input)
	}
}

// ParseDecimalList parses byte values separated by commas, semicolons or
// whitespace, e.g. "64, 134, 54, 67". Brackets around the list are ignored.
func ParseDecimalList(input string) ([]byte, error) {
	input = strings.Trim(strings.TrimSpace(input), "[]")
	fields := decimalSeparator.Split(strings.TrimSpace(input), -1)

	out := make([]byte, 0, len(fields))
	for i, field := range fields {
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q) is not a number", i+1, field)
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("value %d (%d): %w", i+1, v, ErrByteOutOfRange)
		}
		out = append(out, byte(v))
	}

	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

// FormatBytes renders data in the given output encoding.
func FormatBytes(data []byte, format string) (string, error) {
	switch format {
	case FormatHex:
		return hex.EncodeToString(data), nil
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(data), nil
	case FormatDecimal:
		parts := make([]string, len(data))
		for i, b := range data {
			parts[i] = strconv.Itoa(int(b))
		}
		return strings.Join(parts, " "), nil
	}
	return "", ValidateOutputFormat(format)
}

func ValidateCorrectionCount(k int) error {
	if k < 1 || k > MaxCorrectionBytes {
		return fmt.Errorf("correction bytes must be between 1 and %d (got %d)", MaxCorrectionBytes, k)
	}
	return nil
}

func ValidateProfileName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("profile name too long (max 64 characters)")
	}
	if !profilePattern.MatchString(name) {
		return fmt.Errorf("profile name %q contains invalid characters", name)
	}
	return nil
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
