package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloWorld1MHex = "205b0b78d172dc4d4340ec11ec11ec11"

func TestEncodeCommand_JSON(t *testing.T) {
	setupConfig(t)

	out, err := runCommand(t, "", "encode", "--json", "-k", "4", "-f", "decimal", "--output-format", "decimal", "64, 134, 54, 67")
	require.NoError(t, err)

	var result EncodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "115 138 155 209", result.Correction)
	assert.Equal(t, "64 134 54 67", result.Data)
	assert.Equal(t, 4, result.DataLength)
	assert.Equal(t, 4, result.CorrectionBytes)
	assert.Empty(t, result.Codeword)
}

func TestEncodeCommand_Profile(t *testing.T) {
	setupConfig(t)

	out, err := runCommand(t, "", "encode", "-j", "-p", "1-M", "-f", "hex", "--full", helloWorld1MHex)
	require.NoError(t, err)

	var result EncodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 10, result.CorrectionBytes)
	assert.Equal(t, "1-M", result.Profile)
	assert.Equal(t, "c4232777ebd7e7e25d17", result.Correction)
	assert.Equal(t, helloWorld1MHex+"c4232777ebd7e7e25d17", result.Codeword)
}

func TestEncodeCommand_TextOutput(t *testing.T) {
	setupConfig(t)

	out, err := runCommand(t, "", "encode", "-k", "4", "-f", "decimal", "64 134 54 67")
	require.NoError(t, err)
	assert.Contains(t, out, "REED-SOLOMON CORRECTION BYTES")
	assert.Contains(t, out, "4 data bytes, 4 correction bytes")
	assert.Contains(t, out, "Correction: 738a9bd1")
}

func TestEncodeCommand_Stdin(t *testing.T) {
	setupConfig(t)

	viaArgs, err := runCommand(t, "", "encode", "--json", "-k", "7", "hello")
	require.NoError(t, err)

	viaStdin, err := runCommand(t, "hello\n", "encode", "--json", "-k", "7", "--stdin")
	require.NoError(t, err)

	assert.JSONEq(t, viaArgs, viaStdin)
}

func TestEncodeCommand_DefaultCount(t *testing.T) {
	setupConfig(t)

	out, err := runCommand(t, "", "encode", "--json", "-f", "hex", helloWorld1MHex)
	require.NoError(t, err)

	var result EncodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 10, result.CorrectionBytes)
	assert.Equal(t, "c4232777ebd7e7e25d17", result.Correction)
}

func TestEncodeCommand_OutputFile(t *testing.T) {
	setupConfig(t)
	outputFile := filepath.Join(t.TempDir(), "result.json")

	out, err := runCommand(t, "", "encode", "-k", "4", "-f", "decimal", "-o", outputFile, "64 134 54 67")
	require.NoError(t, err)
	assert.Contains(t, out, "Result saved to")

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result EncodeResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "738a9bd1", result.Correction)

	info, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestEncodeCommand_Errors(t *testing.T) {
	setupConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"negative count", []string{"encode", "-k", "-1", "abc"}},
		{"count too large", []string{"encode", "-k", "256", "abc"}},
		{"unknown profile", []string{"encode", "-p", "9-Z", "abc"}},
		{"unknown input format", []string{"encode", "-k", "4", "-f", "octal", "abc"}},
		{"unknown output format", []string{"encode", "-k", "4", "--output-format", "text", "abc"}},
		{"byte out of range", []string{"encode", "-k", "4", "-f", "decimal", "1 2 300"}},
		{"bad hex", []string{"encode", "-k", "4", "-f", "hex", "xyz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}
