package cli

import (
	"encoding/json"
	"testing"

	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_Valid(t *testing.T) {
	setupConfig(t)

	out, err := runCommand(t, "", "check", "-p", "1-M", helloWorld1MHex+"c4232777ebd7e7e25d17")
	require.NoError(t, err)
	assert.Contains(t, out, "Codeword is consistent")
}

func TestCheckCommand_Corrupted(t *testing.T) {
	setupConfig(t)

	out, err := runCommand(t, "", "check", "--json", "-k", "4", "-f", "decimal", "64 134 54 68 115 138 155 209")
	assert.ErrorIs(t, err, ErrCodewordMismatch)

	var result CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, "738a9bd1", result.Actual)
	assert.NotEqual(t, result.Actual, result.Expected)
	assert.Equal(t, 4, result.DataLength)
}

func TestCheckCommand_TooShort(t *testing.T) {
	setupConfig(t)

	_, err := runCommand(t, "", "check", "-k", "10", "0102")
	assert.ErrorIs(t, err, reedsolomon.ErrCodewordTooShort)
}

func TestCheckCodeword(t *testing.T) {
	result, err := checkCodeword([]byte{64, 134, 54, 67, 115, 138, 155, 209}, 4)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "738a9bd1", result.Expected)
	assert.Equal(t, result.Expected, result.Actual)
}
