package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGeneratorResult(t *testing.T) {
	result, err := buildGeneratorResult(7)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 127, 122, 154, 164, 11, 68, 117}, result.Coefficients)
	assert.Equal(t, []int{0, 87, 229, 146, 149, 238, 102, 21}, result.Exponents)
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64}, result.Roots)
	assert.Equal(t, "x^7 + 127x^6 + 122x^5 + 154x^4 + 164x^3 + 11x^2 + 68x + 117", result.Polynomial)
}

func TestGeneratorCommand(t *testing.T) {
	setupConfig(t)

	out, err := runCommand(t, "", "generator", "--json", "-k", "2")
	require.NoError(t, err)

	var result GeneratorResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.CorrectionBytes)
	assert.Equal(t, []int{1, 3, 2}, result.Coefficients)
	assert.Equal(t, "x^2 + 3x + 2", result.Polynomial)

	out, err = runCommand(t, "", "generator", "-p", "1-L")
	require.NoError(t, err)
	assert.Contains(t, out, "GENERATOR POLYNOMIAL (k=7)")
	assert.Contains(t, out, "0 87 229 146 149 238 102 21")

	_, err = runCommand(t, "", "generator", "-k", "-3")
	assert.Error(t, err)
}
