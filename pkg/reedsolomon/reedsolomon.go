// Package reedsolomon generates Reed-Solomon correction codewords over
// GF(2^8) the way QR codes use them.
//
// The data bytes are read as a message polynomial, shifted up by k powers,
// and divided by the generator polynomial (x - 2^0)(x - 2^1)...(x - 2^(k-1)).
// The k coefficients of the remainder are the correction bytes, to be
// appended after the data.
package reedsolomon

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Davincible/qrecc/pkg/gf256"
	"github.com/Davincible/qrecc/pkg/polynomial"
)

var (
	// ErrInvalidCorrectionCount is returned when the correction byte count is not positive.
	ErrInvalidCorrectionCount = errors.New("correction byte count must be positive")

	// ErrCodewordTooShort is returned by Check when the codeword holds fewer than k bytes.
	ErrCodewordTooShort = errors.New("codeword shorter than correction byte count")
)

func validateCorrectionCount(k int) error {
	if k <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidCorrectionCount, k)
	}
	return nil
}

// BuildMessagePolynomial returns the polynomial whose coefficient at power
// k+n-i-1 is data[i], n being len(data).
func BuildMessagePolynomial(data []byte, k int) (polynomial.Polynomial, error) {
	if err := validateCorrectionCount(k); err != nil {
		return polynomial.Zero(), err
	}

	terms := make(map[int]byte, len(data))
	for i, b := range data {
		terms[k+len(data)-i-1] = b
	}
	return polynomial.New(terms), nil
}

// BuildGeneratorPolynomial returns the product of (x - 2^i) for i in [0, k).
func BuildGeneratorPolynomial(k int) (polynomial.Polynomial, error) {
	if err := validateCorrectionCount(k); err != nil {
		return polynomial.Zero(), err
	}

	generator := polynomial.Monomial(1, 0)
	for i := 0; i < k; i++ {
		factor := polynomial.New(map[int]byte{
			1: 1,
			0: gf256.Sub(0, gf256.Pow(2, i)),
		})
		generator = generator.Multiply(factor)
	}
	return generator, nil
}

// Encode returns the k correction bytes for data.
func Encode(data []byte, k int) ([]byte, error) {
	generator, err := BuildGeneratorPolynomial(k)
	if err != nil {
		return nil, err
	}
	return encodeWith(data, k, generator)
}

func encodeWith(data []byte, k int, generator polynomial.Polynomial) ([]byte, error) {
	message, err := BuildMessagePolynomial(data, k)
	if err != nil {
		return nil, err
	}

	remainder, err := message.Remainder(generator)
	if err != nil {
		return nil, fmt.Errorf("failed to divide message by generator: %w", err)
	}

	return remainder.Coefficients(k), nil
}

// Codeword returns data followed by its k correction bytes.
func Codeword(data []byte, k int) ([]byte, error) {
	ecc, err := Encode(data, k)
	if err != nil {
		return nil, err
	}
	return appendCorrection(data, ecc), nil
}

func appendCorrection(data, ecc []byte) []byte {
	out := make([]byte, 0, len(data)+len(ecc))
	out = append(out, data...)
	return append(out, ecc...)
}

// Check recomputes the correction bytes of the data part of codeword (all but
// the last k bytes) and reports whether they equal the last k bytes. It does
// not locate or repair errors.
func Check(codeword []byte, k int) (bool, error) {
	generator, err := BuildGeneratorPolynomial(k)
	if err != nil {
		return false, err
	}
	return checkWith(codeword, k, generator)
}

func checkWith(codeword []byte, k int, generator polynomial.Polynomial) (bool, error) {
	if len(codeword) < k {
		return false, fmt.Errorf("%w: %d bytes, k=%d", ErrCodewordTooShort, len(codeword), k)
	}

	split := len(codeword) - k
	ecc, err := encodeWith(codeword[:split], k, generator)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ecc, codeword[split:]), nil
}
