// Package gf256 implements arithmetic in the finite field GF(2^8) used by
// QR code Reed-Solomon coding.
//
// Elements are bytes. The field is defined modulo the irreducible polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D), and 2 is a primitive element, so every
// non-zero element is a power of 2.
package gf256

import (
	"errors"
	"fmt"
)

const (
	// QR code field polynomial: x^8 + x^4 + x^3 + x^2 + 1
	fieldPoly = 0x11D

	// number of non-zero elements
	order = 255
)

var (
	// ErrDivisionByZero is returned when dividing by (or inverting) the zero element.
	ErrDivisionByZero = errors.New("gf256: division by zero")

	// ErrLogOfZero is returned when taking the logarithm of the zero element.
	ErrLogOfZero = errors.New("gf256: logarithm of zero")
)

// exp and log tables for multiplication/division
var (
	expTable [order]byte
	logTable [256]int
)

func init() {
	x := 1
	for i := 0; i < order; i++ {
		expTable[i] = byte(x)
		logTable[x] = i

		x <<= 1
		if x&0x100 != 0 {
			x ^= fieldPoly
		}
	}
}

// Add returns a + b. Addition in characteristic 2 is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a - b, which is the same as Add.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[a]+logTable[b])%order]
}

// Div returns the element c such that Mul(c, b) == a.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, fmt.Errorf("%d / 0: %w", a, ErrDivisionByZero)
	}
	if a == 0 {
		return 0, nil
	}
	return expTable[(logTable[a]-logTable[b]+order)%order], nil
}

// Pow raises base to a non-negative exponent. Pow(x, 0) is 1 for every x,
// zero included.
func Pow(base byte, exponent int) byte {
	if exponent < 0 {
		panic("gf256: negative exponent")
	}
	if exponent == 0 {
		return 1
	}
	if base == 0 {
		return 0
	}
	return expTable[(logTable[base]*(exponent%order))%order]
}

// Exp returns 2^i.
func Exp(i int) byte {
	if i < 0 {
		panic("gf256: negative exponent")
	}
	return expTable[i%order]
}

// Log returns the discrete logarithm of a to base 2, in [0, 254].
func Log(a byte) (int, error) {
	if a == 0 {
		return 0, ErrLogOfZero
	}
	return logTable[a], nil
}

// Inverse returns the multiplicative inverse of a.
func Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, fmt.Errorf("inverse of 0: %w", ErrDivisionByZero)
	}
	return expTable[(order-logTable[a])%order], nil
}
