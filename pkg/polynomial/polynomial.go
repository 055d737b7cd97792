// Package polynomial provides an immutable polynomial type with coefficients
// in GF(2^8).
//
// A Polynomial is a sparse mapping from power to coefficient. Zero
// coefficients are never stored, so the zero polynomial is always the empty
// term set and degree/zero checks never see stale zero entries. Every
// operation returns a new value and leaves its operands untouched; the zero
// value of Polynomial is the zero polynomial.
package polynomial

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Davincible/qrecc/pkg/gf256"
)

// Polynomial is a polynomial over GF(2^8).
type Polynomial struct {
	terms map[int]byte
}

// New creates a polynomial from a power -> coefficient map. The map is
// copied and zero coefficients are dropped. Negative powers panic.
func New(terms map[int]byte) Polynomial {
	p := Polynomial{terms: make(map[int]byte, len(terms))}
	for power, coefficient := range terms {
		checkPower(power)
		if coefficient != 0 {
			p.terms[power] = coefficient
		}
	}
	return p
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// Monomial returns coefficient * x^power.
func Monomial(coefficient byte, power int) Polynomial {
	return New(map[int]byte{power: coefficient})
}

// FromCoefficients builds a polynomial from coefficients ordered from the
// highest power down to x^0.
func FromCoefficients(coefficients []byte) Polynomial {
	terms := make(map[int]byte, len(coefficients))
	for i, c := range coefficients {
		terms[len(coefficients)-1-i] = c
	}
	return New(terms)
}

func checkPower(power int) {
	if power < 0 {
		panic(fmt.Sprintf("polynomial: negative power %d", power))
	}
}

// Coefficient returns the coefficient of x^power, or 0 if there is no such term.
func (p Polynomial) Coefficient(power int) byte {
	return p.terms[power]
}

// Degree returns the highest power with a non-zero coefficient. The zero
// polynomial has degree 0; use IsZero to tell it apart from a constant.
func (p Polynomial) Degree() int {
	degree := 0
	for power := range p.terms {
		if power > degree {
			degree = power
		}
	}
	return degree
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Terms returns a copy of the power -> coefficient map.
func (p Polynomial) Terms() map[int]byte {
	terms := make(map[int]byte, len(p.terms))
	for power, coefficient := range p.terms {
		terms[power] = coefficient
	}
	return terms
}

// Powers returns the powers with non-zero coefficients, highest first.
func (p Polynomial) Powers() []int {
	powers := make([]int, 0, len(p.terms))
	for power := range p.terms {
		powers = append(powers, power)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(powers)))
	return powers
}

// Coefficients returns the n coefficients at powers n-1 down to 0. Terms of
// power n or higher are not included.
func (p Polynomial) Coefficients(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = p.terms[n-1-i]
	}
	return out
}

// AddTerm returns p + coefficient*x^power.
func (p Polynomial) AddTerm(coefficient byte, power int) Polynomial {
	checkPower(power)
	terms := p.Terms()
	terms[power] = gf256.Add(terms[power], coefficient)
	return New(terms)
}

// SubtractTerm returns p - coefficient*x^power.
func (p Polynomial) SubtractTerm(coefficient byte, power int) Polynomial {
	checkPower(power)
	terms := p.Terms()
	terms[power] = gf256.Sub(terms[power], coefficient)
	return New(terms)
}

// Add returns p + other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	terms := p.Terms()
	for power, coefficient := range other.terms {
		terms[power] = gf256.Add(terms[power], coefficient)
	}
	return New(terms)
}

// Subtract returns p - other.
func (p Polynomial) Subtract(other Polynomial) Polynomial {
	terms := p.Terms()
	for power, coefficient := range other.terms {
		terms[power] = gf256.Sub(terms[power], coefficient)
	}
	return New(terms)
}

// MultiplyByTerm returns p * coefficient*x^power.
func (p Polynomial) MultiplyByTerm(coefficient byte, power int) Polynomial {
	checkPower(power)
	terms := make(map[int]byte, len(p.terms))
	for pw, c := range p.terms {
		terms[pw+power] = gf256.Mul(c, coefficient)
	}
	return New(terms)
}

// Multiply returns p * other.
func (p Polynomial) Multiply(other Polynomial) Polynomial {
	product := Zero()
	for power, coefficient := range other.terms {
		product = product.Add(p.MultiplyByTerm(coefficient, power))
	}
	return product
}

// Equal reports whether p and other have the same terms.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.terms) != len(other.terms) {
		return false
	}
	for power, coefficient := range p.terms {
		if other.terms[power] != coefficient {
			return false
		}
	}
	return true
}

// EvaluateAt returns p(x).
func (p Polynomial) EvaluateAt(x byte) byte {
	result := byte(0)
	for power, coefficient := range p.terms {
		result = gf256.Add(result, gf256.Mul(coefficient, gf256.Pow(x, power)))
	}
	return result
}

// String formats p highest power first, e.g. "3x^2 + x + 7".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	parts := make([]string, 0, len(p.terms))
	for _, power := range p.Powers() {
		coefficient := p.terms[power]
		switch {
		case power == 0:
			parts = append(parts, fmt.Sprintf("%d", coefficient))
		case coefficient == 1 && power == 1:
			parts = append(parts, "x")
		case coefficient == 1:
			parts = append(parts, fmt.Sprintf("x^%d", power))
		case power == 1:
			parts = append(parts, fmt.Sprintf("%dx", coefficient))
		default:
			parts = append(parts, fmt.Sprintf("%dx^%d", coefficient, power))
		}
	}
	return strings.Join(parts, " + ")
}
