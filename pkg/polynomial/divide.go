package polynomial

import (
	"fmt"

	"github.com/Davincible/qrecc/pkg/gf256"
)

// Divide performs polynomial long division of p by denominator and returns
// quotient and remainder such that p = quotient*denominator + remainder, with
// the remainder's degree below the denominator's or the remainder zero.
//
// A zero denominator (or any denominator whose leading coefficient is zero)
// yields gf256.ErrDivisionByZero, unless p itself is zero.
func (p Polynomial) Divide(denominator Polynomial) (quotient, remainder Polynomial, err error) {
	if p.IsZero() {
		return Zero(), Zero(), nil
	}

	quotient = Zero()
	remainder = p
	hp := remainder.Degree()
	hd := denominator.Degree()
	leading := denominator.Coefficient(hd)

	for hp >= hd {
		coefficient, err := gf256.Div(remainder.Coefficient(hp), leading)
		if err != nil {
			return Zero(), Zero(), fmt.Errorf("leading coefficient of denominator at x^%d: %w", hd, err)
		}
		power := hp - hd

		quotient = quotient.AddTerm(coefficient, power)
		remainder = remainder.Subtract(denominator.MultiplyByTerm(coefficient, power))
		hp = remainder.Degree()

		// a zero remainder reports degree 0, which would otherwise keep a
		// constant denominator dividing zero forever
		if remainder.IsZero() && hd == 0 {
			return quotient, Zero(), nil
		}
	}

	return quotient, remainder, nil
}

// Remainder returns p mod denominator. See Divide.
func (p Polynomial) Remainder(denominator Polynomial) (Polynomial, error) {
	_, remainder, err := p.Divide(denominator)
	if err != nil {
		return Zero(), err
	}
	return remainder, nil
}
