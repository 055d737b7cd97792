package polynomial

import (
	"math/rand"
	"testing"

	"github.com/Davincible/qrecc/pkg/gf256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainderOfZero(t *testing.T) {
	denominators := []Polynomial{
		Zero(),
		Monomial(3, 0),
		FromCoefficients([]byte{1, 3, 2}),
	}

	for _, d := range denominators {
		r, err := Zero().Remainder(d)
		require.NoError(t, err)
		assert.True(t, r.IsZero(), "0 mod %s", d)
	}
}

func TestDivideByZeroPolynomial(t *testing.T) {
	_, err := Monomial(1, 2).Remainder(Zero())
	assert.ErrorIs(t, err, gf256.ErrDivisionByZero)
}

func TestDivideByConstant(t *testing.T) {
	p := New(map[int]byte{3: 5, 1: 9, 0: 1})

	q, r, err := p.Divide(Monomial(7, 0))
	require.NoError(t, err)
	assert.True(t, r.IsZero())
	assert.True(t, q.Multiply(Monomial(7, 0)).Equal(p))

	// constant by constant
	r, err = Monomial(4, 0).Remainder(Monomial(2, 0))
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestDivideExact(t *testing.T) {
	// (x + 1)(x + 2) divided by (x + 2)
	n := FromCoefficients([]byte{1, 3, 2})
	q, r, err := n.Divide(FromCoefficients([]byte{1, 2}))
	require.NoError(t, err)
	assert.True(t, r.IsZero())
	assert.True(t, q.Equal(FromCoefficients([]byte{1, 1})))
}

func TestDivideSmallerNumerator(t *testing.T) {
	n := FromCoefficients([]byte{4, 9})
	d := FromCoefficients([]byte{1, 0, 0, 1})

	q, r, err := n.Divide(d)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.True(t, r.Equal(n))
}

func TestDivisionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		n := randomPolynomial(rng, 20)
		d := randomPolynomial(rng, 8)
		if d.IsZero() {
			continue
		}

		q, r, err := n.Divide(d)
		require.NoError(t, err)

		if !r.IsZero() {
			require.Less(t, r.Degree(), d.Degree(), "n=%s d=%s r=%s", n, d, r)
		}
		require.True(t, q.Multiply(d).Add(r).Equal(n), "n=%s d=%s", n, d)

		r2, err := n.Remainder(d)
		require.NoError(t, err)
		require.True(t, r2.Equal(r))
	}
}

func TestDivideDoesNotMutateOperands(t *testing.T) {
	n := New(map[int]byte{6: 3, 2: 1})
	d := New(map[int]byte{2: 1, 0: 5})
	before := n.Terms()

	_, _, err := n.Divide(d)
	require.NoError(t, err)
	assert.Equal(t, before, n.Terms())
	assert.True(t, d.Equal(New(map[int]byte{2: 1, 0: 5})))
}
