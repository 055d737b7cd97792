package reedsolomon

import (
	"log/slog"
	"sync"

	"github.com/Davincible/qrecc/pkg/polynomial"
)

// Encoder computes correction codewords and caches generator polynomials by
// correction byte count. It is safe for concurrent use.
type Encoder struct {
	mu         sync.RWMutex
	generators map[int]polynomial.Polynomial
	logger     *slog.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Encoder) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEncoder creates an Encoder with an empty generator cache.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		generators: make(map[int]polynomial.Polynomial),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generator returns the generator polynomial for k correction bytes, building
// and caching it on first use.
func (e *Encoder) Generator(k int) (polynomial.Polynomial, error) {
	e.mu.RLock()
	generator, ok := e.generators[k]
	e.mu.RUnlock()
	if ok {
		return generator, nil
	}

	generator, err := BuildGeneratorPolynomial(k)
	if err != nil {
		return polynomial.Zero(), err
	}

	e.mu.Lock()
	e.generators[k] = generator
	e.mu.Unlock()

	e.logger.Debug("Built generator polynomial", "k", k, "degree", generator.Degree())
	return generator, nil
}

// Encode returns the k correction bytes for data.
func (e *Encoder) Encode(data []byte, k int) ([]byte, error) {
	generator, err := e.Generator(k)
	if err != nil {
		return nil, err
	}
	return encodeWith(data, k, generator)
}

// Codeword returns data followed by its k correction bytes.
func (e *Encoder) Codeword(data []byte, k int) ([]byte, error) {
	ecc, err := e.Encode(data, k)
	if err != nil {
		return nil, err
	}
	return appendCorrection(data, ecc), nil
}

// Check reports whether the last k bytes of codeword are the correction bytes
// of the rest.
func (e *Encoder) Check(codeword []byte, k int) (bool, error) {
	generator, err := e.Generator(k)
	if err != nil {
		return false, err
	}
	return checkWith(codeword, k, generator)
}

// Cached returns the number of cached generator polynomials.
func (e *Encoder) Cached() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.generators)
}
