package reedsolomon

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderMatchesEncode(t *testing.T) {
	enc := NewEncoder()

	for k := 1; k <= 20; k++ {
		want, err := Encode(helloWorld1M, k)
		require.NoError(t, err)

		got, err := enc.Encode(helloWorld1M, k)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%d", k)
	}
	assert.Equal(t, 20, enc.Cached())
}

func TestEncoderCachesGenerators(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	enc := NewEncoder(WithLogger(logger))

	g1, err := enc.Generator(10)
	require.NoError(t, err)
	g2, err := enc.Generator(10)
	require.NoError(t, err)

	assert.True(t, g1.Equal(g2))
	assert.Equal(t, 1, enc.Cached())
	assert.Equal(t, 1, strings.Count(buf.String(), "Built generator polynomial"))
}

func TestEncoderRejectsInvalidCount(t *testing.T) {
	enc := NewEncoder()

	_, err := enc.Encode([]byte{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidCorrectionCount)
	assert.Equal(t, 0, enc.Cached())

	_, err = enc.Check([]byte{1, 2, 3}, -2)
	assert.ErrorIs(t, err, ErrInvalidCorrectionCount)
}

func TestEncoderCodewordAndCheck(t *testing.T) {
	enc := NewEncoder()

	codeword, err := enc.Codeword([]byte{64, 134, 54, 67}, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{64, 134, 54, 67, 115, 138, 155, 209}, codeword)

	ok, err := enc.Check(codeword, 4)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEncoderConcurrentUse(t *testing.T) {
	enc := NewEncoder()
	want, err := Encode(helloWorld1M, 10)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	results := make(chan []byte, 32)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := enc.Encode(helloWorld1M, 10)
			if err != nil {
				errs <- err
				return
			}
			results <- got
		}()
	}
	wg.Wait()
	close(errs)
	close(results)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
	for got := range results {
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, enc.Cached())
}
