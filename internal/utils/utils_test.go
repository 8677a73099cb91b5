package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGService_SameSeedSameStream(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPRNGService_ZeroSeedIsTimeBased(t *testing.T) {
	s := NewPRNGService(0)
	assert.NotZero(t, s.Seed())
	v := s.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Pi/2, AngleTo(0, 0, 0, 10), 1e-12)
	assert.InDelta(t, math.Pi, AngleTo(0, 0, -5, 0), 1e-12)
}
