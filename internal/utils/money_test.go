package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalCents(t *testing.T) {
	// $100.00/AF x 2.5 AF = $250.00
	assert.Equal(t, int64(25000), TotalCents(10000, 2500))

	// Below half a cent truncates: 0.001 cents -> 0
	assert.Equal(t, int64(0), TotalCents(1, 1))

	// Half values round up: $1.00/AF x 0.005 AF = 0.5 cents -> 1 cent
	assert.Equal(t, int64(1), TotalCents(100, 5))

	assert.Equal(t, int64(0), TotalCents(0, 2500))
}

func TestFeeCents(t *testing.T) {
	// 3.5% of $250.00 = $8.75 exactly
	assert.Equal(t, int64(875), FeeCents(25000, 350))

	// 3.5% of $0.99 = 3.465 cents -> 3
	assert.Equal(t, int64(3), FeeCents(99, 350))

	// Exact half rounds up: 1% of 50 cents = 0.5 -> 1
	assert.Equal(t, int64(1), FeeCents(50, 100))

	assert.Equal(t, int64(0), FeeCents(0, 350))
}
