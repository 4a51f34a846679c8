package docgen

import (
	"os"
	"testing"

	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLeaseAgreement(t *testing.T) {
	g := NewGenerator(t.TempDir())

	listing := &models.Listing{
		ID:            7,
		LeaseDuration: "6 months",
		WaterDistrict: "Tule River",
		AmountMilliAF: 2500,
		PriceCentsAF:  10000,
	}
	seller := &models.User{Name: "Sal Seller", Email: "sal@example.com"}
	buyer := &models.User{Name: "Bea Buyer", Email: "bea@example.com"}

	path, err := g.LeaseAgreement(listing, seller, buyer)
	assert.NoError(t, err)
	assert.NotEmpty(t, path)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$250.00", formatUSD(25000))
	assert.Equal(t, "$1,234.56", formatUSD(123456))
	assert.Equal(t, "$0.05", formatUSD(5))
	assert.Equal(t, "$1,000,000.00", formatUSD(100000000))
}
