package pricing_test

import (
	"testing"

	"garage/pricing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	table := pricing.Get()

	assert.NotNil(t, table)
	assert.Equal(t, float64(150000), table.Fallback)
	assert.Len(t, table.Services, 13)
}

func TestPriceTable_EstimatedCost(t *testing.T) {
	table := pricing.Get()

	tests := []struct {
		serviceType string
		want        float64
	}{
		{"Ganti Ban", 800000},
		{"Ganti Oli", 150000},
		{"Service Rutin", 200000},
		{"Cat Ulang", 1000000},
		{"Layanan Misterius", 150000},
		{"", 150000},
	}

	for _, tt := range tests {
		t.Run(tt.serviceType, func(t *testing.T) {
			assert.Equal(t, tt.want, table.EstimatedCost(tt.serviceType))
		})
	}
}

func TestPriceTable_ServiceTypes(t *testing.T) {
	types := pricing.Get().ServiceTypes()

	assert.Len(t, types, 13)
	assert.Contains(t, types, "Ganti Ban")
	assert.Contains(t, types, "Perbaikan Mesin")
}
