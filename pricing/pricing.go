// Package pricing holds the service-type price table used to default a
// booking's estimated cost. The table ships as embedded configuration so
// prices can be revised without touching the booking flow.
package pricing

import (
	_ "embed"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

//go:embed prices.json
var pricesData []byte

type PriceTable struct {
	Fallback float64            `json:"fallback"`
	Services map[string]float64 `json:"services"`
}

// EstimatedCost resolves the price for a service type, falling back to the
// default price for unknown types.
func (p *PriceTable) EstimatedCost(serviceType string) float64 {
	if price, ok := p.Services[serviceType]; ok {
		return price
	}

	return p.Fallback
}

// ServiceTypes lists the known service types.
func (p *PriceTable) ServiceTypes() []string {
	types := make([]string, 0, len(p.Services))
	for name := range p.Services {
		types = append(types, name)
	}

	return types
}

func Get() *PriceTable {
	var table PriceTable

	err := json.Unmarshal(pricesData, &table)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded price table")

		return nil
	}

	log.Info().Int("services", len(table.Services)).Msg("Successfully loaded embedded price table")

	return &table
}
