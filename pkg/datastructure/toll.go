package datastructure

import "github.com/lintang-b-s/routesynth/pkg"

type TollEntry struct {
	Name         string  `json:"name" mapstructure:"name"`
	OperatorName string  `json:"operator" mapstructure:"operator"`
	Cost         float64 `json:"cost" mapstructure:"cost"`
	Currency     string  `json:"currency" mapstructure:"currency"`
}

func NewTollEntry(name, operatorName string, cost float64, currency string) TollEntry {
	if currency == "" {
		currency = pkg.DEFAULT_CURRENCY
	}
	if cost < 0 {
		cost = 0
	}
	return TollEntry{
		Name:         name,
		OperatorName: operatorName,
		Cost:         cost,
		Currency:     currency,
	}
}

func TotalTollCost(tolls []TollEntry) float64 {
	total := 0.0
	for _, t := range tolls {
		total += t.Cost
	}
	return total
}
