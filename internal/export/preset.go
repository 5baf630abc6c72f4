package export

import (
	"github.com/theirongolddev/creditsim/internal/charges"
	"github.com/theirongolddev/creditsim/internal/model"
)

// ExampleBands is the tiered band table used by the example scenario.
func ExampleBands() []model.Band {
	return []model.Band{
		{Lower: 0, Pct: 0, MinPayment: 0},
		{Lower: 100, Pct: 0.05, MinPayment: 25},
		{Lower: 500, Pct: 0.04, MinPayment: 35},
		{Lower: 1000, Pct: 0.03, MinPayment: 40},
		{Lower: 3000, Pct: 0.025, MinPayment: 50},
	}
}

// ExampleDocument is the scenario loaded on reset: a 5000 balance at 24%
// APR over two years with no new charges.
func ExampleDocument() Document {
	return Document{
		Version:               DocumentVersion,
		StartingBalance:       5000,
		APR:                   0.24,
		Months:                24,
		MonthlyCharges:        0,
		MonthlyChargesStorage: charges.New(),
		Bands:                 ExampleBands(),
	}
}
