// Package model defines domain types for creditsim runs.
package model

// Band is a payment policy that applies once the outstanding balance reaches Lower.
type Band struct {
	Lower      float64 `json:"lower" toml:"lower"`
	Pct        float64 `json:"pct" toml:"pct"`
	MinPayment float64 `json:"minPayment" toml:"min_payment"`
}

// Params is the immutable input to one simulation run.
type Params struct {
	StartingBalance float64
	APR             float64 // fractional, 0.24 = 24%/yr
	Months          int
	MonthlyCharges  float64
	// MonthlyChargesArray overrides MonthlyCharges per month (index 0 = month 1).
	// Months past its end use the flat charge.
	MonthlyChargesArray []float64
	Bands               []Band
}

// Row is one simulated month of the ledger.
type Row struct {
	Month        int     `json:"month"`
	StartBalance float64 `json:"startBalance"`
	Interest     float64 `json:"interest"`
	Charges      float64 `json:"charges"`
	Payment      float64 `json:"payment"`
	EndBalance   float64 `json:"endBalance"`
	Pct          float64 `json:"pct"`
	MinPayment   float64 `json:"minPayment"`
}

// Outstanding is the amount due before the month's payment.
func (r Row) Outstanding() float64 {
	return r.StartBalance + r.Interest + r.Charges
}
