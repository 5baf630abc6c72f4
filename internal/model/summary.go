package model

// Summary holds the totals derived from a run's rows.
type Summary struct {
	FinalBalance  float64 `json:"finalBalance"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalInterest float64 `json:"totalInterest"`
	TotalCharges  float64 `json:"totalCharges"`
}

// Result is a completed run: the ledger, its totals and the first month
// that ended at zero (0 when the balance never reached zero).
type Result struct {
	Rows        []Row   `json:"rows"`
	Summary     Summary `json:"summary"`
	PayoffMonth int     `json:"payoffMonth"`
}
