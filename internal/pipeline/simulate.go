package pipeline

import (
	"math"

	"github.com/theirongolddev/creditsim/internal/model"
)

// Simulate advances the balance month by month and returns exactly p.Months rows.
//
// Each month accrues flat interest at APR/12 on the carried balance, adds that
// month's charges, selects a band from the outstanding amount (not the prior
// balance), and pays pct*outstanding floored at the band's minimum and capped at
// the outstanding amount. Money fields are rounded to cents and the rounded end
// balance is carried into the next month.
//
// The loop runs for every requested month even after the balance reaches zero:
// later charges can bring it back up.
//
// Simulate does not validate its input; see CheckParams. Bands must be non-empty
// and sorted.
func Simulate(p model.Params) []model.Row {
	months := p.Months
	if months < 0 {
		months = 0
	}
	rate := p.APR / 12.0
	balance := p.StartingBalance
	out := make([]model.Row, 0, months)

	for m := 1; m <= months; m++ {
		interest := balance * rate

		charges := p.MonthlyCharges
		if m-1 < len(p.MonthlyChargesArray) {
			charges = p.MonthlyChargesArray[m-1]
		}

		outstanding := balance + interest + charges
		band := PickBand(p.Bands, outstanding)

		payment := math.Max(band.Pct*outstanding, band.MinPayment)
		payment = math.Min(payment, outstanding)
		endBalance := math.Max(0, outstanding-payment)

		row := model.Row{
			Month:        m,
			StartBalance: Round2(balance),
			Interest:     Round2(interest),
			Charges:      Round2(charges),
			Payment:      Round2(payment),
			EndBalance:   Round2(endBalance),
			Pct:          band.Pct,
			MinPayment:   band.MinPayment,
		}
		out = append(out, row)

		balance = row.EndBalance
	}
	return out
}
