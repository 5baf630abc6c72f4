package pipeline

import (
	"fmt"

	"github.com/theirongolddev/creditsim/internal/model"
)

// CalculateSummary totals a run's rows. FinalBalance is the last row's end
// balance; an empty slice yields a zero summary.
func CalculateSummary(rows []model.Row) model.Summary {
	var s model.Summary
	if len(rows) == 0 {
		return s
	}

	s.FinalBalance = rows[len(rows)-1].EndBalance
	for _, r := range rows {
		s.TotalPaid += r.Payment
		s.TotalInterest += r.Interest
		s.TotalCharges += r.Charges
	}
	return s
}

// PaidOff reports whether the run ends with a zero balance.
func PaidOff(s model.Summary) bool {
	return s.FinalBalance == 0
}

// PayoffMonth returns the first month that ends with a zero balance.
func PayoffMonth(rows []model.Row) (int, bool) {
	for _, r := range rows {
		if r.EndBalance == 0 {
			return r.Month, true
		}
	}
	return 0, false
}

// MaxBalance returns the highest balance seen in a run, including the
// starting balance. Used to size the band chart.
func MaxBalance(startingBalance float64, rows []model.Row) float64 {
	peak := startingBalance
	for _, r := range rows {
		if r.StartBalance > peak {
			peak = r.StartBalance
		}
		if r.EndBalance > peak {
			peak = r.EndBalance
		}
	}
	return peak
}

// BalanceSeries returns end balances in month order.
func BalanceSeries(rows []model.Row) []float64 {
	return series(rows, func(r model.Row) float64 { return r.EndBalance })
}

// PaymentSeries returns payments in month order.
func PaymentSeries(rows []model.Row) []float64 {
	return series(rows, func(r model.Row) float64 { return r.Payment })
}

// InterestSeries returns interest in month order.
func InterestSeries(rows []model.Row) []float64 {
	return series(rows, func(r model.Row) float64 { return r.Interest })
}

// MonthLabels returns "M1".."Mn" chart labels.
func MonthLabels(rows []model.Row) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = fmt.Sprintf("M%d", r.Month)
	}
	return labels
}

func series(rows []model.Row, pick func(model.Row) float64) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = pick(r)
	}
	return out
}
