// Package pipeline runs the credit balance simulation: band selection, the
// month-by-month engine, and aggregation over the resulting rows.
package pipeline

import (
	"math"
	"sort"

	"github.com/theirongolddev/creditsim/internal/model"
)

// PickBand returns the band with the largest Lower that is <= balance.
// Bands must be sorted ascending by Lower (see ValidateBands). When the balance
// is below every Lower, the first band is returned.
func PickBand(bands []model.Band, balance float64) model.Band {
	chosen := bands[0]
	for _, b := range bands {
		if balance >= b.Lower {
			chosen = b
			continue
		}
		break
	}
	return chosen
}

// ValidateBands drops bands with a NaN field and returns the rest sorted
// ascending by Lower. The input slice is not modified.
func ValidateBands(bands []model.Band) []model.Band {
	valid := make([]model.Band, 0, len(bands))
	for _, b := range bands {
		if math.IsNaN(b.Lower) || math.IsNaN(b.Pct) || math.IsNaN(b.MinPayment) {
			continue
		}
		valid = append(valid, b)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Lower < valid[j].Lower
	})
	return valid
}

// PctCurve samples the percentage PickBand chooses at n evenly spaced
// balances from 0 to peak inclusive. A non-positive peak falls back to the
// highest band's Lower so every band shows up.
func PctCurve(bands []model.Band, peak float64, n int) []float64 {
	if len(bands) == 0 || n < 2 {
		return nil
	}
	if peak <= 0 {
		peak = bands[len(bands)-1].Lower
	}
	if peak <= 0 {
		peak = 1
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = PickBand(bands, CurveBalance(peak, i, n)).Pct
	}
	return out
}

// CurveBalance is the balance PctCurve samples at index i of n.
func CurveBalance(peak float64, i, n int) float64 {
	return peak * float64(i) / float64(n-1)
}
