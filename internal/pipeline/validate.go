package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/creditsim/internal/model"
)

// MaxMonths caps the run length: 100 years of monthly rows.
const MaxMonths = 1200

// Input errors reported by CheckParams. Adapters show these next to the
// generic "check your inputs" message.
var (
	ErrNoBands         = errors.New("add at least one band")
	ErrMonths          = errors.New("months must be > 0")
	ErrMonthsTooLarge  = fmt.Errorf("months must be <= %d", MaxMonths)
	ErrStartingBalance = errors.New("starting balance must be >= 0")
	ErrNotNumeric      = errors.New("value is not a number")
)

// CheckParams validates parameters before they reach Simulate.
// Bands are expected to have gone through ValidateBands already.
func CheckParams(p model.Params) error {
	if len(p.Bands) == 0 {
		return ErrNoBands
	}
	if p.Months <= 0 {
		return ErrMonths
	}
	if p.Months > MaxMonths {
		return ErrMonthsTooLarge
	}
	if !finite(p.StartingBalance) {
		return fmt.Errorf("starting balance: %w", ErrNotNumeric)
	}
	if p.StartingBalance < 0 {
		return ErrStartingBalance
	}
	if !finite(p.APR) {
		return fmt.Errorf("apr: %w", ErrNotNumeric)
	}
	if !finite(p.MonthlyCharges) {
		return fmt.Errorf("monthly charges: %w", ErrNotNumeric)
	}
	for i, c := range p.MonthlyChargesArray {
		if !finite(c) {
			return fmt.Errorf("charges for month %d: %w", i+1, ErrNotNumeric)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
