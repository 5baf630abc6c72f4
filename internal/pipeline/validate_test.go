package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/creditsim/internal/model"
)

func TestCheckParams(t *testing.T) {
	valid := model.Params{StartingBalance: 1000, APR: 0.2, Months: 12, Bands: simpleBands}
	if err := CheckParams(valid); err != nil {
		t.Fatalf("CheckParams(valid) = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *model.Params)
		want   error
	}{
		{"no bands", func(p *model.Params) { p.Bands = nil }, ErrNoBands},
		{"zero months", func(p *model.Params) { p.Months = 0 }, ErrMonths},
		{"months over cap", func(p *model.Params) { p.Months = MaxMonths + 1 }, ErrMonthsTooLarge},
		{"huge months", func(p *model.Params) { p.Months = 1 << 50 }, ErrMonthsTooLarge},
		{"negative balance", func(p *model.Params) { p.StartingBalance = -1 }, ErrStartingBalance},
		{"nan balance", func(p *model.Params) { p.StartingBalance = math.NaN() }, ErrNotNumeric},
		{"inf apr", func(p *model.Params) { p.APR = math.Inf(1) }, ErrNotNumeric},
		{"nan charge", func(p *model.Params) { p.MonthlyChargesArray = []float64{1, math.NaN()} }, ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := CheckParams(p); !errors.Is(err, tt.want) {
				t.Fatalf("CheckParams = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckParams_ReportsBandsFirst(t *testing.T) {
	err := CheckParams(model.Params{StartingBalance: -5, Months: 0})
	if !errors.Is(err, ErrNoBands) {
		t.Fatalf("CheckParams = %v, want ErrNoBands", err)
	}
}

func TestCheckParams_AcceptsMaxMonths(t *testing.T) {
	p := model.Params{StartingBalance: 1000, APR: 0.2, Months: MaxMonths, Bands: simpleBands}
	if err := CheckParams(p); err != nil {
		t.Fatalf("CheckParams(MaxMonths) = %v", err)
	}
}

func TestRun_RejectsHugeMonthsWithoutSimulating(t *testing.T) {
	_, err := Run(model.Params{StartingBalance: 1000, APR: 0.2, Months: 1e15, Bands: simpleBands})
	if !errors.Is(err, ErrMonthsTooLarge) {
		t.Fatalf("Run = %v, want ErrMonthsTooLarge", err)
	}
}
