package pipeline

import (
	"fmt"

	"github.com/theirongolddev/creditsim/internal/model"
)

// Run checks p, simulates it and summarizes the ledger.
func Run(p model.Params) (model.Result, error) {
	if err := CheckParams(p); err != nil {
		return model.Result{}, fmt.Errorf("checking inputs: %w", err)
	}

	rows := Simulate(p)
	res := model.Result{
		Rows:    rows,
		Summary: CalculateSummary(rows),
	}
	if m, ok := PayoffMonth(rows); ok {
		res.PayoffMonth = m
	}
	return res, nil
}
