package pipeline

import (
	"errors"
	"testing"

	"github.com/theirongolddev/creditsim/internal/model"
)

func TestRun_PaysOff(t *testing.T) {
	res, err := Run(model.Params{
		StartingBalance: 100,
		Months:          3,
		Bands:           []model.Band{{Lower: 0, Pct: 0.5, MinPayment: 30}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// 100 -> 50 -> 20 -> 0
	if len(res.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(res.Rows))
	}
	if res.PayoffMonth != 3 {
		t.Fatalf("PayoffMonth = %d, want 3", res.PayoffMonth)
	}
	if res.Summary.TotalPaid != 100 {
		t.Fatalf("TotalPaid = %v, want 100", res.Summary.TotalPaid)
	}
}

func TestRun_NeverPaysOff(t *testing.T) {
	res, err := Run(model.Params{
		StartingBalance: 1000,
		APR:             0.24,
		Months:          2,
		Bands:           []model.Band{{Lower: 0, Pct: 0.01, MinPayment: 0}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.PayoffMonth != 0 {
		t.Fatalf("PayoffMonth = %d, want 0", res.PayoffMonth)
	}
}

func TestRun_RejectsBadInput(t *testing.T) {
	_, err := Run(model.Params{StartingBalance: 100, Months: 12})
	if !errors.Is(err, ErrNoBands) {
		t.Fatalf("Run() error = %v, want ErrNoBands", err)
	}
}
