package pipeline

import (
	"testing"

	"github.com/theirongolddev/creditsim/internal/model"
)

func summaryRows() []model.Row {
	return []model.Row{
		{Month: 1, StartBalance: 1000, EndBalance: 900, Payment: 100, Interest: 20, Charges: 10},
		{Month: 2, StartBalance: 900, EndBalance: 800, Payment: 120, Interest: 18, Charges: 15},
		{Month: 3, StartBalance: 800, EndBalance: 700, Payment: 80, Interest: 16, Charges: 25},
	}
}

func TestCalculateSummary(t *testing.T) {
	s := CalculateSummary(summaryRows())

	if s.FinalBalance != 700 {
		t.Errorf("FinalBalance = %v, want 700", s.FinalBalance)
	}
	if s.TotalPaid != 300 {
		t.Errorf("TotalPaid = %v, want 300", s.TotalPaid)
	}
	if s.TotalInterest != 54 {
		t.Errorf("TotalInterest = %v, want 54", s.TotalInterest)
	}
	if s.TotalCharges != 50 {
		t.Errorf("TotalCharges = %v, want 50", s.TotalCharges)
	}
}

func TestCalculateSummary_Empty(t *testing.T) {
	if s := CalculateSummary(nil); s != (model.Summary{}) {
		t.Fatalf("CalculateSummary(nil) = %+v, want zero summary", s)
	}
	if s := CalculateSummary([]model.Row{}); s != (model.Summary{}) {
		t.Fatalf("CalculateSummary([]) = %+v, want zero summary", s)
	}
}

func TestPayoffMonth(t *testing.T) {
	rows := summaryRows()
	if _, ok := PayoffMonth(rows); ok {
		t.Fatal("PayoffMonth reported payoff for a run that never reaches zero")
	}

	rows = append(rows,
		model.Row{Month: 4, StartBalance: 700, EndBalance: 0},
		model.Row{Month: 5, StartBalance: 0, Charges: 40, EndBalance: 40},
		model.Row{Month: 6, StartBalance: 40, EndBalance: 0},
	)
	month, ok := PayoffMonth(rows)
	if !ok || month != 4 {
		t.Fatalf("PayoffMonth = %d, %v, want 4, true", month, ok)
	}
}

func TestMaxBalance(t *testing.T) {
	rows := []model.Row{
		{Month: 1, StartBalance: 500, EndBalance: 650},
		{Month: 2, StartBalance: 650, EndBalance: 610},
	}
	if got := MaxBalance(500, rows); got != 650 {
		t.Fatalf("MaxBalance = %v, want 650", got)
	}
	if got := MaxBalance(900, rows); got != 900 {
		t.Fatalf("MaxBalance = %v, want 900 (starting balance)", got)
	}
	if got := MaxBalance(0, nil); got != 0 {
		t.Fatalf("MaxBalance(0, nil) = %v, want 0", got)
	}
}

func TestSeries(t *testing.T) {
	rows := summaryRows()

	balances := BalanceSeries(rows)
	payments := PaymentSeries(rows)
	interest := InterestSeries(rows)
	labels := MonthLabels(rows)

	if len(balances) != 3 || balances[2] != 700 {
		t.Fatalf("BalanceSeries = %v", balances)
	}
	if payments[1] != 120 {
		t.Fatalf("PaymentSeries = %v", payments)
	}
	if interest[0] != 20 {
		t.Fatalf("InterestSeries = %v", interest)
	}
	if labels[0] != "M1" || labels[2] != "M3" {
		t.Fatalf("MonthLabels = %v", labels)
	}
}
