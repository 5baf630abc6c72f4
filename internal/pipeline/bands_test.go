package pipeline

import (
	"math"
	"math/rand"
	"testing"

	"github.com/theirongolddev/creditsim/internal/model"
)

var sampleBands = []model.Band{
	{Lower: 0, Pct: 0.00, MinPayment: 0},
	{Lower: 100, Pct: 0.05, MinPayment: 25},
	{Lower: 500, Pct: 0.04, MinPayment: 35},
	{Lower: 1000, Pct: 0.03, MinPayment: 40},
}

func TestPickBand(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		lower   float64
		pct     float64
	}{
		{"zero balance", 0, 0, 0},
		{"exact boundary", 100, 100, 0.05},
		{"between boundaries", 250, 100, 0.05},
		{"at 500", 500, 500, 0.04},
		{"just below 1000", 999, 500, 0.04},
		{"large balance", 5000, 1000, 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := PickBand(sampleBands, tt.balance)
			if b.Lower != tt.lower || b.Pct != tt.pct {
				t.Fatalf("PickBand(%v) = %+v, want lower=%v pct=%v", tt.balance, b, tt.lower, tt.pct)
			}
		})
	}
}

func TestPickBand_SingleBand(t *testing.T) {
	b := PickBand([]model.Band{{Lower: 0, Pct: 0.03, MinPayment: 25}}, 1000)
	if b.Pct != 0.03 {
		t.Fatalf("Pct = %v, want 0.03", b.Pct)
	}
}

func TestPickBand_FallsBackToFirstBand(t *testing.T) {
	bands := []model.Band{
		{Lower: 100, Pct: 0.05, MinPayment: 25},
		{Lower: 500, Pct: 0.04, MinPayment: 35},
	}
	b := PickBand(bands, 50)
	if b.Lower != 100 {
		t.Fatalf("Lower = %v, want 100 (first band)", b.Lower)
	}
}

func TestPickBand_MatchesGreatestLowerBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(6)
		raw := make([]model.Band, n)
		for j := range raw {
			raw[j] = model.Band{Lower: float64(rng.Intn(5000)), Pct: rng.Float64() / 10, MinPayment: float64(rng.Intn(100))}
		}
		bands := ValidateBands(raw)
		balance := rng.Float64() * 6000

		got := PickBand(bands, balance)

		want := bands[0]
		bestLower := math.Inf(-1)
		for _, b := range bands {
			if b.Lower <= balance && b.Lower >= bestLower {
				want = b
				bestLower = b.Lower
			}
		}
		if got.Lower != want.Lower {
			t.Fatalf("case %d: PickBand(%v) lower = %v, want %v (bands %+v)", i, balance, got.Lower, want.Lower, bands)
		}
	}
}

func TestValidateBands_FiltersNaN(t *testing.T) {
	nan := math.NaN()
	bands := []model.Band{
		{Lower: 0, Pct: 0.03, MinPayment: 25},
		{Lower: nan, Pct: 0.04, MinPayment: 30},
		{Lower: 100, Pct: nan, MinPayment: 35},
		{Lower: 200, Pct: 0.05, MinPayment: nan},
		{Lower: 300, Pct: 0.02, MinPayment: 40},
	}

	got := ValidateBands(bands)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Lower != 0 || got[1].Lower != 300 {
		t.Fatalf("lowers = [%v %v], want [0 300]", got[0].Lower, got[1].Lower)
	}
}

func TestValidateBands_SortsAscending(t *testing.T) {
	bands := []model.Band{
		{Lower: 500, Pct: 0.04, MinPayment: 35},
		{Lower: 0, Pct: 0.05, MinPayment: 25},
		{Lower: 1000, Pct: 0.03, MinPayment: 40},
	}

	got := ValidateBands(bands)
	for i, want := range []float64{0, 500, 1000} {
		if got[i].Lower != want {
			t.Fatalf("got[%d].Lower = %v, want %v", i, got[i].Lower, want)
		}
	}
	if bands[0].Lower != 500 {
		t.Fatal("ValidateBands reordered its input")
	}
}

func TestValidateBands_Empty(t *testing.T) {
	if got := ValidateBands(nil); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
	allBad := []model.Band{{Lower: math.NaN()}, {Lower: 100, Pct: math.NaN()}}
	if got := ValidateBands(allBad); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestPctCurve(t *testing.T) {
	got := PctCurve(sampleBands, 1000, 5)
	want := []float64{0, 0.05, 0.04, 0.04, 0.03}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("curve[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPctCurve_ZeroPeakUsesTopBand(t *testing.T) {
	got := PctCurve(sampleBands, 0, 3)
	if got[len(got)-1] != 0.03 {
		t.Fatalf("last = %v, want top band pct 0.03", got[len(got)-1])
	}
}

func TestPctCurve_Degenerate(t *testing.T) {
	if PctCurve(nil, 100, 10) != nil {
		t.Fatal("expected nil for no bands")
	}
	if PctCurve(sampleBands, 100, 1) != nil {
		t.Fatal("expected nil for fewer than two samples")
	}
}
