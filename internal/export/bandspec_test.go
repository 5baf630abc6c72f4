package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/creditsim/internal/model"
)

func TestParseBand(t *testing.T) {
	tests := []struct {
		in   string
		want model.Band
	}{
		{"100:0.05:25", model.Band{Lower: 100, Pct: 0.05, MinPayment: 25}},
		{" 500 0.04 35 ", model.Band{Lower: 500, Pct: 0.04, MinPayment: 35}},
		{"1000:0.03", model.Band{Lower: 1000, Pct: 0.03}},
		{"0", model.Band{}},
	}
	for _, tt := range tests {
		got, err := ParseBand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseBand_Errors(t *testing.T) {
	for _, in := range []string{"", "a:b:c", "1:2:3:4", "100:five:25"} {
		_, err := ParseBand(in)
		assert.Error(t, err, in)
	}
}

func TestParseBands_LinesAndCommas(t *testing.T) {
	text := "# lower:pct:min\n0:0:0, 100:0.05:25\n\n500:0.04:35\n"
	got, err := ParseBands(text)
	require.NoError(t, err)
	assert.Equal(t, []model.Band{
		{Lower: 0, Pct: 0, MinPayment: 0},
		{Lower: 100, Pct: 0.05, MinPayment: 25},
		{Lower: 500, Pct: 0.04, MinPayment: 35},
	}, got)
}

func TestFormatBands_InverseOfParse(t *testing.T) {
	bands := ExampleBands()
	got, err := ParseBands(FormatBands(bands))
	require.NoError(t, err)
	assert.Equal(t, bands, got)
	assert.Equal(t, "3000:0.025:50", FormatBand(bands[4]))
}

func TestParseCharges(t *testing.T) {
	got, err := ParseCharges("100,50, 200 0")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 50, 200, 0}, got)

	empty, err := ParseCharges("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseCharges("100,x")
	assert.Error(t, err)
}

func TestExampleDocument(t *testing.T) {
	doc := ExampleDocument()
	assert.Equal(t, 5000.0, doc.StartingBalance)
	assert.Equal(t, 0.24, doc.APR)
	assert.Equal(t, 24, doc.Months)
	assert.Len(t, doc.Bands, 5)
	assert.False(t, doc.AdvancedMode)
}
