package pipeline

import "github.com/shopspring/decimal"

// Round2 rounds x to cents, half away from zero.
// Going through the shortest decimal representation keeps values like 1.005
// from rounding down on their binary approximation.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
