package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/creditsim/internal/model"
)

// ParseBand parses one band written as "lower:pct:min". Whitespace may be
// used instead of colons. Missing trailing fields default to 0.
func ParseBand(s string) (model.Band, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ':' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 || len(fields) > 3 {
		return model.Band{}, fmt.Errorf("band %q: want lower:pct:min", s)
	}

	var vals [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return model.Band{}, fmt.Errorf("band %q: %q is not a number", s, f)
		}
		vals[i] = v
	}
	return model.Band{Lower: vals[0], Pct: vals[1], MinPayment: vals[2]}, nil
}

// ParseBands parses a band list, one band per line or comma separated.
// Blank entries and lines starting with # are skipped.
func ParseBands(text string) ([]model.Band, error) {
	var bands []model.Band
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			b, err := ParseBand(part)
			if err != nil {
				return nil, err
			}
			bands = append(bands, b)
		}
	}
	return bands, nil
}

// FormatBands renders bands one per line in the notation ParseBands reads.
func FormatBands(bands []model.Band) string {
	lines := make([]string, len(bands))
	for i, b := range bands {
		lines[i] = FormatBand(b)
	}
	return strings.Join(lines, "\n")
}

// FormatBand renders a single band as "lower:pct:min".
func FormatBand(b model.Band) string {
	return formatFloat(b.Lower) + ":" + formatFloat(b.Pct) + ":" + formatFloat(b.MinPayment)
}

// ParseCharges parses a comma or whitespace separated list of per-month
// charges, "100,50,200,0".
func ParseCharges(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("charge %d: %q is not a number", i+1, f)
		}
		out = append(out, v)
	}
	return out, nil
}
