// Package export converts simulation inputs and results to and from the
// file formats creditsim reads and writes: CSV ledgers, JSON configuration
// documents and the compact band notation used on the command line.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theirongolddev/creditsim/internal/model"
)

// CSVHeader is the first line of every exported ledger.
var CSVHeader = []string{
	"month", "start_balance", "interest", "charges",
	"payment", "end_balance", "pct", "min_payment",
}

// WriteCSV writes rows as a CSV ledger with a header line.
func WriteCSV(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Month),
			formatFloat(r.StartBalance),
			formatFloat(r.Interest),
			formatFloat(r.Charges),
			formatFloat(r.Payment),
			formatFloat(r.EndBalance),
			formatFloat(r.Pct),
			formatFloat(r.MinPayment),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row %d: %w", r.Month, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV returns the ledger as a string.
func ToCSV(rows []model.Row) string {
	var b strings.Builder
	_ = WriteCSV(&b, rows)
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
