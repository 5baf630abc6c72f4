package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/theirongolddev/creditsim/internal/charges"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/pipeline"
)

// DocumentVersion is written into every exported document.
const DocumentVersion = "1.0"

// ErrInvalidDocument is returned when a document lacks a required field.
var ErrInvalidDocument = errors.New("invalid config format")

// Document is the JSON configuration format: everything needed to reproduce
// a run, and nothing computed from it.
type Document struct {
	Version               string          `json:"version"`
	StartingBalance       float64         `json:"startingBalance"`
	APR                   float64         `json:"apr"`
	Months                int             `json:"months"`
	MonthlyCharges        float64         `json:"monthlyCharges"`
	AdvancedMode          bool            `json:"advancedMode"`
	MonthlyChargesStorage charges.Storage `json:"monthlyChargesStorage"`
	Bands                 []model.Band    `json:"bands"`
}

// NewDocument captures p as a document. In advanced mode the storage is
// saved so that overrides beyond the current month count are kept.
func NewDocument(p model.Params, advanced bool, storage charges.Storage) Document {
	d := Document{
		Version:               DocumentVersion,
		StartingBalance:       p.StartingBalance,
		APR:                   p.APR,
		Months:                p.Months,
		MonthlyCharges:        p.MonthlyCharges,
		AdvancedMode:          advanced,
		MonthlyChargesStorage: charges.New(),
		Bands:                 make([]model.Band, len(p.Bands)),
	}
	copy(d.Bands, p.Bands)
	if advanced {
		if storage == nil {
			storage = charges.New()
			for i, v := range p.MonthlyChargesArray {
				storage.Set(i+1, v)
			}
		}
		d.MonthlyChargesStorage = storage.Clone()
	}
	return d
}

// Params converts the document into engine parameters.
func (d Document) Params() model.Params {
	p := model.Params{
		StartingBalance: d.StartingBalance,
		APR:             d.APR,
		Months:          d.Months,
		MonthlyCharges:  d.MonthlyCharges,
		Bands:           pipeline.ValidateBands(d.Bands),
	}
	if d.AdvancedMode && d.MonthlyChargesStorage != nil {
		p.MonthlyChargesArray = d.MonthlyChargesStorage.Array(d.Months, d.MonthlyCharges)
	}
	return p
}

// Encode writes d as indented JSON.
func (d Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

type rawDocument struct {
	Version               string            `json:"version"`
	StartingBalance       *float64          `json:"startingBalance"`
	APR                   *float64          `json:"apr"`
	Months                *float64          `json:"months"`
	MonthlyCharges        *float64          `json:"monthlyCharges"`
	AdvancedMode          bool              `json:"advancedMode"`
	MonthlyChargesStorage charges.Storage   `json:"monthlyChargesStorage"`
	Bands                 *[]map[string]any `json:"bands"`
}

// Decode reads a document. startingBalance, apr and months must be numbers
// and bands must be an array; band fields that are missing read as 0 and
// fields that are not numbers read as NaN, so ValidateBands drops the band.
func Decode(r io.Reader) (Document, error) {
	var raw rawDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if raw.StartingBalance == nil || raw.APR == nil || raw.Months == nil || raw.Bands == nil {
		return Document{}, ErrInvalidDocument
	}
	// the run-length cap is CheckParams' job; this only keeps the int conversion exact
	if m := *raw.Months; math.IsNaN(m) || math.Abs(m) > math.MaxInt32 {
		return Document{}, fmt.Errorf("%w: months %g out of range", ErrInvalidDocument, m)
	}

	d := Document{
		Version:               raw.Version,
		StartingBalance:       *raw.StartingBalance,
		APR:                   *raw.APR,
		Months:                int(math.Trunc(*raw.Months)),
		AdvancedMode:          raw.AdvancedMode,
		MonthlyChargesStorage: raw.MonthlyChargesStorage,
	}
	if d.Version == "" {
		d.Version = DocumentVersion
	}
	if raw.MonthlyCharges != nil {
		d.MonthlyCharges = *raw.MonthlyCharges
	}
	if d.MonthlyChargesStorage == nil || !d.AdvancedMode {
		d.MonthlyChargesStorage = charges.New()
	}

	d.Bands = make([]model.Band, 0, len(*raw.Bands))
	for _, b := range *raw.Bands {
		d.Bands = append(d.Bands, model.Band{
			Lower:      bandField(b, "lower"),
			Pct:        bandField(b, "pct"),
			MinPayment: bandField(b, "minPayment"),
		})
	}
	return d, nil
}

func bandField(b map[string]any, key string) float64 {
	v, ok := b[key]
	if !ok || v == nil {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return math.NaN()
	}
	return f
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	d, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return d, nil
}

// WriteFile writes d to path as indented JSON.
func WriteFile(path string, d Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := d.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
