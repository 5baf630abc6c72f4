package tui

import (
	"os"
	"path/filepath"

	"github.com/theirongolddev/creditsim/internal/export"

	"go.uber.org/zap"
)

// File names written by the export keys.
const (
	ConfigFileName = "credit_config.json"
	CSVFileName    = "credit_simulation.csv"
)

// exportDocument writes the current inputs as a configuration document.
func (a *App) exportDocument() {
	path := filepath.Join(a.exportDir, ConfigFileName)
	doc := export.NewDocument(a.params, a.advanced, a.storage)
	if err := export.WriteFile(path, doc); err != nil {
		a.setFileError("export config", err)
		return
	}
	a.isError = false
	a.status = "Exported inputs to " + path
	a.logger.Info("exported config", zap.String("path", path))
}

// exportCSV writes the last successful run's schedule.
func (a *App) exportCSV() {
	if !a.ran {
		a.isError = true
		a.status = "Nothing to write yet. Run a simulation first."
		return
	}
	path := filepath.Join(a.exportDir, CSVFileName)
	f, err := os.Create(path)
	if err != nil {
		a.setFileError("write csv", err)
		return
	}
	werr := export.WriteCSV(f, a.result.Rows)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		a.setFileError("write csv", werr)
		return
	}
	a.isError = false
	a.status = "Wrote schedule to " + path
	a.logger.Info("wrote csv", zap.String("path", path), zap.Int("rows", len(a.result.Rows)))
}

func (a *App) setFileError(op string, err error) {
	a.isError = true
	a.status = "Could not " + op + ": " + err.Error()
	a.logger.Warn(op+" failed", zap.Error(err))
}
