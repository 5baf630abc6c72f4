// Package tui provides the interactive Bubble Tea dashboard for creditsim.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/creditsim/internal/charges"
	"github.com/theirongolddev/creditsim/internal/cli"
	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/observability"
	"github.com/theirongolddev/creditsim/internal/pipeline"
	"github.com/theirongolddev/creditsim/internal/tui/components"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

const (
	tabSchedule = iota
	tabCharts
	tabBands
	tabCharges
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options configures a new App.
type Options struct {
	Params    model.Params
	Advanced  bool
	Storage   charges.Storage
	Presets   map[string][]model.Band
	ExportDir string
	NeedSetup bool
	Metrics   *observability.Metrics
	Logger    *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs. Bands are kept as entered; ValidateBands runs on every simulation.
	params   model.Params
	advanced bool
	storage  charges.Storage
	presets  map[string][]model.Band

	// Last run
	result  model.Result
	ran     bool
	status  string
	isError bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	schedule viewport.Model
	grid     gridState

	// Inputs editor (huh form)
	inputsForm *huh.Form
	inputVals  *inputValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	exportDir string
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewApp creates a new TUI app model and runs the first simulation.
func NewApp(opts Options) App {
	if opts.Storage == nil {
		opts.Storage = charges.New()
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	a := App{
		params:    opts.Params,
		advanced:  opts.Advanced,
		storage:   opts.Storage,
		presets:   opts.Presets,
		needSetup: opts.NeedSetup,
		schedule:  viewport.New(0, 0),
		grid:      newGridState(),
		exportDir: opts.ExportDir,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
	}
	a.simulate()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// currentParams returns the engine parameters for the current inputs.
func (a App) currentParams() model.Params {
	p := a.params
	p.Bands = pipeline.ValidateBands(a.params.Bands)
	p.MonthlyChargesArray = nil
	if a.advanced {
		p.MonthlyChargesArray = a.storage.Array(p.Months, p.MonthlyCharges)
	}
	return p
}

// simulate re-runs the engine on the current inputs. On bad input the
// previous result stays on screen and the status bar shows the reason.
func (a *App) simulate() {
	start := time.Now()
	p := a.currentParams()

	res, err := pipeline.Run(p)
	if err != nil {
		a.isError = true
		a.status = "Error running simulation (check inputs). " + inputDetail(err)
		a.logger.Debug("simulation rejected", zap.Error(err))
		return
	}
	if a.metrics != nil {
		a.metrics.RecordSimulation("tui", len(res.Rows), time.Since(start))
	}

	a.result = res
	a.ran = true
	a.isError = false
	a.status = fmt.Sprintf("Simulated %d month(s). Final balance: %s | Total paid: %s | Total interest: %s",
		len(res.Rows),
		cli.FormatMoney(res.Summary.FinalBalance),
		cli.FormatMoney(res.Summary.TotalPaid),
		cli.FormatMoney(res.Summary.TotalInterest))
	a.refreshSchedule()
	a.grid.clamp(a.params.Months)
}

func inputDetail(err error) string {
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return err.Error()
}

// resetExample loads the example scenario and clears per-month overrides.
func (a *App) resetExample() {
	a.params = export.ExampleDocument().Params()
	a.advanced = false
	a.storage.Clear()
	a.simulate()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeSchedule()
		if a.inputsForm != nil {
			a.inputsForm = a.inputsForm.WithWidth(a.contentWidth()).WithHeight(msg.Height)
		}
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.needSetup && a.setupForm == nil {
			return a.startSetup()
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.inputsForm != nil || a.setupForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if a.activeTab == tabSchedule {
				var cmd tea.Cmd
				a.schedule, cmd = a.schedule.Update(msg)
				return a, cmd
			}
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Forms intercept all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.inputsForm != nil {
			return a.updateInputsForm(msg)
		}

		// Charges grid text input
		if a.activeTab == tabCharges && a.grid.editing {
			return a.updateGridInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "i":
			return a.startInputs()
		case "r":
			a.resetExample()
			return a, nil
		case "a":
			a.advanced = !a.advanced
			a.simulate()
			return a, nil
		case "e":
			a.exportDocument()
			return a, nil
		case "w":
			a.exportCSV()
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabSchedule:
			var cmd tea.Cmd
			a.schedule, cmd = a.schedule.Update(msg)
			return a, cmd
		case tabCharges:
			return a.updateGridKeys(msg)
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.inputsForm != nil {
		return a.updateInputsForm(msg)
	}
	if a.grid.editing {
		var cmd tea.Cmd
		a.grid.input, cmd = a.grid.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) headerHeight() int { return 2 }
func (a App) footerHeight() int { return 1 }

func (a App) contentHeight() int {
	h := a.height - a.headerHeight() - a.footerHeight()
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.inputsForm != nil {
		return a.viewInputs()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}
