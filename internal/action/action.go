// Package action maps the named actions emitted by the menu bar and toolbar
// onto log lines and side effects.
//
// The set of actions is closed: Parse turns a name into a Kind, and every Kind
// has exactly one handler in the table. Names outside the set map to
// KindUnknown, whose handler logs a generic acknowledgement.
package action

import (
	"fmt"
	"time"

	"dxfolio/internal/effect"
)

// Kind identifies a system action.
type Kind int

const (
	KindUnknown Kind = iota
	KindSaveResume
	KindPrint
	KindView
	KindFile
	KindSimulation
	KindPlace
	KindSettings
	KindBOM
)

// AllKinds lists every kind, KindUnknown included.
var AllKinds = []Kind{
	KindUnknown,
	KindSaveResume,
	KindPrint,
	KindView,
	KindFile,
	KindSimulation,
	KindPlace,
	KindSettings,
	KindBOM,
}

var kindNames = map[Kind]string{
	KindUnknown:    "Unknown",
	KindSaveResume: "Save Resume",
	KindPrint:      "Print",
	KindView:       "View",
	KindFile:       "File",
	KindSimulation: "Simulation",
	KindPlace:      "Place",
	KindSettings:   "Settings",
	KindBOM:        "BOM",
}

// String returns the canonical action name.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Unknown"
}

var byName = map[string]Kind{
	"Save Resume": KindSaveResume,
	"Print":       KindPrint,
	"Print Page":  KindPrint,
	"View":        KindView,
	"File":        KindFile,
	"Simulation":  KindSimulation,
	"Place":       KindPlace,
	"Settings":    KindSettings,
	"BOM":         KindBOM,
}

// Parse maps an action name to its kind. Names are matched exactly.
func Parse(name string) Kind {
	if k, ok := byName[name]; ok {
		return k
	}
	return KindUnknown
}

// SimulationKey is the schedule key shared by simulation runs, so a new run
// supersedes a pending one.
const SimulationKey = "simulation"

// PrintDelay defers the print job so the log line renders first.
const PrintDelay = 500 * time.Millisecond

// DefaultSimulationSteps are the deferred lines of a simulation run.
var DefaultSimulationSteps = []effect.Step{
	{Delay: 600 * time.Millisecond, Line: "Analyzing Career Trajectory... [OK]"},
	{Delay: 1200 * time.Millisecond, Line: "Checking Skillset Integrity... [100%]"},
	{Delay: 1800 * time.Millisecond, Line: "Simulation Complete: Candidate is ready for hire."},
}

// Context is everything a handler may read. Handlers never see session state
// beyond it.
type Context struct {
	Name            string
	LightMode       bool
	ComponentCount  int
	SiteURL         string
	ContactEmail    string
	ResumePath      string
	ResumeFile      string
	SimulationSteps []effect.Step
}

// Outcome is what a handler produced: lines to log immediately, effects to
// run, and whether the display theme flips.
type Outcome struct {
	Lines       []string
	Effects     []effect.Effect
	ToggleTheme bool
}

// Handler produces the outcome of one action.
type Handler func(Context) Outcome

var handlers = map[Kind]Handler{
	KindUnknown:    handleUnknown,
	KindSaveResume: handleSaveResume,
	KindPrint:      handlePrint,
	KindView:       handleView,
	KindFile:       handleFile,
	KindSimulation: handleSimulation,
	KindPlace:      handlePlace,
	KindSettings:   handleSettings,
	KindBOM:        handleBOM,
}

// HandlerFor returns the handler registered for k.
func HandlerFor(k Kind) (Handler, bool) {
	h, ok := handlers[k]
	return h, ok
}

// Dispatch parses ctx.Name and runs its handler.
func Dispatch(ctx Context) Outcome {
	h, ok := HandlerFor(Parse(ctx.Name))
	if !ok {
		h = handleUnknown
	}
	return h(ctx)
}

func handleUnknown(ctx Context) Outcome {
	return Outcome{Lines: []string{fmt.Sprintf("Command '%s' selected.", ctx.Name)}}
}

func handleSaveResume(ctx Context) Outcome {
	if ctx.ResumePath == "" {
		return Outcome{Lines: []string{
			"Initiating Resume Download...",
			"[ERROR] Download unavailable: no resume file configured (set resumePath).",
		}}
	}
	return Outcome{
		Lines: []string{
			"Initiating Resume Download...",
			fmt.Sprintf("Download started: %s", ctx.ResumeFile),
		},
		Effects: []effect.Effect{effect.Download{Source: ctx.ResumePath, Name: ctx.ResumeFile}},
	}
}

func handlePrint(Context) Outcome {
	return Outcome{
		Lines:   []string{"Sending job to printer..."},
		Effects: []effect.Effect{effect.Print{Delay: PrintDelay}},
	}
}

func handleView(ctx Context) Outcome {
	light := !ctx.LightMode
	line := "Display Mode: Dark"
	if light {
		line = "Display Mode: Light"
	}
	return Outcome{
		Lines:       []string{line},
		Effects:     []effect.Effect{effect.Theme{Light: light}},
		ToggleTheme: true,
	}
}

func handleFile(ctx Context) Outcome {
	return Outcome{
		Lines:   []string{"Website URL copied to clipboard."},
		Effects: []effect.Effect{effect.Clipboard{Text: ctx.SiteURL}},
	}
}

func handleSimulation(ctx Context) Outcome {
	steps := ctx.SimulationSteps
	if len(steps) == 0 {
		steps = DefaultSimulationSteps
	}
	return Outcome{
		Lines: []string{"Initializing Logic Simulation..."},
		Effects: []effect.Effect{effect.Schedule{
			Key:   SimulationKey,
			Steps: append([]effect.Step(nil), steps...),
		}},
	}
}

func handlePlace(ctx Context) Outcome {
	return Outcome{
		Lines:   []string{"Contact Email copied to clipboard."},
		Effects: []effect.Effect{effect.Clipboard{Text: ctx.ContactEmail}},
	}
}

func handleSettings(Context) Outcome {
	return Outcome{Lines: []string{"Opening System Preferences... (Access Denied: Read-Only Mode)"}}
}

func handleBOM(ctx Context) Outcome {
	return Outcome{Lines: []string{
		"Generating Bill of Materials...",
		fmt.Sprintf("Total Components: %d", ctx.ComponentCount),
		"Export complete.",
	}}
}
