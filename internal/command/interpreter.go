// Package command is the interpreter behind the portfolio command line. It is
// a pure function of its input line and the catalog: no I/O, no state.
package command

import (
	"fmt"
	"strings"

	"dxfolio/internal/catalog"

	"github.com/sahilm/fuzzy"
)

// ActionKind is the side request a command makes of its caller.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpen
	ActionClear
)

// String returns a human-readable representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionOpen:
		return "Open"
	case ActionClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Action is what the caller should do besides printing the output lines.
type Action struct {
	Kind     ActionKind
	EntityID string
}

// Result is the outcome of interpreting one line.
type Result struct {
	Lines  []string
	Action Action
}

// HelpLines is the fixed usage text printed by `help`.
var HelpLines = []string{
	"Available commands:",
	"  list              - List all projects/components",
	"  open <refDes>     - Open project details",
	"  resume            - Display summary",
	"  contact           - Show contact info",
	"  clear             - Clear console",
}

// Verb returns the lower-cased first word of a line, or "" for a blank line.
func Verb(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Interpret runs one command line against the catalog. The verb is matched
// case-insensitively; arguments keep their case.
func Interpret(line string, cat *catalog.Catalog) Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "help":
		return Result{Lines: append([]string(nil), HelpLines...)}
	case "list":
		return Result{Lines: listLines(cat)}
	case "open":
		return open(args, cat)
	case "resume":
		return Result{Lines: append([]string(nil), cat.Profile.Resume...)}
	case "contact":
		return Result{Lines: append([]string(nil), cat.Profile.Contact...)}
	case "clear":
		return Result{Action: Action{Kind: ActionClear}}
	default:
		return Result{Lines: []string{fmt.Sprintf("Command '%s' not recognized.", verb)}}
	}
}

// ListLine formats one entity the way `list` prints it.
func ListLine(e catalog.Entity) string {
	return fmt.Sprintf("  [%s] %-12s : %s", e.Type, e.RefDes, e.Title)
}

func listLines(cat *catalog.Catalog) []string {
	lines := make([]string, 0, cat.Len())
	for _, e := range cat.Entities {
		lines = append(lines, ListLine(e))
	}
	return lines
}

func open(args []string, cat *catalog.Catalog) Result {
	if len(args) == 0 {
		return Result{Lines: []string{"Usage: open <refDes>"}}
	}
	ref := args[0]
	if e, ok := cat.ByRefDes(ref); ok {
		return Result{
			Lines:  []string{fmt.Sprintf("Opening design files for: %s...", e.Title)},
			Action: Action{Kind: ActionOpen, EntityID: e.ID},
		}
	}

	lines := []string{fmt.Sprintf("Error 404: Component '%s' not found.", ref)}
	if suggestion, ok := Suggest(ref, cat); ok {
		lines = append(lines, fmt.Sprintf("Did you mean '%s'?", suggestion))
	}
	return Result{Lines: lines}
}

// Suggest returns the closest reference designator to ref by fuzzy match.
func Suggest(ref string, cat *catalog.Catalog) (string, bool) {
	refs := cat.RefDesList()
	matches := fuzzy.Find(ref, refs)
	if len(matches) == 0 {
		return "", false
	}
	return refs[matches[0].Index], true
}
