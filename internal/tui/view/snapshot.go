package view

import (
	"strings"

	"dxfolio/internal/catalog"
	"dxfolio/internal/command"
	"dxfolio/internal/session"
)

// Snapshot sizes for printing, in cells.
const (
	SnapshotWidth  = 132
	SnapshotHeight = 48
)

// Snapshot renders the sheet as plain text for printing. The sheet is fitted
// to the page so the output does not depend on the window.
func Snapshot(cat *catalog.Catalog, s session.State) string {
	cw, ch := cat.Extent()
	s.Viewport = s.Viewport.Fit(cw, ch, SnapshotWidth*CellW, SnapshotHeight*CellH)

	var b strings.Builder
	b.WriteString(drawSheet(cat, s, SnapshotWidth, SnapshotHeight).Plain())
	b.WriteString("\n\nBILL OF MATERIALS\n")
	for _, e := range cat.Entities {
		b.WriteString(command.ListLine(e))
		b.WriteByte('\n')
	}
	for _, p := range cat.Passives {
		b.WriteString(command.ListLine(catalog.Entity{RefDes: p.RefDes, Type: p.Type, Title: p.Value}))
		b.WriteByte('\n')
	}
	b.WriteString("\n" + cat.Profile.Name + " | " + cat.Profile.Headline + "\n")
	return b.String()
}
