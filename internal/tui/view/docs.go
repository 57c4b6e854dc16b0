package view

import (
	"fmt"
	"strings"

	"dxfolio/internal/catalog"
	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/patrickmn/go-cache"
)

// Documentation header buttons.
const (
	DocBack  = "back"
	DocNext  = "next"
	DocClose = "close"
)

const (
	docHeaderRows = 3
	docFooterRows = 2
	docMaxWidth   = 96
)

const (
	noOutcome = "Detailed outcomes pending final review."
	noContext = "No additional context provided."
)

// DocButtons lays out back, next and close on the right of the first row.
func DocButtons(m *model.Model) *components.ItemBar {
	items := []components.BarItem{
		{ID: DocBack, Label: "< BACK"},
		{ID: DocNext, Label: "NEXT >", Group: 1},
		{ID: DocClose, Label: "X", Group: 2},
	}
	width := 0
	for i, it := range items {
		width += runewidth.StringWidth(it.Label) + 2
		if i > 0 {
			width += runewidth.StringWidth(" │ ")
		}
	}
	bar := components.NewItemBar(0, width, items...)
	bar.X = max(m.Width-width, 0)
	return bar.WithStyles(
		lipgloss.NewStyle(),
		design.ToolButtonStyle.Padding(0, design.SpaceXS),
		design.ToolButtonActiveStyle.Padding(0, design.SpaceXS),
	)
}

// DocViewportSize is the scrollable body of the documentation overlay.
func DocViewportSize(m *model.Model) (int, int) {
	return max(m.Width, 0), max(m.Height-docHeaderRows-docFooterRows, 0)
}

func docTextWidth(width int) int {
	return max(min(width-4, docMaxWidth), 10)
}

// DocContent returns the rendered body for e at the given width, memoized per
// entity, width and theme.
func DocContent(m *model.Model, e catalog.Entity, width int) string {
	key := fmt.Sprintf("%s:%d:%t", e.ID, width, design.IsDark())
	if m.DocCache != nil {
		if v, ok := m.DocCache.Get(key); ok {
			return v.(string)
		}
	}
	out := RenderDocBody(e, width)
	if m.DocCache != nil {
		m.DocCache.Set(key, out, cache.DefaultExpiration)
	}
	return out
}

// RenderDocBody lays out the documentation sections of e.
func RenderDocBody(e catalog.Entity, width int) string {
	tw := docTextWidth(width)
	wrap := func(s string) string { return wordwrap.String(s, tw) }
	section := func(title string) string {
		return design.DocSectionStyle.Render(strings.ToUpper(title))
	}

	var b []string
	b = append(b,
		design.DocKickerStyle.Render(fmt.Sprintf("[ %s · %s ]", e.RefDes, e.Type)),
		design.DocTitleStyle.Render(wrap(e.Title)),
		design.TextSecondaryStyle.Render(wrap(e.Description)),
	)
	if e.Date != "" || e.Location != "" {
		b = append(b, design.DimStyle.Render(strings.Trim(e.Date+" | "+e.Location, " |")))
	}

	b = append(b, "", section("Project Overview"), wrap(e.Description))

	if e.Role != "" || e.Methodology != "" || len(e.Tags) > 0 {
		b = append(b, "", section("Role & Methodology"))
		if e.Role != "" {
			b = append(b, design.DocSubheadStyle.Render("SPECIFIC CONTRIBUTION"), wrap(e.Role))
		}
		if e.Methodology != "" {
			b = append(b, design.DocSubheadStyle.Render("TECHNICAL APPROACH"), wrap(e.Methodology))
		}
		if len(e.Tags) > 0 {
			b = append(b, design.DocSubheadStyle.Render("TOOLS & TECH"), renderTags(e.Tags, tw))
		}
	}

	if e.ImageURL != "" {
		b = append(b, "", section("Visuals"), design.DimStyle.Render("FIG 1.0 - OVERVIEW: ")+e.ImageURL)
	}

	outcome := e.Outcome
	if outcome == "" {
		outcome = noOutcome
	}
	b = append(b, "", section("Results & Impact"), design.DocOutcomeStyle.Render(wordwrap.String(`"`+outcome+`"`, tw-2)))

	context := e.Details
	if context == "" {
		context = noContext
	}
	b = append(b, "", section("Context"), wrap(context))

	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(b, "\n"))
}

// renderTags flows tags into rows no wider than width.
func renderTags(tags []string, width int) string {
	var rows []string
	var row []string
	used := 0
	for _, tag := range tags {
		w := runewidth.StringWidth(tag) + 3
		if used > 0 && used+w > width {
			rows = append(rows, strings.Join(row, ""))
			row, used = nil, 0
		}
		row = append(row, design.DocTagStyle.Render(tag)+" ")
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, ""))
	}
	return strings.Join(rows, "\n")
}

func renderDocumentation(m *model.Model) string {
	cat := m.Catalog()
	e, ok := m.State.Selected(cat)
	if !ok {
		return ""
	}

	kicker := design.DocKickerStyle.Render("DOCUMENTATION LIBRARY")
	buttons := DocButtons(m)
	gap := max(m.Width-lipgloss.Width(kicker)-buttons.Width-1, 1)
	row0 := " " + kicker + strings.Repeat(" ", gap) + buttons.Render()
	row1 := " " + design.DocTitleStyle.Render(e.Title) + design.DimStyle.Render(" // ") + e.RefDes
	rule := design.DimStyle.Render(strings.Repeat("─", max(m.Width, 0)))

	next := cat.Entities[(cat.IndexOf(e.ID)+1)%cat.Len()]
	footer := design.DimStyle.Render(" UP NEXT  ") + design.TextAccentStyle.Render(next.Title) +
		design.DimStyle.Render("   n next · N prev · esc back")

	page := strings.Join([]string{
		row0,
		row1,
		rule,
		m.DocViewport.View(),
		rule,
		footer,
	}, "\n")
	return design.DocStyle.
		Width(m.Width).
		Height(m.Height).
		MaxWidth(m.Width).
		MaxHeight(m.Height).
		Render(page)
}
