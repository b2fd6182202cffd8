package views

import (
	"fmt"

	"pagescope/internal/domain"
)

// IndentUnitsPerLevel is the indentation applied per heading level. The
// terminal renderer maps units to columns via unitsPerColumn.
const IndentUnitsPerLevel = 20

// unitsPerColumn converts indent units into terminal columns.
const unitsPerColumn = 10

// ItemView is the view model for one search result row. It owns the
// enrichment lifecycle of that row: a view starts in OutlineLoading and
// settles into exactly one terminal phase. Views are never reused across
// searches; a new result set gets fresh views.
type ItemView struct {
	Result  domain.SearchResult
	Phase   domain.OutlinePhase
	Outline []domain.Heading
}

// NewItemView creates a view for one result, with its structure section
// in the loading state.
func NewItemView(result domain.SearchResult) *ItemView {
	return &ItemView{
		Result: result,
		Phase:  domain.OutlineLoading,
	}
}

// Resolve moves the view out of the loading state. A nil outline means
// the fetch failed; an outline without headings means the page has none.
// Calls after the first terminal transition are dropped.
func (v *ItemView) Resolve(outline *domain.Outline) {
	if v.Phase != domain.OutlineLoading {
		return
	}

	switch {
	case outline == nil:
		v.Phase = domain.OutlineFailed
	case len(outline.Structure) == 0:
		v.Phase = domain.OutlineEmpty
	default:
		v.Phase = domain.OutlinePopulated
		v.Outline = outline.Structure
	}
}

// OutlineLine is one renderable line of a populated structure section.
// Building lines as data keeps rendering testable without a terminal.
type OutlineLine struct {
	IndentUnits int
	Badge       string
	Text        string
}

// OutlineLines converts headings into renderable lines. Indentation is
// (level-1) * IndentUnitsPerLevel; levels below 1 are clamped to 1.
func OutlineLines(headings []domain.Heading) []OutlineLine {
	lines := make([]OutlineLine, 0, len(headings))
	for _, h := range headings {
		level := h.Level
		if level < 1 {
			level = 1
		}
		lines = append(lines, OutlineLine{
			IndentUnits: (level - 1) * IndentUnitsPerLevel,
			Badge:       fmt.Sprintf("H%d", level),
			Text:        h.Text,
		})
	}
	return lines
}

// IndentColumns is the terminal column offset for this line.
func (l OutlineLine) IndentColumns() int {
	return l.IndentUnits / unitsPerColumn
}
