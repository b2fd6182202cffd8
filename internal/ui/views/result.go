package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pagescope/internal/domain"
)

// User-visible structure section messages. Static text only: raw error
// detail never reaches the rendered output.
const (
	MsgLoadingStructure = "Loading page structure..."
	MsgNoHeadings       = "No headings found"
	MsgStructureFailed  = "Could not load page structure"
)

// ResultRenderer handles rendering of result items
type ResultRenderer struct {
	styles       *Styles
	showSnippets bool
	showURLs     bool
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles, showSnippets, showURLs bool) *ResultRenderer {
	return &ResultRenderer{
		styles:       styles,
		showSnippets: showSnippets,
		showURLs:     showURLs,
	}
}

// RenderItem renders one result row: title, URL, snippet, and the
// structure section for the item's current phase.
func (r *ResultRenderer) RenderItem(view *ItemView, isSelected bool) string {
	if view == nil {
		return ""
	}

	var lines []string

	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	titleStyle := r.styles.ResultTitle
	if isSelected {
		titleStyle = titleStyle.Background(lipgloss.Color("238"))
	}
	lines = append(lines, cursor+titleStyle.Render(view.Result.Title))

	if r.showURLs {
		lines = append(lines, "  "+r.styles.ResultURL.Render(view.Result.URL))
	}
	if r.showSnippets && view.Result.Snippet != "" {
		lines = append(lines, "  "+r.styles.Snippet.Render(view.Result.Snippet))
	}

	lines = append(lines, r.renderStructure(view)...)

	return strings.Join(lines, "\n")
}

// renderStructure renders the structure section for the item's phase.
func (r *ResultRenderer) renderStructure(view *ItemView) []string {
	switch view.Phase {
	case domain.OutlineLoading:
		return []string{"  " + r.styles.StatusLoading.Render(MsgLoadingStructure)}
	case domain.OutlineFailed:
		return []string{"  " + r.styles.StatusError.Render(MsgStructureFailed)}
	case domain.OutlineEmpty:
		return []string{"  " + r.styles.StatusEmpty.Render(MsgNoHeadings)}
	}

	outlineLines := OutlineLines(view.Outline)
	rendered := make([]string, 0, len(outlineLines))
	for _, line := range outlineLines {
		indent := strings.Repeat(" ", line.IndentColumns())
		rendered = append(rendered,
			"  "+indent+r.styles.LevelBadge.Render(line.Badge)+" "+r.styles.HeadingText.Render(line.Text))
	}
	return rendered
}
