package views

import (
	"fmt"
	"strings"
	"time"

	"pagescope/internal/domain"
)

// Top-level user-visible messages.
const (
	MsgSearching    = "Searching..."
	MsgNoResults    = "No results found"
	MsgSearchError  = "Error performing search"
	MsgConnectError = "Error connecting to search service"
	MsgIdleHint     = "Type a query and press enter to search"
)

// ViewState contains all the state needed for rendering one frame.
type ViewState struct {
	Width          int
	Height         int
	Phase          domain.SearchPhase
	ConnectFailure bool
	Query          string
	InputView      string
	Items          []*ItemView
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	itemRender *ResultRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showSnippets, showURLs bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		itemRender: NewResultRenderer(styles, showSnippets, showURLs),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("pagescope"))
	content.WriteString("\n")
	content.WriteString(state.InputView)
	content.WriteString("\n\n")

	switch state.Phase {
	case domain.SearchIdle:
		content.WriteString(r.styles.Dim.Render(MsgIdleHint))
	case domain.SearchInFlight:
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		content.WriteString(fmt.Sprintf("%s %s", spinner[frame], r.styles.Dim.Render(MsgSearching)))
	case domain.SearchFailed:
		if state.ConnectFailure {
			content.WriteString(r.styles.StatusError.Render(MsgConnectError))
		} else {
			content.WriteString(r.styles.StatusError.Render(MsgSearchError))
		}
	case domain.SearchPopulated:
		r.renderResults(content, state)
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	content.WriteString("\n\n")
	content.WriteString(r.styles.Help.Render("enter search · ↑/↓ select · ctrl+o outline pager · ctrl+c quit"))

	return r.styles.Main.Render(content.String())
}

// renderResults renders the item list inside the visible viewport.
func (r *Renderer) renderResults(content *strings.Builder, state ViewState) {
	if len(state.Items) == 0 {
		content.WriteString(r.styles.StatusEmpty.Render(MsgNoResults))
		return
	}

	blocks := make([]string, 0, len(state.Items))
	for i, item := range state.Items {
		blocks = append(blocks, r.itemRender.RenderItem(item, i == state.SelectedIndex))
	}

	lines := strings.Split(strings.Join(blocks, "\n\n"), "\n")

	// Clamp the viewport to the rendered line count
	offset := state.ViewportOffset
	if offset > len(lines) {
		offset = len(lines)
	}
	end := len(lines)
	if state.ViewportHeight > 0 && offset+state.ViewportHeight < end {
		end = offset + state.ViewportHeight
	}

	content.WriteString(strings.Join(lines[offset:end], "\n"))

	if end < len(lines) {
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("… %d more lines", len(lines)-end)))
	}
}
