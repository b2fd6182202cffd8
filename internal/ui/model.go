package ui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"pagescope/internal/config"
	"pagescope/internal/domain"
	"pagescope/internal/eventbus"
	"pagescope/internal/ui/views"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg drives the spinner animation
type tickMsg time.Time

// submitInitialMsg triggers the query passed on the command line
type submitInitialMsg struct{}

// pagerClosedMsg contains the result of an outline pager command
type pagerClosedMsg struct {
	err error
}

// Model represents the UI state. It owns the query lifecycle: the result
// list always mirrors the most recently adopted search response, and each
// item view settles its own enrichment state independently.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	input    textinput.Model
	renderer *views.Renderer
	pager    *PagerOps

	// Results surface. currentID is the render generation: outline
	// completions carrying any other id belong to discarded views and
	// are dropped.
	phase          domain.SearchPhase
	connectFailure bool
	query          string
	currentID      uuid.UUID
	items          []*views.ItemView
	selected       int

	viewportOffset int
	viewportHeight int
	width          int
	height         int

	statusMessage string
	initialQuery  string
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, initialQuery string) *Model {
	input := textinput.New()
	input.Prompt = "Search: "
	input.Placeholder = "query"
	input.Focus()

	return &Model{
		bus:            bus,
		config:         cfg,
		input:          input,
		renderer:       views.NewRenderer(cfg.UISettings.ShowSnippets, cfg.UISettings.ShowURLs),
		pager:          NewPagerOps(nil),
		phase:          domain.SearchIdle,
		viewportHeight: 20, // Will be updated on first WindowSizeMsg
		initialQuery:   initialQuery,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.tick()}
	if m.initialQuery != "" {
		cmds = append(cmds, func() tea.Msg { return submitInitialMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tickMsg:
		return m, m.tick()

	case submitInitialMsg:
		m.input.SetValue(m.initialQuery)
		m.submit()
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Outline pager failed: %v", msg.err)
			m.statusMessage = "Could not open pager"
		}
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.input.Value() != "" {
			m.input.SetValue("")
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		m.submit()
		return m, nil

	case "up":
		m.moveSelection(-1)
		return m, nil

	case "down":
		m.moveSelection(1)
		return m, nil

	case "pgup":
		m.viewportOffset -= m.viewportHeight
		if m.viewportOffset < 0 {
			m.viewportOffset = 0
		}
		return m, nil

	case "pgdown":
		m.viewportOffset += m.viewportHeight
		return m, nil

	case "ctrl+o":
		return m, m.openPager()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a new search for the trimmed input text. An empty query
// clears the surface without issuing any request. No in-flight request is
// cancelled: when submits overlap, whichever response arrives last wins.
func (m *Model) submit() {
	m.statusMessage = ""

	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.phase = domain.SearchIdle
		m.query = ""
		m.clearSurface()
		return
	}

	id := uuid.New()
	m.phase = domain.SearchInFlight
	m.query = query
	m.clearSurface()

	log.Printf("Submitting search %s: %q", id, query)
	m.bus.Publish(eventbus.SearchRequestedEvent{QueryID: id, Query: query})
}

// clearSurface discards the current item views. Outline fetches spawned
// for them may still complete; their events no longer match currentID and
// get dropped in handleEvent.
func (m *Model) clearSurface() {
	m.items = nil
	m.selected = 0
	m.viewportOffset = 0
}

// handleEvent processes domain events forwarded from the bus.
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch event := event.(type) {
	case eventbus.SearchCompletedEvent:
		m.adoptResults(event)

	case eventbus.SearchFailedEvent:
		m.phase = domain.SearchFailed
		m.connectFailure = event.Connect
		m.currentID = event.QueryID
		m.clearSurface()

	case eventbus.OutlineFetchedEvent:
		if event.QueryID != m.currentID {
			// Completion for views that no longer exist
			return
		}
		if event.Index < 0 || event.Index >= len(m.items) {
			return
		}
		m.items[event.Index].Resolve(event.Outline)

	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", event.Message, event.Err)
		m.statusMessage = event.Message
	}
}

// adoptResults replaces the surface with fresh item views, one per result
// in gateway order. The skeleton list is complete before any enrichment
// lands; each view then resolves on its own.
func (m *Model) adoptResults(event eventbus.SearchCompletedEvent) {
	m.phase = domain.SearchPopulated
	m.connectFailure = false
	m.currentID = event.QueryID
	m.query = event.Query
	m.clearSurface()

	m.items = make([]*views.ItemView, 0, len(event.Results))
	for _, result := range event.Results {
		m.items = append(m.items, views.NewItemView(result))
	}
}

// moveSelection changes the selected result
func (m *Model) moveSelection(delta int) {
	if m.phase != domain.SearchPopulated || len(m.items) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.items) {
		m.selected = len(m.items) - 1
	}
}

// openPager shows the selected item's outline in a full-screen pager.
func (m *Model) openPager() tea.Cmd {
	if m.phase != domain.SearchPopulated || m.selected >= len(m.items) {
		return nil
	}
	item := m.items[m.selected]
	return func() tea.Msg {
		return pagerClosedMsg{err: m.pager.ShowOutline(item)}
	}
}

// updateViewportHeight recomputes the lines available for the result list
func (m *Model) updateViewportHeight() {
	// Title, input, spacing, status and help lines surround the list
	chrome := 10
	m.viewportHeight = m.height - chrome
	if m.viewportHeight < 5 {
		m.viewportHeight = 5
	}
}

// tick re-arms the animation timer
func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Phase:          m.phase,
		ConnectFailure: m.connectFailure,
		Query:          m.query,
		InputView:      m.input.View(),
		Items:          m.items,
		SelectedIndex:  m.selected,
		ViewportOffset: m.viewportOffset,
		ViewportHeight: m.viewportHeight,
		StatusMessage:  m.statusMessage,
	})
}
