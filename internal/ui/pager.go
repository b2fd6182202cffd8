package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"pagescope/internal/domain"
	"pagescope/internal/ui/views"
)

// PagerOps shows an item's outline in a full-screen ov pager.
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program reference
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowOutline pages the item's outline as plain text.
func (p *PagerOps) ShowOutline(item *views.ItemView) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(outlineText(item))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't write pager content to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// outlineText renders an item's outline as plain text for the pager.
func outlineText(item *views.ItemView) string {
	var b strings.Builder

	b.WriteString(item.Result.Title)
	b.WriteString("\n")
	b.WriteString(item.Result.URL)
	b.WriteString("\n\n")

	switch item.Phase {
	case domain.OutlineLoading:
		b.WriteString(views.MsgLoadingStructure)
	case domain.OutlineFailed:
		b.WriteString(views.MsgStructureFailed)
	case domain.OutlineEmpty:
		b.WriteString(views.MsgNoHeadings)
	case domain.OutlinePopulated:
		for _, line := range views.OutlineLines(item.Outline) {
			b.WriteString(strings.Repeat(" ", line.IndentColumns()))
			b.WriteString(line.Badge)
			b.WriteString(" ")
			b.WriteString(line.Text)
			b.WriteString("\n")
		}
	}

	return b.String()
}
