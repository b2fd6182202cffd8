package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagescope/internal/domain"
)

func TestOutlineLinesIndentUnits(t *testing.T) {
	t.Parallel()

	// Indentation of a heading at level L is (L-1) * 20 units
	for level := 1; level <= 6; level++ {
		lines := OutlineLines([]domain.Heading{{Level: level, Text: "x"}})
		require.Len(t, lines, 1)
		assert.Equal(t, (level-1)*20, lines[0].IndentUnits, "level %d", level)
	}
}

func TestOutlineLinesBadgeAndOrder(t *testing.T) {
	t.Parallel()

	lines := OutlineLines([]domain.Heading{
		{Level: 2, Text: "Setup"},
		{Level: 1, Text: "Intro"},
	})
	require.Len(t, lines, 2)

	// Document order is preserved even when levels are not sorted
	assert.Equal(t, "H2", lines[0].Badge)
	assert.Equal(t, "Setup", lines[0].Text)
	assert.Equal(t, "H1", lines[1].Badge)
	assert.Equal(t, "Intro", lines[1].Text)
}

func TestOutlineLinesClampsBadLevels(t *testing.T) {
	t.Parallel()

	lines := OutlineLines([]domain.Heading{{Level: 0, Text: "weird"}})
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].IndentUnits)
	assert.Equal(t, "H1", lines[0].Badge)
}

func TestOutlineLineIndentColumns(t *testing.T) {
	t.Parallel()

	lines := OutlineLines([]domain.Heading{{Level: 3, Text: "x"}})
	require.Len(t, lines, 1)
	assert.Equal(t, 40, lines[0].IndentUnits)
	assert.Equal(t, 4, lines[0].IndentColumns())
}

func TestItemViewResolve(t *testing.T) {
	t.Parallel()

	t.Run("populated", func(t *testing.T) {
		t.Parallel()
		v := NewItemView(domain.SearchResult{URL: "https://a.com"})
		assert.Equal(t, domain.OutlineLoading, v.Phase)

		v.Resolve(&domain.Outline{Structure: []domain.Heading{{Level: 1, Text: "Intro"}}})
		assert.Equal(t, domain.OutlinePopulated, v.Phase)
		require.Len(t, v.Outline, 1)
	})

	t.Run("empty structure", func(t *testing.T) {
		t.Parallel()
		v := NewItemView(domain.SearchResult{})
		v.Resolve(&domain.Outline{})
		assert.Equal(t, domain.OutlineEmpty, v.Phase)
	})

	t.Run("absent outline", func(t *testing.T) {
		t.Parallel()
		v := NewItemView(domain.SearchResult{})
		v.Resolve(nil)
		assert.Equal(t, domain.OutlineFailed, v.Phase)
	})

	t.Run("terminal transition happens at most once", func(t *testing.T) {
		t.Parallel()
		v := NewItemView(domain.SearchResult{})
		v.Resolve(nil)
		require.Equal(t, domain.OutlineFailed, v.Phase)

		// A second completion must not move the view again
		v.Resolve(&domain.Outline{Structure: []domain.Heading{{Level: 1, Text: "late"}}})
		assert.Equal(t, domain.OutlineFailed, v.Phase)
		assert.Empty(t, v.Outline)
	})
}
