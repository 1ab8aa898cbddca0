package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpage/pkg/slug"
)

func TestAllocator_Duplicates(t *testing.T) {
	t.Parallel()

	alloc := slug.NewAllocator()

	assert.Equal(t, "intro", alloc.Allocate("Intro"))
	assert.Equal(t, "intro-2", alloc.Allocate("Intro"))
	assert.Equal(t, "intro-3", alloc.Allocate("*Intro*"))
	assert.Equal(t, "other", alloc.Allocate("Other"))
}

func TestAllocator_Fallback(t *testing.T) {
	t.Parallel()

	alloc := slug.NewAllocator()

	assert.Equal(t, "section", alloc.Allocate("???"))
	assert.Equal(t, "section-2", alloc.Allocate("!!!"))
	assert.Equal(t, "section-3", alloc.Allocate("Section"))
}

func TestAllocator_SuffixCollision(t *testing.T) {
	t.Parallel()

	alloc := slug.NewAllocator()

	first := alloc.Allocate("a")
	second := alloc.Allocate("a")
	third := alloc.Allocate("a 2")
	fourth := alloc.Allocate("a")

	assert.Equal(t, "a", first)
	assert.Equal(t, "a-2", second)
	assert.Equal(t, "a-2-2", third)
	assert.Equal(t, "a-3", fourth)
}

func TestAllocator_LiteralSuffixFirst(t *testing.T) {
	t.Parallel()

	alloc := slug.NewAllocator()

	assert.Equal(t, "a-2", alloc.Allocate("a 2"))
	assert.Equal(t, "a", alloc.Allocate("a"))
	assert.Equal(t, "a-3", alloc.Allocate("a"))
}

func TestAllocator_OutputsUnique(t *testing.T) {
	t.Parallel()

	alloc := slug.NewAllocator()
	titles := []string{"x", "x", "x 2", "x 3", "x", "x-2", "x 2", "", "", "section 2"}

	seen := make(map[string]bool)
	for _, title := range titles {
		id := alloc.Allocate(title)
		require.False(t, seen[id], "duplicate id %q for title %q", id, title)
		seen[id] = true
	}
}

func TestAllocator_IndependentInstancesAgree(t *testing.T) {
	t.Parallel()

	titles := []string{"Intro", "Intro", "설치", "설치", "", "Intro"}

	first := slug.NewAllocator()
	second := slug.NewAllocator()

	for _, title := range titles {
		assert.Equal(t, first.Allocate(title), second.Allocate(title))
	}
}
