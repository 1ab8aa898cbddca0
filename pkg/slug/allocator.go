package slug

import "strconv"

// Allocator hands out unique heading identifiers for a single pass over a
// document. It is not safe for concurrent use; each pass owns its own.
type Allocator struct {
	// counts tracks how many times each base identifier has been requested.
	counts map[string]int

	// issued holds every identifier returned so far.
	issued map[string]struct{}
}

// NewAllocator creates an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{
		counts: make(map[string]int),
		issued: make(map[string]struct{}),
	}
}

// Allocate returns the identifier for the given raw heading text.
//
// The first heading with a given base gets the base unchanged. Repeats get
// base-2, base-3 and so on. When a suffixed candidate is already taken (a
// heading titled "Intro 2" after two "Intro" headings) the count keeps
// climbing until an unused identifier is found.
func (a *Allocator) Allocate(text string) string {
	base := Base(text)

	count := a.counts[base]
	for {
		count++

		id := base
		if count > 1 {
			id = base + "-" + strconv.Itoa(count)
		}

		if _, taken := a.issued[id]; taken {
			continue
		}

		a.counts[base] = count
		a.issued[id] = struct{}{}
		return id
	}
}
