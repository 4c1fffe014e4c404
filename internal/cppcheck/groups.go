package cppcheck

import (
	"iter"
	"slices"
)

// Groups holds diagnostics keyed by resolved file. Keys iterate in order of
// first insertion, and each group keeps insertion order.
type Groups struct {
	files  []string
	byFile map[string][]Diagnostic
	total  int
}

// NewGroups returns an empty container.
func NewGroups() *Groups {
	return &Groups{byFile: make(map[string][]Diagnostic)}
}

// Add appends d to the group of d.File, creating the group on first use.
func (g *Groups) Add(d Diagnostic) {
	if g.byFile == nil {
		g.byFile = make(map[string][]Diagnostic)
	}
	if _, ok := g.byFile[d.File]; !ok {
		g.files = append(g.files, d.File)
	}
	g.byFile[d.File] = append(g.byFile[d.File], d)
	g.total++
}

// Len returns the number of distinct files.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.files)
}

// Total returns the number of diagnostics across all groups.
func (g *Groups) Total() int {
	if g == nil {
		return 0
	}
	return g.total
}

// Files returns a copy of the group keys in first-seen order.
func (g *Groups) Files() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.files)
}

// All yields every group in first-seen order.
func (g *Groups) All() iter.Seq2[string, []Diagnostic] {
	return func(yield func(string, []Diagnostic) bool) {
		if g == nil {
			return
		}
		for _, file := range g.files {
			if !yield(file, g.byFile[file]) {
				return
			}
		}
	}
}
