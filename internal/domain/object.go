package domain

import (
	"sort"
	"strings"
)

// ROOT class names the pipeline treats specially.
const (
	ClassDirectory  = "TDirectoryFile"
	ClassEfficiency = "TEfficiency"
)

// IsDirectoryClass reports whether class names a sub-container.
func IsDirectoryClass(class string) bool {
	return class == ClassDirectory || class == "TDirectory"
}

// SkipName reports whether an object name is excluded from loading.
func SkipName(name string) bool { return strings.Contains(name, "=") }

// SkipHint suggests how to plot objects of a class the ROOT reader cannot
// decode, or returns "".
func SkipHint(class string) string {
	if class == ClassEfficiency {
		return "TEfficiency cannot be read from .root files; store its passed and total histograms " +
			"as a TEfficiency entry of a YAML archive, or a SQLite archive built with `rootplot convert`, and plot from there"
	}
	return ""
}

// Efficiency is a passed/total pair. Exactly one of the 1-D or 2-D
// pairs is set.
type Efficiency struct {
	Passed   *Hist1D
	Total    *Hist1D
	Passed2D *Hist2D
	Total2D  *Hist2D
}

// Object is a plottable object loaded from an archive. Exactly one of
// H1, H2, Graph and Eff is set.
type Object struct {
	Name  string
	Class string
	Title string

	H1    *Hist1D
	H2    *Hist2D
	Graph *Graph
	Eff   *Efficiency

	// Input is the position of the job input the object came from.
	Input int

	Style Style
}

// Dim is the object's dimensionality: 1 or 2.
func (o Object) Dim() int {
	switch {
	case o.H2 != nil:
		return 2
	case o.Eff != nil && o.Eff.Total2D != nil:
		return 2
	}
	return 1
}

// IsEfficiency reports whether the object is a passed/total ratio.
func (o Object) IsEfficiency() bool { return o.Eff != nil }

// IsProfile reports whether the object is a 1-D profile histogram.
func (o Object) IsProfile() bool {
	return o.H1 != nil && strings.HasPrefix(o.Class, "TProfile")
}

// IsPlainHist1D reports whether the object is a 1-D histogram that is
// not a profile.
func (o Object) IsPlainHist1D() bool { return o.H1 != nil && !o.IsProfile() }

// XBins is the number of x bins, or 0 for graphs.
func (o Object) XBins() int {
	switch {
	case o.H1 != nil:
		return o.H1.Len()
	case o.H2 != nil:
		return o.H2.Nx()
	case o.Eff != nil && o.Eff.Total != nil:
		return o.Eff.Total.Len()
	case o.Eff != nil && o.Eff.Total2D != nil:
		return o.Eff.Total2D.Nx()
	}
	return 0
}

// YBins is the number of y bins of a 2-D object, 0 otherwise.
func (o Object) YBins() int {
	switch {
	case o.H2 != nil:
		return o.H2.Ny()
	case o.Eff != nil && o.Eff.Total2D != nil:
		return o.Eff.Total2D.Ny()
	}
	return 0
}

// KeyInfo describes one entry of a container listing.
type KeyInfo struct {
	Name  string
	Class string
	Cycle int
}

// LatestKeys keeps the highest cycle of each name, in first-seen order.
func LatestKeys(keys []KeyInfo) []KeyInfo {
	pos := make(map[string]int, len(keys))
	out := make([]KeyInfo, 0, len(keys))
	for _, k := range keys {
		if i, ok := pos[k.Name]; ok {
			if k.Cycle > out[i].Cycle {
				out[i] = k
			}
			continue
		}
		pos[k.Name] = len(out)
		out = append(out, k)
	}
	return out
}

// ObjectSet groups loaded objects by logical name. Groups keep the order
// in which they were first seen and objects keep insertion order.
type ObjectSet struct {
	order  []string
	groups map[string][]Object
}

func NewObjectSet() *ObjectSet {
	return &ObjectSet{groups: map[string][]Object{}}
}

// Add appends obj to the group name, creating the group if needed.
func (s *ObjectSet) Add(name string, obj Object) {
	if _, ok := s.groups[name]; !ok {
		s.order = append(s.order, name)
	}
	s.groups[name] = append(s.groups[name], obj)
}

// Names returns the logical names in first-seen order.
func (s *ObjectSet) Names() []string { return append([]string(nil), s.order...) }

// Group returns the objects of one logical name.
func (s *ObjectSet) Group(name string) []Object { return s.groups[name] }

// Len is the number of groups.
func (s *ObjectSet) Len() int { return len(s.order) }

// Count is the total number of objects.
func (s *ObjectSet) Count() int {
	n := 0
	for _, g := range s.groups {
		n += len(g)
	}
	return n
}

// SortedNames returns the logical names alphabetically.
func (s *ObjectSet) SortedNames() []string {
	out := s.Names()
	sort.Strings(out)
	return out
}
