package catalog

import (
	"sort"
	"strings"
)

// ExpansionState records which project descriptions are shown in full.
// Projects not in the state are collapsed. The zero value is ready to use.
type ExpansionState struct {
	expanded map[string]bool
}

// ParseExpansionState reads a comma separated list of expanded project ids
func ParseExpansionState(raw string) ExpansionState {
	var s ExpansionState
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			s.Set(id, true)
		}
	}
	return s
}

// Expanded reports whether the description of id is shown in full
func (s ExpansionState) Expanded(id string) bool {
	return s.expanded[id]
}

// Set marks id as expanded or collapsed
func (s *ExpansionState) Set(id string, expanded bool) {
	if !expanded {
		delete(s.expanded, id)
		return
	}
	if s.expanded == nil {
		s.expanded = make(map[string]bool)
	}
	s.expanded[id] = true
}

// Toggle flips the state of id and returns the new value
func (s *ExpansionState) Toggle(id string) bool {
	next := !s.Expanded(id)
	s.Set(id, next)
	return next
}

// Toggled returns a copy of the state with id flipped; s is left unchanged
func (s ExpansionState) Toggled(id string) ExpansionState {
	next := ExpansionState{expanded: make(map[string]bool, len(s.expanded)+1)}
	for k := range s.expanded {
		next.expanded[k] = true
	}
	next.Toggle(id)
	return next
}

// IDs returns the expanded ids in sorted order
func (s ExpansionState) IDs() []string {
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// String encodes the state in the form read by ParseExpansionState
func (s ExpansionState) String() string {
	return strings.Join(s.IDs(), ",")
}
