package workflow

import "sort"

// Selection tracks which claim ids the user has checked in the currently
// visible rows of the active bucket.
type Selection map[int64]struct{}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// Has reports whether the id is selected.
func (s Selection) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Toggle adds the id if absent and removes it if present.
func (s Selection) Toggle(id int64) {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// ToggleAllVisible implements the header checkbox. When every visible id is
// already selected and nothing else is, the selection clears; otherwise it
// becomes exactly the visible set, so select-all wins over a partial
// selection. Calling it twice with the same visible set is a no-op pair.
func (s Selection) ToggleAllVisible(visibleIDs []int64) {
	if len(s) == len(visibleIDs) {
		all := true
		for _, id := range visibleIDs {
			if !s.Has(id) {
				all = false
				break
			}
		}
		if all {
			s.Clear()
			return
		}
	}

	s.Clear()
	for _, id := range visibleIDs {
		s[id] = struct{}{}
	}
}

// Clear removes every selected id.
func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// IDs returns the selected ids in ascending order.
func (s Selection) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
