package editor

import (
	"slices"

	"fullmetal/scene"
)

// Selection tracks the selected nodes. The active node is the last one
// selected and is the one shown in the inspector.
type Selection struct {
	Objects []scene.Node
	Active  scene.Node
}

func NewSelection() *Selection {
	return &Selection{}
}

// Clear removes all selections
func (s *Selection) Clear() {
	s.Objects = s.Objects[:0]
	s.Active = nil
}

// SelectSingle selects a single node, clearing the previous selection
func (s *Selection) SelectSingle(n scene.Node) {
	s.Objects = append(s.Objects[:0], n)
	s.Active = n
}

// ToggleObject adds or removes a node from the selection.
func (s *Selection) ToggleObject(n scene.Node) {
	for i, sel := range s.Objects {
		if sel.Base() == n.Base() {
			s.Objects = slices.Delete(s.Objects, i, i+1)
			if s.Active != nil && s.Active.Base() == n.Base() {
				s.Active = nil
				if len(s.Objects) > 0 {
					s.Active = s.Objects[len(s.Objects)-1]
				}
			}
			return
		}
	}
	s.Objects = append(s.Objects, n)
	s.Active = n
}

func (s *Selection) IsSelected(n scene.Node) bool {
	for _, sel := range s.Objects {
		if sel.Base() == n.Base() {
			return true
		}
	}
	return false
}

func (s *Selection) HasSelection() bool {
	return len(s.Objects) > 0
}
