package service

import (
	"parcel-tracker/internal/features/parcels/domain"
)

// Stack holds returned parcels in LIFO order.
type Stack struct {
	// items[len(items)-1] is the top.
	items []domain.Parcel
}

// NewStack creates an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Exists scans the stack from top to bottom.
func (s *Stack) Exists(id int) bool {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].ID == id {
			return true
		}
	}
	return false
}

// Push places a new parcel on top.
func (s *Stack) Push(id int, weight float64, destination string) error {
	if s.Exists(id) {
		return domain.NewDuplicateIDError(domain.CollectionReturns, "push", id)
	}

	s.items = append(s.items, domain.NewParcel(id, weight, destination))
	return nil
}

// Pop removes and returns the top parcel.
func (s *Stack) Pop() (domain.Parcel, error) {
	if len(s.items) == 0 {
		return domain.Parcel{}, domain.NewEmptyCollectionError(domain.CollectionReturns, "pop")
	}

	last := len(s.items) - 1
	top := s.items[last]
	s.items[last] = domain.Parcel{}
	s.items = s.items[:last]
	return top, nil
}

// List returns a copy of the stack, top to bottom.
func (s *Stack) List() []domain.Parcel {
	out := make([]domain.Parcel, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out
}

// Len returns the number of parcels on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}
