package service

import (
	"container/list"

	"parcel-tracker/internal/features/parcels/domain"
)

// Registry holds parcels out for delivery. The front of the list is the
// most recently added parcel.
type Registry struct {
	parcels *list.List
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		parcels: list.New(),
	}
}

// find returns the list element holding id, or nil.
func (r *Registry) find(id int) *list.Element {
	for e := r.parcels.Front(); e != nil; e = e.Next() {
		if e.Value.(*domain.Parcel).ID == id {
			return e
		}
	}
	return nil
}

// Exists reports whether a parcel with the given id is registered.
func (r *Registry) Exists(id int) bool {
	return r.find(id) != nil
}

// Add inserts a new parcel at the head. Weight and destination are stored as given.
func (r *Registry) Add(id int, weight float64, destination string) error {
	if r.Exists(id) {
		return domain.NewDuplicateIDError(domain.CollectionDeliveries, "add", id)
	}

	p := domain.NewParcel(id, weight, destination)
	r.parcels.PushFront(&p)
	return nil
}

// Delete removes the parcel with the given id, keeping the order of the rest.
func (r *Registry) Delete(id int) error {
	e := r.find(id)
	if e == nil {
		return domain.NewNotFoundError(domain.CollectionDeliveries, "delete", id)
	}

	r.parcels.Remove(e)
	return nil
}

// Modify overwrites weight and destination in place. The id never changes.
func (r *Registry) Modify(id int, weight float64, destination string) error {
	e := r.find(id)
	if e == nil {
		return domain.NewNotFoundError(domain.CollectionDeliveries, "modify", id)
	}

	p := e.Value.(*domain.Parcel)
	p.Weight = weight
	p.Destination = destination
	return nil
}

// List returns a copy of the registry, head to tail.
func (r *Registry) List() []domain.Parcel {
	out := make([]domain.Parcel, 0, r.parcels.Len())
	for e := r.parcels.Front(); e != nil; e = e.Next() {
		out = append(out, *e.Value.(*domain.Parcel))
	}
	return out
}

// Len returns the number of registered parcels.
func (r *Registry) Len() int {
	return r.parcels.Len()
}
