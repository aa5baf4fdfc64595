package ports

import "parcel-tracker/internal/features/parcels/domain"

// ReturnStack defines the primary port for returned parcels pending processing.
type ReturnStack interface {
	// Exists reports whether a parcel with the given id is on the stack.
	Exists(id int) bool
	// Push places a new parcel on top of the stack.
	Push(id int, weight float64, destination string) error
	// Pop removes and returns the most recently pushed parcel.
	Pop() (domain.Parcel, error)
	// List returns the parcels top to bottom.
	List() []domain.Parcel
	// Len returns the number of parcels on the stack.
	Len() int
}
