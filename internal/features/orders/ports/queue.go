package ports

import "parcel-tracker/internal/features/parcels/domain"

// OrderQueue defines the primary port for outgoing orders awaiting shipment.
type OrderQueue interface {
	// Exists reports whether an order with the given parcel id is queued.
	Exists(id int) bool
	// Enqueue appends a new parcel at the rear.
	Enqueue(id int, weight float64, destination string) error
	// Dequeue removes and returns the parcel that has waited longest.
	Dequeue() (domain.Parcel, error)
	// List returns the parcels front to rear.
	List() []domain.Parcel
	// Len returns the number of queued parcels.
	Len() int
}
