package ports

import "parcel-tracker/internal/features/parcels/domain"

// DeliveryRegistry defines the primary port for parcels currently out for delivery.
type DeliveryRegistry interface {
	// Exists reports whether a parcel with the given id is registered.
	Exists(id int) bool
	// Add registers a new parcel as the head of the registry.
	Add(id int, weight float64, destination string) error
	// Delete removes the parcel with the given id.
	Delete(id int) error
	// Modify overwrites weight and destination of the parcel with the given id.
	Modify(id int, weight float64, destination string) error
	// List returns the parcels most-recently-added first.
	List() []domain.Parcel
	// Len returns the number of registered parcels.
	Len() int
}
