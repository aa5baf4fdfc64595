package domain

// Parcel is a tracked package. Weight is in grams.
type Parcel struct {
	// ID is supplied by the caller and is unique within the collection holding the parcel.
	ID int `json:"id"`
	// Weight is the parcel weight in grams.
	Weight float64 `json:"weight"`
	// Destination is the delivery address or city.
	Destination string `json:"destination"`
}

// NewParcel builds a Parcel. No range or emptiness checks are applied.
func NewParcel(id int, weight float64, destination string) Parcel {
	return Parcel{
		ID:          id,
		Weight:      weight,
		Destination: destination,
	}
}

// Collection names a parcel container, used in errors and log fields.
type Collection string

const (
	CollectionDeliveries Collection = "deliveries"
	CollectionReturns    Collection = "returns"
	CollectionOrders     Collection = "orders"
)
