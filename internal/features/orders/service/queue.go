package service

import (
	"container/list"

	"parcel-tracker/internal/features/parcels/domain"
)

// Queue holds outgoing orders in FIFO order.
type Queue struct {
	parcels *list.List
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		parcels: list.New(),
	}
}

// Exists scans the queue from front to rear.
func (q *Queue) Exists(id int) bool {
	for e := q.parcels.Front(); e != nil; e = e.Next() {
		if e.Value.(domain.Parcel).ID == id {
			return true
		}
	}
	return false
}

// Enqueue appends a new parcel at the rear.
func (q *Queue) Enqueue(id int, weight float64, destination string) error {
	if q.Exists(id) {
		return domain.NewDuplicateIDError(domain.CollectionOrders, "enqueue", id)
	}

	q.parcels.PushBack(domain.NewParcel(id, weight, destination))
	return nil
}

// Dequeue removes and returns the front parcel.
func (q *Queue) Dequeue() (domain.Parcel, error) {
	front := q.parcels.Front()
	if front == nil {
		return domain.Parcel{}, domain.NewEmptyCollectionError(domain.CollectionOrders, "dequeue")
	}

	return q.parcels.Remove(front).(domain.Parcel), nil
}

// List returns a copy of the queue, front to rear.
func (q *Queue) List() []domain.Parcel {
	out := make([]domain.Parcel, 0, q.parcels.Len())
	for e := q.parcels.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(domain.Parcel))
	}
	return out
}

// Len returns the number of queued parcels.
func (q *Queue) Len() int {
	return q.parcels.Len()
}
