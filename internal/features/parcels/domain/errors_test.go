package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParcelError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParcelError
		sentinel error
		message  string
	}{
		{
			name:     "DuplicateID",
			err:      NewDuplicateIDError(CollectionDeliveries, "add", 7),
			sentinel: ErrDuplicateID,
			message:  "deliveries add: parcel id already exists: id 7",
		},
		{
			name:     "NotFound",
			err:      NewNotFoundError(CollectionDeliveries, "delete", 3),
			sentinel: ErrNotFound,
			message:  "deliveries delete: parcel not found: id 3",
		},
		{
			name:     "EmptyCollection",
			err:      NewEmptyCollectionError(CollectionOrders, "dequeue"),
			sentinel: ErrEmptyCollection,
			message:  "orders dequeue: collection is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.sentinel, tt.err.Unwrap())
		})
	}
}

func TestParcelError_As(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", NewNotFoundError(CollectionDeliveries, "modify", 42))

	var pe *ParcelError
	require.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, CollectionDeliveries, pe.Collection)
	assert.Equal(t, "modify", pe.Op)
	assert.Equal(t, 42, pe.ID)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrDuplicateID)
}

func TestNewParcel(t *testing.T) {
	p := NewParcel(1, -5, "")
	assert.Equal(t, Parcel{ID: 1, Weight: -5, Destination: ""}, p)
}
