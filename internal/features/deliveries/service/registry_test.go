package service

import (
	"testing"

	"parcel-tracker/internal/features/deliveries/ports"
	"parcel-tracker/internal/features/parcels/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.DeliveryRegistry = (*Registry)(nil)

func TestRegistry_AddListMostRecentFirst(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Add(1, 500, "Lagos"))
	require.NoError(t, r.Add(2, 300, "Abuja"))

	assert.Equal(t, []domain.Parcel{
		{ID: 2, Weight: 300, Destination: "Abuja"},
		{ID: 1, Weight: 500, Destination: "Lagos"},
	}, r.List())
}

func TestRegistry_Exists(t *testing.T) {
	r := NewRegistry()
	ids := []int{4, 8, 15, 16, 23, 42}
	for _, id := range ids {
		require.NoError(t, r.Add(id, 100, "Kano"))
	}

	for _, id := range ids {
		assert.True(t, r.Exists(id), "id %d", id)
	}
	assert.False(t, r.Exists(0))
	assert.False(t, r.Exists(99))
}

func TestRegistry_AddDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(1, 500, "Lagos"))
	require.NoError(t, r.Add(2, 300, "Abuja"))
	before := r.List()

	err := r.Add(1, 999, "Ibadan")

	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, before, r.List())
}

func TestRegistry_Delete(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr error
		wantIDs []int
	}{
		{name: "Head", id: 3, wantIDs: []int{2, 1}},
		{name: "Middle", id: 2, wantIDs: []int{3, 1}},
		{name: "Tail", id: 1, wantIDs: []int{3, 2}},
		{name: "Missing", id: 9, wantErr: domain.ErrNotFound, wantIDs: []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			for id := 1; id <= 3; id++ {
				require.NoError(t, r.Add(id, float64(id*100), "Enugu"))
			}

			err := r.Delete(tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.False(t, r.Exists(tt.id))
			}
			assert.Equal(t, tt.wantIDs, ids(r.List()))
			assert.Equal(t, len(tt.wantIDs), r.Len())
		})
	}
}

func TestRegistry_DeleteLastEmptiesRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(1, 10, "Jos"))
	require.NoError(t, r.Delete(1))

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.List())

	require.NoError(t, r.Add(1, 20, "Jos"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Modify(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(1, 500, "Lagos"))
	require.NoError(t, r.Add(2, 300, "Abuja"))

	require.NoError(t, r.Modify(1, 750, "Port Harcourt"))

	assert.Equal(t, []domain.Parcel{
		{ID: 2, Weight: 300, Destination: "Abuja"},
		{ID: 1, Weight: 750, Destination: "Port Harcourt"},
	}, r.List())
}

func TestRegistry_ModifyMissing(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(1, 500, "Lagos"))

	err := r.Modify(2, 1, "Nowhere")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []domain.Parcel{{ID: 1, Weight: 500, Destination: "Lagos"}}, r.List())
}

func TestRegistry_ListIsSnapshot(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(1, 500, "Lagos"))

	listed := r.List()
	listed[0].Destination = "Changed"

	assert.Equal(t, "Lagos", r.List()[0].Destination)
}

func TestRegistry_NoFieldValidation(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Add(1, -10, ""))
	assert.Equal(t, []domain.Parcel{{ID: 1, Weight: -10, Destination: ""}}, r.List())
}

func ids(parcels []domain.Parcel) []int {
	out := make([]int, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, p.ID)
	}
	return out
}
