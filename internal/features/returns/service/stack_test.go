package service

import (
	"testing"

	"parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/returns/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.ReturnStack = (*Stack)(nil)

func TestStack_PushPop(t *testing.T) {
	s := NewStack()
	require.NoError(t, s.Push(5, 120, "Ibadan"))
	require.NoError(t, s.Push(6, 80, "Kaduna"))

	p, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 6, p.ID)
	assert.Equal(t, []domain.Parcel{{ID: 5, Weight: 120, Destination: "Ibadan"}}, s.List())
}

func TestStack_LIFO(t *testing.T) {
	s := NewStack()
	pushed := []int{10, 3, 7, 1, 99}
	for _, id := range pushed {
		require.NoError(t, s.Push(id, 1, "Benin"))
	}

	for i := len(pushed) - 1; i >= 0; i-- {
		p, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, pushed[i], p.ID)
	}

	_, err := s.Pop()
	assert.ErrorIs(t, err, domain.ErrEmptyCollection)
	assert.Equal(t, 0, s.Len())
}

func TestStack_PopEmpty(t *testing.T) {
	s := NewStack()

	p, err := s.Pop()

	assert.ErrorIs(t, err, domain.ErrEmptyCollection)
	assert.Equal(t, domain.Parcel{}, p)
}

func TestStack_PushDuplicate(t *testing.T) {
	s := NewStack()
	require.NoError(t, s.Push(1, 10, "Owerri"))
	require.NoError(t, s.Push(2, 20, "Akure"))

	err := s.Push(1, 30, "Yola")

	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{2, 1}, ids(s.List()))
}

func TestStack_Exists(t *testing.T) {
	s := NewStack()
	require.NoError(t, s.Push(1, 10, "Owerri"))
	require.NoError(t, s.Push(2, 20, "Akure"))

	assert.True(t, s.Exists(1))
	assert.True(t, s.Exists(2))
	assert.False(t, s.Exists(3))

	_, err := s.Pop()
	require.NoError(t, err)
	assert.False(t, s.Exists(2))
}

func TestStack_ListTopToBottom(t *testing.T) {
	s := NewStack()
	for id := 1; id <= 3; id++ {
		require.NoError(t, s.Push(id, 1, "Uyo"))
	}

	assert.Equal(t, []int{3, 2, 1}, ids(s.List()))

	listed := s.List()
	listed[0].ID = 100
	assert.True(t, s.Exists(3))
}

func ids(parcels []domain.Parcel) []int {
	out := make([]int, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, p.ID)
	}
	return out
}
