package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractOrder(t *testing.T) {
	testCases := []struct {
		name  string
		d     int
		ranks []float64
	}{
		{
			name:  "binary heap",
			d:     2,
			ranks: []float64{5, 3, 9, 1, 7, 2, 8},
		},
		{
			name:  "four-ary heap",
			d:     4,
			ranks: []float64{10, 4, 6, 0.5, 3, 3, 12, 1, 11, 2},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewdAryHeap[int](tt.d)
			for i, r := range tt.ranks {
				h.Insert(NewPriorityQueueNode(r, i))
			}
			require.Equal(t, len(tt.ranks), h.Size())

			prev := -1.0
			for !h.IsEmpty() {
				node, err := h.ExtractMin()
				require.NoError(t, err)
				assert.LessOrEqual(t, prev, node.GetRank())
				assert.Equal(t, tt.ranks[node.GetItem()], node.GetRank())
				prev = node.GetRank()
			}

			_, err := h.ExtractMin()
			assert.Error(t, err)
		})
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[string]()
	a := NewPriorityQueueNode(10, "a")
	b := NewPriorityQueueNode(20, "b")
	c := NewPriorityQueueNode(30, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(c, 1))
	assert.Equal(t, 0, c.GetPos())

	assert.Error(t, h.DecreaseKey(b, 50), "increasing the rank is rejected")

	top, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "c", top.GetItem())
	assert.Equal(t, -1, top.GetPos())

	assert.Error(t, h.DecreaseKey(c, 0), "extracted item is no longer in the heap")
}
