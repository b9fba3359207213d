package normalize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelNormalize_OrderedResults(t *testing.T) {
	n := NewNormalizer(nil)

	const count = 200
	items := make(chan WorkItem)
	go func() {
		defer close(items)
		for i := 0; i < count; i++ {
			items <- WorkItem{Seq: i, ID: fmt.Sprintf("1-%d-CTCC-CCC", 100+i)}
		}
	}()

	results := n.ParallelNormalize(items, true, 4)

	var got []WorkResult
	err := OrderedCollect(results, func(r WorkResult) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, count)

	for i, r := range got {
		assert.Equal(t, i, r.Seq)
		require.NoError(t, r.Err)
		assert.Equal(t, fmt.Sprintf("1-%d-CT-C", 100+i), r.Normalized.ID())
	}
}

func TestParallelNormalize_ErrorsCarried(t *testing.T) {
	n := NewNormalizer(nil)

	items := make(chan WorkItem)
	go func() {
		defer close(items)
		items <- WorkItem{Seq: 0, ID: "1-100-A-T"}
		items <- WorkItem{Seq: 1, ID: "garbage"}
		items <- WorkItem{Seq: 2, ID: "1-100-A-*"} // sentinel, no accessor
	}()

	results := n.ParallelNormalize(items, true, 2)

	var got []WorkResult
	err := OrderedCollect(results, func(r WorkResult) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.NoError(t, got[0].Err)
	assert.Error(t, got[1].Err)
	assert.Error(t, got[2].Err)
}

func TestOrderedCollect_StopsOnCallbackError(t *testing.T) {
	n := NewNormalizer(nil)

	items := make(chan WorkItem)
	go func() {
		defer close(items)
		for i := 0; i < 50; i++ {
			items <- WorkItem{Seq: i, ID: "1-100-A-T"}
		}
	}()

	results := n.ParallelNormalize(items, true, 4)

	calls := 0
	err := OrderedCollect(results, func(r WorkResult) error {
		calls++
		return fmt.Errorf("sink failed")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestParallelNormalize_DefaultWorkers(t *testing.T) {
	n := NewNormalizer(nil)

	items := make(chan WorkItem)
	go func() {
		defer close(items)
		items <- WorkItem{Seq: 0, ID: "1-100-ATG-ATC"}
	}()

	results := n.ParallelNormalize(items, true, 0)

	err := OrderedCollect(results, func(r WorkResult) error {
		require.NoError(t, r.Err)
		assert.Equal(t, "1-102-G-C", r.Normalized.ID())
		return nil
	})
	require.NoError(t, err)
}
