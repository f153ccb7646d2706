// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from one source
// are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(0, id, int64(id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAndClone validates that Neighbors, Edges and Clone
// can run alongside writers without racing.
func TestConcurrentReadersAndClone(t *testing.T) {
	g, err := core.NewGraph(10)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%10, int64(i)))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(2 * readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.Neighbors(id % 10)
			_ = g.Edges()
			_ = g.Clone()
		}(i)
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(id%10, (id+3)%10, 1)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 10+readers, g.EdgeCount())
}
