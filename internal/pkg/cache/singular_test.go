package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	N int
}

func TestSingularGetMissing(t *testing.T) {
	c := NewSingular[*payload]("missing")

	var dest *payload
	assert.ErrorIs(t, c.Get(&dest), ErrNotFound)
	assert.Nil(t, dest)
}

func TestSingularMutexGetSetComputesOnce(t *testing.T) {
	c := NewSingular[*payload]("once")

	var calls int32
	valueFunc := func() (*payload, error) {
		atomic.AddInt32(&calls, 1)
		return &payload{N: 42}, nil
	}

	var wg sync.WaitGroup
	results := make([]*payload, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.MutexGetSet(&results[i], valueFunc, 0)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for _, r := range results {
		require.NotNil(t, r)
		assert.Same(t, results[0], r)
	}

	var again *payload
	calculated, err := c.MutexGetSet(&again, valueFunc, 0)
	require.NoError(t, err)
	assert.False(t, calculated)
	assert.Same(t, results[0], again)
}

func TestSingularMutexGetSetDoesNotCacheErrors(t *testing.T) {
	c := NewSingular[*payload]("errors")
	boom := errors.New("boom")

	var dest *payload
	_, err := c.MutexGetSet(&dest, func() (*payload, error) { return nil, boom }, 0)
	assert.ErrorIs(t, err, boom)

	calculated, err := c.MutexGetSet(&dest, func() (*payload, error) { return &payload{N: 1}, nil }, 0)
	require.NoError(t, err)
	assert.True(t, calculated)
	assert.Equal(t, 1, dest.N)
}

func TestSingularDelete(t *testing.T) {
	c := NewSingular[*payload]("delete")
	require.NoError(t, c.Set(&payload{N: 1}, 0))
	assert.True(t, c.Has())
	require.NoError(t, c.Delete())
	assert.False(t, c.Has())

	var dest *payload
	assert.ErrorIs(t, c.Get(&dest), ErrNotFound)
}
