package async_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peoplelens/attritiond/internal/pkg/async"
)

func TestWaitAll(t *testing.T) {
	var ran atomic.Int32
	err := async.WaitAll(
		async.Errable(func() error { ran.Add(1); return nil }),
		async.Errable(func() error { ran.Add(1); return nil }),
		async.Errable(func() error { ran.Add(1); return nil }),
	)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, ran.Load())
}

func TestWaitAllError(t *testing.T) {
	boom := errors.New("boom")
	err := async.WaitAll(
		async.Errable(func() error { return nil }),
		async.Errable(func() error { return boom }),
	)
	assert.ErrorIs(t, err, boom)
}

func TestWaitAllEmpty(t *testing.T) {
	assert.NoError(t, async.WaitAll())
}

func TestErrableRecoversPanic(t *testing.T) {
	err := async.WaitAll(async.Errable(func() error {
		panic("reducer blew up")
	}))
	assert.ErrorContains(t, err, "reducer blew up")
}
