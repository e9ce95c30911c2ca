// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/capture"
)

// panicsWith runs f and fails unless it panics with an error matching target.
func panicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

func consumedPanic(t *testing.T, f func()) {
	t.Helper()
	panicsWith(t, capture.ErrConsumed, f)
}

func TestOnceCallOnce(t *testing.T) {
	aff := capture.Once(func(x int) string { return "received" })

	require.Equal(t, "received", aff.CallOnce(42))

	_, err := aff.TryCallOnce(0)
	require.ErrorIs(t, err, capture.ErrConsumed)
}

func TestOncePanicOnReuse(t *testing.T) {
	aff := capture.Once(func(x int) int { return x * 2 })
	require.Equal(t, 20, aff.CallOnce(10))

	consumedPanic(t, func() { aff.CallOnce(20) })
}

func TestOnceTryCallOnce(t *testing.T) {
	aff := capture.Once(func(x int) int { return x * 2 })

	got, err := aff.TryCallOnce(10)
	require.NoError(t, err)
	require.Equal(t, 20, got)

	got, err = aff.TryCallOnce(20)
	require.ErrorIs(t, err, capture.ErrConsumed)
	require.Zero(t, got)
}

func TestOnceDiscard(t *testing.T) {
	called := false
	aff := capture.Once(func(x int) int {
		called = true
		return x
	})
	aff.Discard()

	_, err := aff.TryCallOnce(42)
	require.ErrorIs(t, err, capture.ErrConsumed)
	consumedPanic(t, func() { aff.CallOnce(42) })
	require.False(t, called)
}

func TestOnceConcurrentCallOnce(t *testing.T) {
	aff := capture.Once(func(x int) int { return x })

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)

	successCount := make(chan int, goroutines)
	panicCount := make(chan int, goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					if err, ok := r.(error); ok && errors.Is(err, capture.ErrConsumed) {
						panicCount <- 1
					}
				}
			}()
			_ = aff.CallOnce(1)
			successCount <- 1
		}()
	}

	wg.Wait()
	close(successCount)
	close(panicCount)

	require.Len(t, successCount, 1)
	require.Len(t, panicCount, goroutines-1)
}

func TestMutAccumulates(t *testing.T) {
	sum := 0
	acc := capture.Mut(func(x int) int {
		sum += x
		return sum
	})

	require.Equal(t, 1, acc.CallMut(1))
	require.Equal(t, 3, acc.CallMut(2))
	require.Equal(t, 6, acc.CallOnce(3))
	require.Equal(t, 6, sum)

	consumedPanic(t, func() { acc.CallMut(4) })
	consumedPanic(t, func() { acc.CallOnce(4) })
	require.Equal(t, 6, sum)
}

func BenchmarkOnceCallOnce(b *testing.B) {
	for b.Loop() {
		aff := capture.Once(func(x int) int { return x })
		_ = aff.CallOnce(42)
	}
}

func BenchmarkOnceTryCallOnce(b *testing.B) {
	for b.Loop() {
		aff := capture.Once(func(x int) int { return x })
		_, _ = aff.TryCallOnce(42)
	}
}

func TestMutTryCallOnce(t *testing.T) {
	calls := 0
	acc := capture.Mut(func(x int) int {
		calls++
		return x + calls
	})

	require.Equal(t, 11, acc.CallMut(10))
	got, err := acc.TryCallOnce(10)
	require.NoError(t, err)
	require.Equal(t, 12, got)

	got, err = acc.TryCallOnce(10)
	require.ErrorIs(t, err, capture.ErrConsumed)
	require.Zero(t, got)
	require.Equal(t, 2, calls)
}

func TestMutDiscard(t *testing.T) {
	called := false
	acc := capture.Mut(func(x int) int {
		called = true
		return x
	})
	acc.Discard()

	consumedPanic(t, func() { acc.CallMut(1) })
	_, err := acc.TryCallOnce(1)
	require.ErrorIs(t, err, capture.ErrConsumed)
	require.False(t, called)
}
