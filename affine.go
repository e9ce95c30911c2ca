// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

import "go.uber.org/atomic"

// once is the one-shot guard behind every consume-call.
// The first take wins; every later take or check panics.
type once struct {
	spent atomic.Bool
}

// take consumes the guard. Panics if it was already consumed.
func (o *once) take(variant string) {
	if !o.spent.CompareAndSwap(false, true) {
		panic(consumedError(variant))
	}
}

// tryTake consumes the guard and reports whether this call won.
func (o *once) tryTake() bool {
	return o.spent.CompareAndSwap(false, true)
}

// check panics if the guard was consumed, without consuming it.
func (o *once) check(variant string) {
	if o.spent.Load() {
		panic(consumedError(variant))
	}
}

func (o *once) discard() {
	o.spent.Store(true)
}

func (o *once) consumed() bool {
	return o.spent.Load()
}

// OnceFunc wraps a function literal as a consume-only callable.
// The literal runs at most once; subsequent attempts panic (CallOnce)
// or return ErrConsumed (TryCallOnce).
type OnceFunc[A, R any] struct {
	guard once
	f     func(A) R
}

// Once creates a consume-only callable from f.
func Once[A, R any](f func(A) R) *OnceFunc[A, R] {
	return &OnceFunc[A, R]{f: f}
}

// CallOnce invokes the literal and releases it.
// Panics with ErrConsumed if the callable has already been used.
func (o *OnceFunc[A, R]) CallOnce(a A) R {
	o.guard.take("OnceFunc")
	f := o.f
	o.f = nil
	return f(a)
}

// TryCallOnce attempts to invoke the literal.
// Returns (zero, ErrConsumed) if the callable has already been used.
func (o *OnceFunc[A, R]) TryCallOnce(a A) (R, error) {
	if !o.guard.tryTake() {
		var zero R
		return zero, consumedError("OnceFunc")
	}
	f := o.f
	o.f = nil
	return f(a), nil
}

// Discard marks the callable as used without invoking it.
func (o *OnceFunc[A, R]) Discard() {
	o.guard.discard()
	o.f = nil
}

// MutFunc wraps a function literal as a mutate-call callable.
// The literal may update variables it captured; calls must not overlap.
type MutFunc[A, R any] struct {
	guard once
	f     func(A) R
}

// Mut creates a mutate-call callable from f.
func Mut[A, R any](f func(A) R) *MutFunc[A, R] {
	return &MutFunc[A, R]{f: f}
}

// CallMut invokes the literal.
// Panics with ErrConsumed after CallOnce.
func (m *MutFunc[A, R]) CallMut(a A) R {
	m.guard.check("MutFunc")
	return m.f(a)
}

// CallOnce invokes the literal a final time and releases it.
func (m *MutFunc[A, R]) CallOnce(a A) R {
	m.guard.take("MutFunc")
	f := m.f
	m.f = nil
	return f(a)
}

// TryCallOnce is CallOnce returning ErrConsumed instead of panicking.
func (m *MutFunc[A, R]) TryCallOnce(a A) (R, error) {
	if !m.guard.tryTake() {
		var zero R
		return zero, consumedError("MutFunc")
	}
	f := m.f
	m.f = nil
	return f(a), nil
}

// Discard releases the literal without invoking it.
func (m *MutFunc[A, R]) Discard() {
	m.guard.discard()
	m.f = nil
}
