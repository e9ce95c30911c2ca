// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

// Unit is the argument type of callables that take no argument.
type Unit = struct{}

// FnOnce is the consume-call mode.
// CallOnce may be invoked at most once; the receiver is unusable afterwards.
// Every callable in this package implements FnOnce.
type FnOnce[A, R any] interface {
	CallOnce(a A) R
}

// FnMut is the mutate-call mode.
// CallMut may be invoked any number of times, never concurrently, and may
// update state the callable holds between calls.
type FnMut[A, R any] interface {
	FnOnce[A, R]
	CallMut(a A) R
}

// Fn is the read-call mode.
// Call may be invoked any number of times, concurrently, and never mutates
// captured state. An Fn behaves identically under CallMut and CallOnce.
type Fn[A, R any] interface {
	FnMut[A, R]
	Call(a A) R
}

// Invoke performs a read-call.
func Invoke[A, R any](f Fn[A, R], a A) R {
	return f.Call(a)
}

// InvokeMut performs a mutate-call.
func InvokeMut[A, R any](f FnMut[A, R], a A) R {
	return f.CallMut(a)
}

// InvokeOnce performs a consume-call.
func InvokeOnce[A, R any](f FnOnce[A, R], a A) R {
	return f.CallOnce(a)
}

// Repeat performs n sequential mutate-calls on f and returns the results
// in call order. Repeat returns nil when n <= 0.
func Repeat[R any](f FnMut[Unit, R], n int) []R {
	if n <= 0 {
		return nil
	}
	out := make([]R, n)
	for i := range out {
		out[i] = f.CallMut(Unit{})
	}
	return out
}
