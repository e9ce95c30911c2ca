// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package capture represents function literals that capture variables from
// their enclosing scope as explicit, named callable values.
//
// Each callable is a struct whose fields are its captures. A field is bound
// in one of three ways, fixed at construction:
//   - by shared reference: a pointer the callable only reads
//   - by exclusive reference: a pointer the callable alone writes through
//   - by owned value: data moved into the callable
//
// # Invocation Protocol
//
// Three interfaces describe how a callable may be invoked, from the least
// to the most capable:
//
//   - [FnOnce]: CallOnce consumes the callable; at most one call
//   - [FnMut]: CallMut may update held state; repeated, never concurrent
//   - [Fn]: Call reads only; repeated and concurrent
//
// Fn embeds FnMut which embeds FnOnce, so a read-call callable is usable
// wherever a weaker mode is required. A callable that lacks a mode does not
// satisfy the corresponding interface, and [Invoke], [InvokeMut] and
// [InvokeOnce] accept only the matching capability.
//
// # Callables
//
//   - [Greeting]: captures nothing (Fn)
//   - [MessagePrinter]: shared reference to text (Fn)
//   - [Greeter]: owned name plus a per-call message (Fn)
//   - [Counter]: exclusive counter, shared delta (FnMut)
//   - [Doubler]: owned sequence, doubled and summed (FnOnce)
//
// Function literals can be adapted with [Once] (FnOnce) and [Mut] (FnMut).
//
// # Consumption
//
// Go cannot move a value out of reach, so consumption is tracked by a
// one-shot guard. After CallOnce, owned captures are released and every
// further invocation panics with an error wrapping [ErrConsumed].
// TryCallOnce returns that error instead, and Discard consumes without
// invoking. Concurrent consume attempts yield exactly one winner.
//
// [Greeting] and [MessagePrinter] are plain copyable values: CallOnce
// consumes a copy, and the original remains usable.
//
// # Aliasing
//
// Reference captures are not checked at run time. A referent must outlive
// every callable that refers to it, must not be written while a shared
// reference is live, and must not be touched through another path while an
// exclusive reference is live. Violations are caller errors.
package capture
