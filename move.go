// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

// Greeter owns a name moved into it at construction and prefixes it to
// the per-call message.
//
// Call and CallMut are safe to use concurrently with each other.
// CallOnce must not overlap any other call: it releases the name.
type Greeter struct {
	guard once
	name  string
}

// NewGreeter takes ownership of name.
func NewGreeter(name string) *Greeter {
	return &Greeter{name: name}
}

func (g *Greeter) render(message string) string {
	return g.name + ", " + message
}

// Call renders "name, message". message is not retained.
// Panics with ErrConsumed after CallOnce.
func (g *Greeter) Call(message string) string {
	g.guard.check("Greeter")
	return g.render(message)
}

// CallMut is Call; Greeter never mutates its name.
func (g *Greeter) CallMut(message string) string {
	return g.Call(message)
}

// CallOnce renders a final time and releases the owned name.
func (g *Greeter) CallOnce(message string) string {
	g.guard.take("Greeter")
	out := g.render(message)
	g.name = ""
	return out
}

// TryCallOnce is CallOnce returning ErrConsumed instead of panicking.
func (g *Greeter) TryCallOnce(message string) (string, error) {
	if !g.guard.tryTake() {
		return "", consumedError("Greeter")
	}
	out := g.render(message)
	g.name = ""
	return out, nil
}

// Discard releases the owned name without rendering.
func (g *Greeter) Discard() {
	g.guard.discard()
	g.name = ""
}

var _ Fn[string, string] = (*Greeter)(nil)
